package insertion

import (
	"context"

	"github.com/pkg/errors"

	"github.com/katalvlaran/tetmesh/locate"
	"github.com/katalvlaran/tetmesh/meshcore"
	"github.com/katalvlaran/tetmesh/meshlog"
	"github.com/katalvlaran/tetmesh/operation"
	"github.com/katalvlaran/tetmesh/ops"
	"github.com/katalvlaran/tetmesh/predicates"
	"github.com/katalvlaran/tetmesh/tuple"
)

// InsertAllPoints runs the single-threaded insertion pass: for every
// input point, in order, it descends the split-history from a hint tet,
// classifies the point against the leaf it lands in, dispatches to the
// matching local operation, and records the resulting parent/children
// relation.
//
// A point that resolves outside the hull, or whose dispatched operation
// fails, aborts the remaining pass: the Result returned alongside the
// error holds every point processed before the failure.
func InsertAllPoints(ctx context.Context, m Mesh, hints HintSource, points []predicates.Point, opts ...Option) (Result, error) {
	conf := defaultConfig()
	for _, opt := range opts {
		opt(&conf)
	}

	history := locate.NewSplitHistory()
	result := Result{
		VertexIDs:  make([]int, len(points)),
		Dispatches: make([]DispatchKind, len(points)),
	}

	for i, p := range points {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		vid, kind, err := insertOne(m, history, hints, i, p)
		if err != nil {
			return result, err
		}

		result.VertexIDs[i] = vid
		result.Dispatches[i] = kind
		switch kind {
		case DispatchVertex:
			result.Stats.VertexHits++
		case DispatchEdge:
			result.Stats.EdgeSplits++
		case DispatchFace:
			result.Stats.FaceSplits++
		case DispatchInterior:
			result.Stats.InteriorDivides++
		}

		if conf.Hooks.OnDispatch != nil {
			conf.Hooks.OnDispatch(i, p, kind, vid)
		}
	}

	return result, nil
}

func insertOne(m Mesh, history *locate.SplitHistory, hints HintSource, i int, p predicates.Point) (int, DispatchKind, error) {
	hint, ok := hints.PointQuery(p)
	if !ok {
		meshlog.L().Errorw("outside hull, no hint candidate", "index", i, "point", p)
		return 0, 0, errors.Wrapf(meshcore.ErrOutsideHull, "insertion: point %d", i)
	}

	tid, ok := locate.FindContainingTet(m, history, hint, p)
	if !ok {
		meshlog.L().Errorw("outside hull, need expansion", "index", i, "point", p, "hint", hint)
		return 0, 0, errors.Wrapf(meshcore.ErrOutsideHull, "insertion: point %d", i)
	}

	loc, ok := locate.ClassifyInTet(m, tid, p)
	if !ok {
		return 0, 0, errors.Wrapf(ErrDispatchFailed, "insertion: point %d: tet %d not live", i, tid)
	}

	meshlog.L().Debugw("insert", "index", i, "point", p, "tet", tid, "kind", loc.Kind)

	var (
		vid  int
		kind DispatchKind
	)

	switch loc.Kind {
	case locate.Vertex:
		vid, kind = loc.Vid, DispatchVertex
		return vid, kind, nil

	case locate.Edge:
		cur, ok := tuple.FromEdge(m, loc.U, loc.W)
		if !ok {
			return 0, 0, errors.Wrapf(ErrDispatchFailed, "insertion: point %d: no cursor for edge (%d,%d)", i, loc.U, loc.W)
		}
		op := ops.NewSplitEdge(m, ops.WithPosition(p))
		parents, err := op.RemovedTids(cur)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "insertion: point %d", i)
		}
		_, newCursors, err := operation.CustomizedOperation(m, op, cur)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "insertion: point %d", i)
		}
		for k, parent := range parents {
			history.Record(parent, []int{newCursors[2*k].Tid, newCursors[2*k+1].Tid})
		}
		vid, kind = op.NewVertexID(), DispatchEdge

	case locate.Face:
		cur, _, ok := tuple.FromFace(m, loc.A, loc.B, loc.C)
		if !ok {
			return 0, 0, errors.Wrapf(ErrDispatchFailed, "insertion: point %d: no cursor for face (%d,%d,%d)", i, loc.A, loc.B, loc.C)
		}
		op := ops.NewSplitFace(m, p)
		parents, err := op.RemovedTids(cur)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "insertion: point %d", i)
		}
		_, newCursors, err := operation.CustomizedOperation(m, op, cur)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "insertion: point %d", i)
		}
		for k, parent := range parents {
			history.Record(parent, []int{newCursors[3*k].Tid, newCursors[3*k+1].Tid, newCursors[3*k+2].Tid})
		}
		vid, kind = op.NewVertexID(), DispatchFace

	default: // locate.Interior
		cur, ok := tuple.FromTet(m, tid)
		if !ok {
			return 0, 0, errors.Wrapf(ErrDispatchFailed, "insertion: point %d: tet %d not live", i, tid)
		}
		op := ops.NewDivideTet(m, p)
		_, newCursors, err := operation.CustomizedOperation(m, op, cur)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "insertion: point %d", i)
		}
		children := make([]int, len(newCursors))
		for k, c := range newCursors {
			children[k] = c.Tid
		}
		history.Record(tid, children)
		vid, kind = op.NewVertexID(), DispatchInterior
	}

	// Set the new vertex's final double position to p. ReplacingTets
	// already installed it so the orientation check during allocation
	// had real coordinates to work with; this repeats the same value, a
	// harmless idempotent overwrite.
	m.SetVertexPos(vid, p)

	return vid, kind, nil
}
