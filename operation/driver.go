package operation

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tetmesh/tuple"
)

// Mesh is the subset of *meshcore.Mesh the driver needs: the read-only
// connectivity view plus the four mutation primitives an operation may
// invoke. Expressed as a local interface (rather than importing
// meshcore.Mesh directly) so the driver stays testable against a fake.
type Mesh interface {
	tuple.Connectivity
	MarkTetRemoved(tid int)
	AllocVertexSlot() int
	AllocTetSlot(vids [4]int) (int, error)
	TupleFromTetID(tid int) (tuple.Tuple, error)
}

// CustomizedOperation executes op against m atomically:
//
//	a. invoke Before; abort with ErrOperationRejected if it returns false.
//	b. collect RemovedTids, then allocate RequestVertSlots() fresh vertex
//	   slots.
//	c. call ReplacingTets to get the new vertex quadruples.
//	d. mark the removed tets, allocate the replacement tets (which wires
//	   incidence and bumps hashes as a side effect of AllocTetSlot /
//	   MarkTetRemoved).
//	e. attribute tables grow automatically as a side effect of the slot
//	   allocations above.
//	f. materialize cursors for the new tets and invoke After. A false (or
//	   erroring) return is NOT rolled back: the topology change already
//	   happened, so the returned error wraps ErrAfterHookFailed and the
//	   caller must treat the mesh as corrupt and abort its pass.
//
// The first return value reports whether the topology edit happened at
// all (false when Before rejects or errors, or when RemovedTids or
// ReplacingTets errors, all before any tet is touched); the second is
// the cursors
// for the replacement tets, valid whenever the first is true regardless
// of whether an ErrAfterHookFailed error is also returned.
func CustomizedOperation(m Mesh, op Operation, cur tuple.Tuple) (bool, []tuple.Tuple, error) {
	ok, err := op.Before(cur)
	if err != nil {
		return false, nil, fmt.Errorf("operation: before: %w", err)
	}
	if !ok {
		return false, nil, ErrOperationRejected
	}

	removed, err := op.RemovedTids(cur)
	if err != nil {
		return false, nil, fmt.Errorf("operation: removed_tids: %w", err)
	}

	n := op.RequestVertSlots()
	slots := make([]int, n)
	for i := range slots {
		slots[i] = m.AllocVertexSlot()
	}

	quads, err := op.ReplacingTets(slots)
	if err != nil {
		return false, nil, fmt.Errorf("operation: replacing_tets: %w", err)
	}

	for _, tid := range removed {
		m.MarkTetRemoved(tid)
	}

	newTids := make([]int, 0, len(quads))
	for _, q := range quads {
		tid, err := m.AllocTetSlot(q)
		if err != nil {
			return true, nil, errors.Join(ErrOrientationViolation, err)
		}
		newTids = append(newTids, tid)
	}

	newCursors := make([]tuple.Tuple, len(newTids))
	for i, tid := range newTids {
		c, err := m.TupleFromTetID(tid)
		if err != nil {
			return true, newCursors, fmt.Errorf("operation: after: %w", err)
		}
		newCursors[i] = c
	}

	ok2, err := op.After(newCursors)
	if err != nil {
		return true, newCursors, errors.Join(ErrAfterHookFailed, err)
	}
	if !ok2 {
		return true, newCursors, ErrAfterHookFailed
	}

	return true, newCursors, nil
}
