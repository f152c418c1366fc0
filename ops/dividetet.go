package ops

import (
	"github.com/katalvlaran/tetmesh/meshcore"
	"github.com/katalvlaran/tetmesh/predicates"
	"github.com/katalvlaran/tetmesh/tuple"
)

// DivideTet implements operation.Operation by replacing one interior tet
// with four children, substituting each of its four vertices with a
// freshly allocated interior vertex in turn.
type DivideTet struct {
	m   Mesh
	pos predicates.Point

	tid    int
	vids   [4]int
	newVid int

	// faceKeys and faceAttrs mirror the four old face triples and
	// whatever attribute (if any) each carried before the split. The
	// reset-then-reinstall sequence below is idempotent per key, so a
	// key revisited more than once is harmless.
	faceKeys  [4][3]int
	faceAttrs [4]meshcore.FaceAttributes
	faceHas   [4]bool
}

// NewDivideTet constructs a DivideTet operation against m. The new
// interior vertex is placed at pos by ReplacingTets, before the
// replacement tets are allocated.
func NewDivideTet(m Mesh, pos predicates.Point) *DivideTet {
	return &DivideTet{m: m, pos: pos}
}

// NewVertexID returns the vertex slot allocated for the interior point.
// Only meaningful after ReplacingTets has run.
func (d *DivideTet) NewVertexID() int { return d.newVid }

// Before snapshots the removed tet's four face attributes by sorted
// triple key.
func (d *DivideTet) Before(cur tuple.Tuple) (bool, error) {
	vids, ok := d.m.TetVids(cur.Tid)
	if !ok {
		return false, ErrStaleCursorTet
	}
	d.tid, d.vids = cur.Tid, vids

	for i, t := range tetFaceTriples(vids) {
		d.faceKeys[i] = t
		attr, has := d.m.FaceAttr(t[0], t[1], t[2])
		d.faceAttrs[i], d.faceHas[i] = attr, has
	}
	return true, nil
}

// RemovedTids returns the single divided tet.
func (d *DivideTet) RemovedTids(cur tuple.Tuple) ([]int, error) {
	return []int{cur.Tid}, nil
}

// RequestVertSlots requests the single new interior vertex.
func (d *DivideTet) RequestVertSlots() int { return 1 }

// ReplacingTets installs the new vertex's position first — so the four
// replacement tets about to be allocated pass their orientation check
// against the real interior point rather than a fresh slot's zero value
// — then substitutes each of the tet's four vertices with the new vertex
// in turn.
func (d *DivideTet) ReplacingTets(slots []int) ([][4]int, error) {
	d.newVid = slots[0]
	d.m.SetVertexPos(d.newVid, d.pos)

	out := make([][4]int, 4)
	for i := range out {
		child := d.vids
		child[i] = d.newVid
		out[i] = child
	}
	return out, nil
}

// After resets the four old face keys (they are now interior faces
// shared between a child and the implicit exterior they used to border)
// and re-installs any previously tagged attribute under its unchanged
// triple key, since those triples remain valid face identities in the
// new mesh — each persists attached to the one child that kept all
// three of its vertices.
func (d *DivideTet) After(newCursors []tuple.Tuple) (bool, error) {
	for i, key := range d.faceKeys {
		var blank meshcore.FaceAttributes
		blank.Reset()
		d.m.SetFaceAttr(key[0], key[1], key[2], blank)
		if d.faceHas[i] {
			d.m.SetFaceAttr(key[0], key[1], key[2], d.faceAttrs[i])
		}
	}

	for _, c := range newCursors {
		recomputeQuality(d.m, c.Tid)
	}
	return true, nil
}
