package locate_test

import (
	"testing"

	"github.com/katalvlaran/tetmesh/locate"
	"github.com/katalvlaran/tetmesh/meshcore"
	"github.com/katalvlaran/tetmesh/predicates"
	"github.com/stretchr/testify/require"
)

func unitTet(t *testing.T) (*meshcore.Mesh, [4]int) {
	t.Helper()
	m, err := meshcore.NewMesh(0, nil, predicates.Double{})
	require.NoError(t, err)

	pts := []predicates.Point{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
	var ids [4]int
	for i, p := range pts {
		vid := m.AllocVertexSlot()
		m.SetVertexPos(vid, p)
		ids[i] = vid
	}
	_, err = m.AllocTetSlot(ids)
	require.NoError(t, err)
	return m, ids
}

func TestClassify_Vertex(t *testing.T) {
	m, ids := unitTet(t)
	cfg, ok := locate.ClassifyInTet(m, 0, predicates.Point{X: 1, Y: 0, Z: 0})
	require.True(t, ok)
	require.Equal(t, locate.Vertex, cfg.Kind)
	require.Equal(t, ids[1], cfg.Vid)
}

func TestClassify_Interior(t *testing.T) {
	m, _ := unitTet(t)
	cfg, ok := locate.ClassifyInTet(m, 0, predicates.Point{X: 0.1, Y: 0.1, Z: 0.1})
	require.True(t, ok)
	require.Equal(t, locate.Interior, cfg.Kind)
}

func TestClassify_Face(t *testing.T) {
	m, ids := unitTet(t)
	// (1/3,1/3,0) lies on the z=0 face {v0,v1,v2}, away from any edge.
	cfg, ok := locate.ClassifyInTet(m, 0, predicates.Point{X: 1.0 / 3, Y: 1.0 / 3, Z: 0})
	require.True(t, ok)
	require.Equal(t, locate.Face, cfg.Kind)
	got := map[int]bool{cfg.A: true, cfg.B: true, cfg.C: true}
	require.True(t, got[ids[0]] && got[ids[1]] && got[ids[2]])
}

func TestClassify_Edge(t *testing.T) {
	m, ids := unitTet(t)
	cfg, ok := locate.ClassifyInTet(m, 0, predicates.Point{X: 0.5, Y: 0, Z: 0})
	require.True(t, ok)
	require.Equal(t, locate.Edge, cfg.Kind)
	got := map[int]bool{cfg.U: true, cfg.W: true}
	require.True(t, got[ids[0]] && got[ids[1]])
}

func TestTetContainsPoint(t *testing.T) {
	m, _ := unitTet(t)
	ok, live := locate.TetContainsPoint(m, 0, predicates.Point{X: 0.1, Y: 0.1, Z: 0.1})
	require.True(t, live)
	require.True(t, ok)

	ok, live = locate.TetContainsPoint(m, 0, predicates.Point{X: 5, Y: 5, Z: 5})
	require.True(t, live)
	require.False(t, ok)
}

func TestFindContainingTet_Leaf(t *testing.T) {
	m, _ := unitTet(t)
	h := locate.NewSplitHistory()

	tid, ok := locate.FindContainingTet(m, h, 0, predicates.Point{X: 0.1, Y: 0.1, Z: 0.1})
	require.True(t, ok)
	require.Equal(t, 0, tid)

	_, ok = locate.FindContainingTet(m, h, 0, predicates.Point{X: 5, Y: 5, Z: 5})
	require.False(t, ok)
}

func TestFindContainingTet_DescendsSplitHistory(t *testing.T) {
	m, ids := unitTet(t)
	h := locate.NewSplitHistory()

	// Simulate DivideTet: tet 0 split into four children, each
	// substituting one of the original vertices with a fresh interior
	// vertex, together re-covering the whole original tet.
	newVid := m.AllocVertexSlot()
	m.SetVertexPos(newVid, predicates.Point{X: 0.25, Y: 0.25, Z: 0.25})

	base := [4]int{ids[0], ids[1], ids[2], ids[3]}
	children := make([]int, 4)
	for i := range children {
		quad := base
		quad[i] = newVid
		tid, err := m.AllocTetSlot(quad)
		require.NoError(t, err)
		children[i] = tid
	}
	m.MarkTetRemoved(0)

	h.Record(0, children)

	tid, ok := locate.FindContainingTet(m, h, 0, predicates.Point{X: 0.2, Y: 0.2, Z: 0.2})
	require.True(t, ok)
	found := false
	for _, c := range children {
		if tid == c {
			found = true
		}
	}
	require.True(t, found)
}
