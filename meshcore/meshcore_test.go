package meshcore_test

import (
	"testing"

	"github.com/katalvlaran/tetmesh/meshcore"
	"github.com/katalvlaran/tetmesh/predicates"
	"github.com/stretchr/testify/require"
)

func unitTet(t *testing.T) *meshcore.Mesh {
	t.Helper()
	m, err := meshcore.NewMesh(0, nil, predicates.Double{})
	require.NoError(t, err)

	pts := []predicates.Point{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
	ids := [4]int{}
	for i, p := range pts {
		vid := m.AllocVertexSlot()
		m.SetVertexPos(vid, p)
		ids[i] = vid
	}
	_, err = m.AllocTetSlot(ids)
	require.NoError(t, err)
	return m
}

func TestNewMesh_RejectsNonPositiveOrientation(t *testing.T) {
	oracle := predicates.Double{}
	_, err := meshcore.NewMesh(4, [][4]int{{0, 1, 2, 3}}, oracle)
	// vertex positions default to the zero point, so orientation is
	// degenerate (0), which must be rejected.
	require.Error(t, err)
}

func TestAllocTetSlot_WiresIncidence(t *testing.T) {
	m := unitTet(t)
	require.Equal(t, 4, m.VertCapacity())
	require.Equal(t, 1, m.TetCapacity())

	for vid := 0; vid < 4; vid++ {
		inc := m.VertexIncidence(vid)
		require.Len(t, inc, 1)
		require.Equal(t, 0, inc[0])
	}
	require.NoError(t, m.CheckInvariants())
}

func TestAllocTetSlot_RejectsInvertedTet(t *testing.T) {
	m := unitTet(t)
	vids, _ := m.TetVids(0)
	inverted := [4]int{vids[1], vids[0], vids[2], vids[3]}
	_, err := m.AllocTetSlot(inverted)
	require.ErrorIs(t, err, meshcore.ErrNonPositiveOrientation)
}

func TestMarkTetRemoved_ClearsIncidence(t *testing.T) {
	m := unitTet(t)
	m.MarkTetRemoved(0)

	require.True(t, m.IsTetRemoved(0))
	for vid := 0; vid < 4; vid++ {
		require.Empty(t, m.VertexIncidence(vid))
	}
}

func TestConsolidate_CompactsTombstones(t *testing.T) {
	m := unitTet(t)
	extra := m.AllocVertexSlot()
	m.SetVertexPos(extra, predicates.Point{X: 5, Y: 5, Z: 5})

	// extra is never referenced by a live tet; Consolidate should drop it.
	err := m.Consolidate(meshcore.ConsolidateHooks{})
	require.NoError(t, err)
	require.Equal(t, 4, m.VertCapacity())
	require.Equal(t, 1, m.TetCapacity())
	require.NoError(t, m.CheckInvariants())
}
