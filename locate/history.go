package locate

import (
	"sync"

	"github.com/katalvlaran/tetmesh/predicates"
)

// SplitHistory is a per-pass mapping from parent tet id to the children
// produced when an insertion operation destroyed it. Descend on query;
// leaves are absent keys.
type SplitHistory struct {
	mu       sync.RWMutex
	children map[int][]int
}

// NewSplitHistory returns an empty split-history tree.
func NewSplitHistory() *SplitHistory {
	return &SplitHistory{children: make(map[int][]int)}
}

// Record registers that parent was replaced by children during this
// pass. Called once per removed tet after an operation-builder edit.
func (h *SplitHistory) Record(parent int, children []int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	cp := make([]int, len(children))
	copy(cp, children)
	h.children[parent] = cp
}

// Children returns the recorded children of parent, and whether parent
// has ever been split (false for a leaf).
func (h *SplitHistory) Children(parent int) ([]int, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	c, ok := h.children[parent]
	return c, ok
}

// FindContainingTet descends the split history starting at tid looking
// for a live leaf tet that contains p: if tid is a leaf (absent from the
// history), it is tested directly and returned on success; otherwise
// every recorded child is tried in turn, recursively. Returns (-1,
// false) if no leaf in the subtree contains p; callers treat that as
// an outside-hull condition at the top level.
func FindContainingTet(m Mesh, h *SplitHistory, tid int, p predicates.Point) (int, bool) {
	children, split := h.Children(tid)
	if !split {
		ok, live := TetContainsPoint(m, tid, p)
		if live && ok {
			return tid, true
		}
		return -1, false
	}

	for _, c := range children {
		if found, ok := FindContainingTet(m, h, c, p); ok {
			return found, true
		}
	}
	return -1, false
}
