package attrs

import "sort"

// FaceKey is the content-addressed identity of a face: the sorted
// triple of its three vertex indices. Two tets sharing a face always
// compute the same FaceKey for it, so a single attribute record can be
// shared between them.
type FaceKey [3]int

// NewFaceKey canonicalizes (a,b,c) into sorted order.
func NewFaceKey(a, b, c int) FaceKey {
	k := [3]int{a, b, c}
	sort.Ints(k[:])
	return FaceKey(k)
}

// FaceTable is a content-keyed attribute table for faces.
type FaceTable[T any] struct {
	data map[FaceKey]T
}

// NewFaceTable allocates an empty face attribute table.
func NewFaceTable[T any]() *FaceTable[T] {
	return &FaceTable[T]{data: make(map[FaceKey]T)}
}

// Get returns the attribute stored at k, or the zero value and false if
// none has been set yet.
func (t *FaceTable[T]) Get(k FaceKey) (T, bool) {
	v, ok := t.data[k]
	return v, ok
}

// Set stores v under k, creating the record if absent.
func (t *FaceTable[T]) Set(k FaceKey, v T) {
	t.data[k] = v
}

// Delete removes any record stored under k. Used when a face's
// attribute becomes interior and should reset to a fresh value the next
// time the triple is queried.
func (t *FaceTable[T]) Delete(k FaceKey) {
	delete(t.data, k)
}

// Len reports how many distinct faces currently carry a record.
func (t *FaceTable[T]) Len() int { return len(t.data) }
