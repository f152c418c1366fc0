package attrs

// IndexTable is an append-only, index-keyed attribute table shared by
// the vertex and tet attribute tables. The zero value of T is used to
// fill newly grown slots.
type IndexTable[T any] struct {
	data []T
}

// NewIndexTable allocates a table with n zero-valued slots.
func NewIndexTable[T any](n int) *IndexTable[T] {
	return &IndexTable[T]{data: make([]T, n)}
}

// Len returns the current slot count.
func (t *IndexTable[T]) Len() int { return len(t.data) }

// Grow extends the table so that Len() >= n, never truncating existing
// data and never changing the position of any existing slot.
func (t *IndexTable[T]) Grow(n int) {
	for len(t.data) < n {
		var zero T
		t.data = append(t.data, zero)
	}
}

// Get returns the attribute at index i.
func (t *IndexTable[T]) Get(i int) T { return t.data[i] }

// Set stores v at index i.
func (t *IndexTable[T]) Set(i int, v T) { t.data[i] = v }

// MoveTo relabels the slot at "from" to live at "to", used by
// Consolidate when compacting tombstoned slots. Both indices must
// already be within range.
func (t *IndexTable[T]) MoveTo(from, to int) {
	t.data[to] = t.data[from]
}

// Truncate shrinks the table to n slots. Only Consolidate may call this,
// after it has relabeled every surviving index below n.
func (t *IndexTable[T]) Truncate(n int) {
	t.data = t.data[:n]
}
