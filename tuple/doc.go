// Package tuple implements the cell-tuple cursor used to navigate a
// tetrahedral complex: the quadruple (vertex, local edge, local face,
// tet) together with the four switch operations.
//
// A Tuple is a location cursor, not a cell: switch operations are pure
// functions of the connectivity snapshot passed in, they never mutate
// it, and a Tuple is only valid so long as its cached tet hash matches
// the tet's current hash (see Connectivity.TetHash).
package tuple
