// Package attrs provides the three attribute tables shared by every
// simplex kind: vertex and tet attributes are index-keyed and grow
// append-only as new slots are allocated; face attributes are keyed by
// the sorted vertex triple of the face since faces are not first-class
// cells in this mesh representation.
//
// Growth never invalidates an outstanding index: Grow only appends.
// Shrinking (relabeling indices down after tombstoned slots are
// reclaimed) is the job of meshcore.Mesh.Consolidate, which calls
// MoveTo explicitly rather than mutating a table's length out from
// under a live index.
package attrs
