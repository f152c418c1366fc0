// Package meshcore is the connectivity store for a tetrahedral complex:
// vertex<->tet incidence, tet vertex quadruples with an orientation
// invariant, per-cell removal flags and mutation hashes, and the
// concrete vertex/face/tet attribute payloads.
//
// Mesh is deliberately low-level: it exposes the mutation primitives
// (AllocVertexSlot, AllocTetSlot, MarkTetRemoved, incidence rewiring,
// hash bumping) that package operation's driver composes into atomic
// local edits. Callers assembling a mesh-modification algorithm should
// reach for package operation and package ops, not for Mesh's mutation
// methods directly.
package meshcore
