// Package tetmesh is an adaptive tetrahedral mesh engine: connectivity
// storage, a tuple-based cursor navigator, a pluggable local-operation
// protocol, the three concrete topological edits (split an edge, split
// a face, divide a tet), and the point-locator-driven insertion pass
// that ties them together.
//
// Subpackages, one concern each:
//
//	predicates/ — exact-predicate oracle (orientation, collinearity)
//	meshcore/   — connectivity store: vertices, tets, incidence, invariants
//	tuple/      — the cursor type and its four switch operations
//	attrs/      — index- and triple-keyed attribute tables
//	operation/  — the Operation capability record + generic driver
//	ops/        — SplitEdge, SplitFace, DivideTet
//	locate/     — containment test, configuration classifier, split-history descent
//	insertion/  — the per-point insertion driver
//	meshlog/    — the structured logger shared by the packages above
//
// This module ships the kernel only: the envelope/containment oracle,
// the AABB hint tree, mesh file I/O, and higher-level mesh-improvement
// passes (smoothing, collapse, swap, sizing-field adaptation) are
// external collaborators reached through interfaces (predicates.Oracle,
// insertion.HintSource), not implemented here.
package tetmesh
