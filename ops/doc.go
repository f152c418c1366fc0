// Package ops implements the three local mesh edits that the insertion
// driver dispatches to: SplitEdge, SplitFace and DivideTet. Each is an
// operation.Operation value that captures the cursor's mesh on
// construction and carries state between its Before/After hooks.
package ops
