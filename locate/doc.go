// Package locate implements the point locator: containment testing,
// the degenerate-configuration classifier, and the split-history
// descent that re-locates a hint tet after local mesh edits split it
// into children.
package locate
