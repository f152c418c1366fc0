// Package insertion implements the point-insertion driver: per-point
// dispatch to {no-op, SplitEdge, SplitFace, DivideTet}, split-history
// bookkeeping across a pass, and summary stats.
package insertion
