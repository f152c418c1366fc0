// Package meshlog provides the structured logger shared by the tetmesh
// packages.
//
// tetmesh is a library, not a binary: it never configures logging output
// itself (CLI/parameter parsing and logging setup are explicitly out of
// scope for this module). Instead it holds a single package-level
// *zap.SugaredLogger behind L(), defaulting to a no-op logger so an
// embedding application gets silence until it calls SetLogger.
package meshlog
