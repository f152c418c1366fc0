// Package predicates defines the orientation/collinearity oracle that
// the rest of tetmesh depends on, plus the double-precision
// implementation used when no higher-precision oracle is supplied.
//
// The kernel never reimplements 3D orientation or collinearity testing
// itself — correctness of the point locator and of every operation's
// orientation check depends on the oracle being correct. Oracle is the
// seam: callers who need robustness near degenerate configurations
// supply their own implementation (e.g. a Shewchuk-style adaptive
// predicate package, or one backed by exact rational arithmetic); Double
// is provided so the module is usable standalone.
package predicates
