// Package operation defines the operation-builder protocol: the
// Operation interface every local mesh edit implements, and the single
// generic driver, CustomizedOperation, that executes any Operation
// atomically against a Mesh.
//
// A plain interface consumed by one free function, rather than a class
// hierarchy, keeps each concrete edit (SplitEdge, SplitFace, DivideTet)
// free to carry only the state its own Before/After hooks need.
package operation
