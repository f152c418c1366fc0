package predicates

// Point is a point or vector in R^3, stored in double precision.
//
// VertexAttributes.Rounded in package meshcore tracks whether a vertex's Point is
// considered geometrically valid; Point itself carries no such flag.
type Point struct {
	X, Y, Z float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Equal reports whether p and q are bit-for-bit identical. Callers that
// need a tolerance should round or snap points before comparing; the
// kernel's vertex-snap classification (see package locate) relies on this
// being an exact comparison so that re-inserting a previously inserted
// point is idempotent.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y && p.Z == q.Z
}

// Midpoint returns the midpoint of p and q.
func Midpoint(p, q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2, (p.Z + q.Z) / 2}
}

// Oracle is the external exact-predicate collaborator. Orient3D and
// PointsAreCollinear3D are assumed correct; the kernel only ever calls
// into them, it never second-guesses their result.
type Oracle interface {
	// Orient3D returns the sign of the signed volume of the tetrahedron
	// (a,b,c,d): positive when (a,b,c,d) is positively oriented, negative
	// when it is inverted, zero when the four points are coplanar.
	Orient3D(a, b, c, d Point) int

	// PointsAreCollinear3D reports whether a, b and c lie on a common line.
	PointsAreCollinear3D(a, b, c Point) bool
}
