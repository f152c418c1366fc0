package predicates

import "math"

// Double is a plain double-precision implementation of Oracle. It is not
// robust near-degenerate configurations — the module's non-goals
// explicitly disclaim floating-point robustness beyond invoking the
// oracle — but it is adequate for well-conditioned test meshes and for
// callers that don't carry exact-rational vertex positions.
type Double struct {
	// Eps is the tolerance used to treat a near-zero orientation
	// determinant as exactly zero. Zero means use the exact double
	// comparison (determinant == 0).
	Eps float64
}

var _ Oracle = Double{}

// Orient3D computes sign(det[b-a; c-a; d-a]).
func (o Double) Orient3D(a, b, c, d Point) int {
	ax, ay, az := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	bx, by, bz := c.X-a.X, c.Y-a.Y, c.Z-a.Z
	cx, cy, cz := d.X-a.X, d.Y-a.Y, d.Z-a.Z

	det := ax*(by*cz-bz*cy) - ay*(bx*cz-bz*cx) + az*(bx*cy-by*cx)

	if o.Eps > 0 && math.Abs(det) <= o.Eps {
		return 0
	}
	switch {
	case det > 0:
		return 1
	case det < 0:
		return -1
	default:
		return 0
	}
}

// PointsAreCollinear3D reports whether a, b, c lie on a common line by
// checking that (b-a) x (c-a) is (near) zero.
func (o Double) PointsAreCollinear3D(a, b, c Point) bool {
	ux, uy, uz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	vx, vy, vz := c.X-a.X, c.Y-a.Y, c.Z-a.Z

	cx := uy*vz - uz*vy
	cy := uz*vx - ux*vz
	cz := ux*vy - uy*vx

	normSq := cx*cx + cy*cy + cz*cz
	if o.Eps > 0 {
		return normSq <= o.Eps*o.Eps
	}
	return normSq == 0
}
