package ops

import (
	"math"

	"github.com/katalvlaran/tetmesh/predicates"
)

// Quality computes the mean-ratio shape quality of the tet (v0,v1,v2,v3):
// 12 * (3*volume)^(2/3) divided by the sum of squared edge lengths. A
// regular tet scores exactly 1; quality degrades to 0 as the tet
// flattens. Recomputed after every local operation.
func Quality(v0, v1, v2, v3 predicates.Point) float64 {
	vol := signedVolume(v0, v1, v2, v3)
	if vol < 0 {
		vol = -vol
	}

	sumSq := sqDist(v0, v1) + sqDist(v0, v2) + sqDist(v0, v3) +
		sqDist(v1, v2) + sqDist(v1, v3) + sqDist(v2, v3)
	if sumSq == 0 {
		return 0
	}

	num := 12.0 * math.Cbrt(3*vol*3*vol)
	return num / sumSq
}

func signedVolume(a, b, c, d predicates.Point) float64 {
	ax, ay, az := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	bx, by, bz := c.X-a.X, c.Y-a.Y, c.Z-a.Z
	cx, cy, cz := d.X-a.X, d.Y-a.Y, d.Z-a.Z
	det := ax*(by*cz-bz*cy) - ay*(bx*cz-bz*cx) + az*(bx*cy-by*cx)
	return det / 6.0
}

func sqDist(p, q predicates.Point) float64 {
	dx, dy, dz := p.X-q.X, p.Y-q.Y, p.Z-q.Z
	return dx*dx + dy*dy + dz*dz
}
