package advanced

// This contains no actual tests. It is just a helper for checking that a
// triangulation is a valid Delaunay triangulation.

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// Check a triangulation of points given as flat index triples. The rules are:
// 1. Indices are in range and no triangle has zero area.
// 2. No point lies strictly inside the circumcircle of any triangle.
// 3. The triangle areas add up to the area of the convex hull.
// 4. Every hull vertex is a vertex of some triangle.
// 5. Every edge is shared by one or two triangles, and the ones that belong to
//    a single triangle lie on the hull.
func AssertValidDelaunay(t *testing.T, points []Point, indices []int) {
	t.Helper()
	require.NoError(t, CheckDelaunay(points, indices))
}

// Same checks as AssertValidDelaunay, for use where there is no *testing.T.
func CheckDelaunay(points []Point, indices []int) error {
	if len(indices)%3 != 0 {
		return errors.Errorf("index list length %d is not a multiple of 3", len(indices))
	}
	for _, index := range indices {
		if index < 0 || index >= len(points) {
			return errors.Errorf("index %d out of range", index)
		}
	}

	triangles := TrianglesFromIndices(points, indices)
	for _, tri := range triangles {
		if tri.SignedArea() == 0 {
			return errors.Errorf("zero area triangle: %s", tri)
		}
	}

	if err := checkDelaunayProperty(points, triangles); err != nil {
		return err
	}

	hull := ConvexHull(points)
	hullArea := PolygonArea(points, hull)
	if area := TrianglesArea(points, indices); math.Abs(area-hullArea) > 1e-6*hullArea {
		return errors.Errorf("triangles cover an area of %g, but the hull has an area of %g", area, hullArea)
	}

	// By coordinates, since a duplicated hull point may be used under either index
	used := make(map[Point]struct{})
	for _, index := range indices {
		used[points[index]] = struct{}{}
	}
	if hullArea > 0 {
		for _, index := range hull {
			if _, ok := used[points[index]]; !ok {
				return errors.Errorf("hull vertex %d %s is not used by any triangle", index, points[index])
			}
		}
	}

	edgeCounts := make(map[normalizedEdge]int)
	for i := 0; i < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		edgeCounts[newNormalizedEdge(a, b)]++
		edgeCounts[newNormalizedEdge(b, c)]++
		edgeCounts[newNormalizedEdge(c, a)]++
	}
	for edge, count := range edgeCounts {
		if count > 2 {
			return errors.Errorf("edge %v is shared by %d triangles", edge, count)
		}
		if count == 1 && !(onHullBoundary(points, hull, points[edge.lower]) && onHullBoundary(points, hull, points[edge.upper])) {
			return errors.Errorf("edge %v belongs to a single triangle but is not on the hull", edge)
		}
	}
	return nil
}

func checkDelaunayProperty(points []Point, triangles []*Triangle) error {
	for _, tri := range triangles {
		center, radiusSq := referenceCircumcircle(tri.A, tri.B, tri.C)
		for _, p := range points {
			distanceSq := p.SquaredDistance(center)
			if radiusSq-distanceSq > 1e-6*radiusSq+Epsilon {
				return errors.Errorf("point %s is inside the circumcircle of %s", p, tri)
			}
		}
	}
	return nil
}

// Circumcircle by the closed form determinant formula, computed relative to a so
// that large offsets don't eat the precision. This is deliberately a different
// route than the bisector intersection used by the triangulation.
func referenceCircumcircle(a, b, c Point) (Point, float64) {
	bx, by := b.X-a.X, b.Y-a.Y
	cx, cy := c.X-a.X, c.Y-a.Y
	d := 2 * (bx*cy - by*cx)
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy
	ux := (cy*b2 - by*c2) / d
	uy := (bx*c2 - cx*b2) / d
	return Point{X: a.X + ux, Y: a.Y + uy}, ux*ux + uy*uy
}

func onHullBoundary(points []Point, hull []int, p Point) bool {
	for i, index := range hull {
		a := points[index]
		b := points[hull[(i+1)%len(hull)]]
		if segmentDistance(p, a, b) < 1e-6 {
			return true
		}
	}
	return false
}

func segmentDistance(p, a, b Point) float64 {
	lengthSq := a.SquaredDistance(b)
	if lengthSq == 0 {
		return math.Sqrt(p.SquaredDistance(a))
	}
	t := ((p.X-a.X)*(b.X-a.X) + (p.Y-a.Y)*(b.Y-a.Y)) / lengthSq
	t = math.Max(0, math.Min(1, t))
	closest := Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
	return math.Sqrt(p.SquaredDistance(closest))
}

// Undirected edge with the smaller index first, for use as a map key
type normalizedEdge struct {
	lower, upper int
}

func newNormalizedEdge(a, b int) normalizedEdge {
	if a < b {
		return normalizedEdge{a, b}
	}
	return normalizedEdge{b, a}
}

// Sort-independent identity of a triangle, by its vertex coordinates
type triangleKey [3]Point

func newTriangleKey(t *Triangle) triangleKey {
	key := triangleKey{t.A, t.B, t.C}
	less := func(p, q Point) bool {
		if p.X != q.X {
			return p.X < q.X
		}
		return p.Y < q.Y
	}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if less(key[j], key[i]) {
				key[i], key[j] = key[j], key[i]
			}
		}
	}
	return key
}
