package advanced

import (
	"math"
	"sort"
)

// Convex hull of the points, as indices in counterclockwise order, by Andrew's
// monotone chain. Collinear points along hull edges are left out, and so are
// duplicates. Fewer than three distinct non-collinear points give whatever
// chain is left (possibly fewer than three indices).
func ConvexHull(points []Point) []int {
	if len(points) == 0 {
		return nil
	}

	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		pa, pb := points[order[a]], points[order[b]]
		if pa.X != pb.X {
			return pa.X < pb.X
		}
		return pa.Y < pb.Y
	})

	hull := make([]int, 0, 2*len(points))
	// Lower chain, then upper chain. Each pass pops until the turn is to the left.
	for pass := 0; pass < 2; pass++ {
		start := len(hull)
		for k := range order {
			i := order[k]
			if pass == 1 {
				i = order[len(order)-1-k]
			}
			for len(hull)-start >= 2 && cross(points[hull[len(hull)-2]], points[hull[len(hull)-1]], points[i]) <= 0 {
				hull = hull[:len(hull)-1]
			}
			hull = append(hull, i)
		}
		// The last point of each chain is the first point of the other
		hull = hull[:len(hull)-1]
	}

	if len(hull) == 2 && points[hull[0]] == points[hull[1]] {
		return hull[:1]
	}
	return hull
}

// Area of the polygon through points in the order given by indices, regardless
// of winding.
func PolygonArea(points []Point, indices []int) float64 {
	var sum float64
	for i, index := range indices {
		p := points[index]
		q := points[indices[(i+1)%len(indices)]]
		sum += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(sum) / 2
}

// Total unsigned area of flat index triples.
func TrianglesArea(points []Point, triangles []int) float64 {
	var sum float64
	for i := 0; i+2 < len(triangles); i += 3 {
		sum += math.Abs(cross(points[triangles[i]], points[triangles[i+1]], points[triangles[i+2]])) / 2
	}
	return sum
}

// Whether the triangles cover the convex hull of the points, to a relative
// tolerance.
func CoversHull(points []Point, triangles []int) bool {
	hullArea := PolygonArea(points, ConvexHull(points))
	return math.Abs(TrianglesArea(points, triangles)-hullArea) <= coverageTolerance*hullArea
}

const coverageTolerance = 1e-9
