package advanced

import (
	"math"
	"sort"
)

// Incremental Bowyer-Watson Delaunay triangulation.
//
// Points are inserted in order of increasing X. Every triangle whose
// circumcircle contains the new point is retired, and the hole this leaves is
// refilled with a fan of triangles from its boundary to the new point. Because
// of the X ordering, a triangle whose circumcircle lies completely to the left
// of the current point can never be touched again, so it is moved out of the
// working set early. This keeps the scan over open triangles short.
//
// A finite super-triangle has one well known flaw: a hull triangle so thin that
// one of the super vertices falls inside its circumcircle is never created,
// leaving a sliver of the hull uncovered. When that happens, the whole
// triangulation is redone with a much larger super-triangle.

// Multipliers applied to the larger side of the bounding box when sizing the
// super-triangle, in the order they are tried.
var superTriangleScales = []float64{20, 8000, 3200000}

// Triangulate the points, and return a flat list of index triples into points.
// Fewer than three points give an empty result. Index triples refer to the
// original order of points, and the slice itself is not modified.
//
// Output is deterministic for a given input order. Points with equal X are
// inserted in input order.
func Triangulate(points []Point) []int {
	if len(points) < 3 {
		return nil
	}

	var first []int
	for i, scale := range superTriangleScales {
		result := triangulate(points, scale)
		if i == 0 {
			first = result
		}
		if CoversHull(points, result) {
			return result
		}
	}
	// Degenerate input that no super-triangle fixes. The first attempt is as
	// good as any.
	return first
}

func triangulate(points []Point, scale float64) []int {
	n := len(points)

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return points[indices[a]].X < points[indices[b]].X
	})

	// Work on a copy with the super-triangle appended at n, n+1 and n+2
	super := SuperTriangle(points, scale)
	work := make([]Point, 0, n+3)
	work = append(work, points...)
	work = append(work, super[:]...)

	open := []Circumcircle{NewCircumcircle(work, n, n+1, n+2)}
	var closed []Circumcircle
	var edges EdgeList

	for _, c := range indices {
		p := work[c]
		edges = edges[:0]

		for j := len(open) - 1; j >= 0; j-- {
			circle := open[j]

			if circle.IsLeftOf(p) {
				open = append(open[:j], open[j+1:]...)
				closed = append(closed, circle)
				continue
			}

			if !circle.ContainsPoint(p) {
				continue
			}

			open = append(open[:j], open[j+1:]...)
			edges = append(edges,
				Edge{circle.I, circle.J},
				Edge{circle.J, circle.K},
				Edge{circle.K, circle.I},
			)
		}

		// What's left is the boundary of the hole
		edges.RemoveDuplicates()

		for k := len(edges) - 1; k >= 0; k-- {
			circle := NewCircumcircle(work, edges[k].A, edges[k].B, c)
			if circle.Degenerate() {
				continue
			}
			open = append(open, circle)
		}
	}

	closed = append(closed, open...)

	var result []int
	for _, circle := range closed {
		if circle.indicesBelow(n) {
			result = append(result, circle.I, circle.J, circle.K)
		}
	}
	return result
}

// Build a triangle that strictly contains every point. It is derived from the
// bounding box, inflated to scale times its larger side. If all points
// coincide, a unit side is used so the triangle still has area.
func SuperTriangle(points []Point, scale float64) [3]Point {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	dx := maxX - minX
	dy := maxY - minY
	dMax := math.Max(dx, dy)
	if dMax < Epsilon {
		dMax = 1
	}
	midX := minX + dx/2
	midY := minY + dy/2

	return [3]Point{
		{X: midX - scale*dMax, Y: midY - dMax},
		{X: midX, Y: midY + scale*dMax},
		{X: midX + scale*dMax, Y: midY - dMax},
	}
}

func (e Edge) Equals(other Edge) bool {
	return (e.A == other.A && e.B == other.B) || (e.A == other.B && e.B == other.A)
}

// Remove every edge that appears twice (in either direction), deleting both
// copies. Those edges were shared by two retired triangles, so they are
// interior to the hole. Scanning runs from the back, and the relative order of
// the surviving edges is kept.
func (list *EdgeList) RemoveDuplicates() {
	edges := *list
	j := len(edges)
	for j >= 1 {
		j--
		edge := edges[j]
		for i := j - 1; i >= 0; i-- {
			if edge.Equals(edges[i]) {
				edges = append(edges[:j], edges[j+1:]...)
				edges = append(edges[:i], edges[i+1:]...)
				j--
				break
			}
		}
	}
	*list = edges
}
