package advanced

import "github.com/golang/geo/r2"

// Point is a 2D coordinate. It has the same layout as r2.Point, so it converts
// to golang/geo geometry without copying fields around.
type Point r2.Point

// Triangle is three vertices in the order they were supplied, along with a
// cached bounding box and centroid. Triangles are never modified after
// creation. Use NewTriangle to create one, since the zero value has no box.
type Triangle struct {
	A, B, C Point

	bounds   r2.Rect
	centroid Point
}

// Edge is an undirected pair of vertex indices. (A, B) and (B, A) name the same
// edge.
type Edge struct {
	A, B int
}

// EdgeList collects the edges of the triangles retired during a single
// insertion step. Order matters, since new triangles are created by walking it.
type EdgeList []Edge

// Circumcircle associates a vertex index triple with the center and squared
// radius of the circle through those vertices. It only lives for the duration
// of a triangulation.
type Circumcircle struct {
	I, J, K  int
	Center   Point
	RadiusSq float64

	degenerate bool
}
