package advanced

import (
	"fmt"

	"github.com/golang/geo/r2"
)

func NewTriangle(a, b, c Point) *Triangle {
	return &Triangle{
		A:      a,
		B:      b,
		C:      c,
		bounds: r2.RectFromPoints(a.vec(), b.vec(), c.vec()),
		centroid: Point{
			X: (a.X + b.X + c.X) / 3,
			Y: (a.Y + b.Y + c.Y) / 3,
		},
	}
}

// Build triangles from flat index triples into points. Indices are trusted;
// the root package validates them before calling this.
func TrianglesFromIndices(points []Point, indices []int) []*Triangle {
	triangles := make([]*Triangle, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		triangles = append(triangles, NewTriangle(
			points[indices[i]],
			points[indices[i+1]],
			points[indices[i+2]],
		))
	}
	return triangles
}

// The tight axis aligned bounding box of the three vertices.
func (t *Triangle) Bounds() r2.Rect {
	return t.bounds
}

func (t *Triangle) Centroid() Point {
	return t.centroid
}

func (t *Triangle) Vertices() [3]Point {
	return [3]Point{t.A, t.B, t.C}
}

// Vertex coordinates flattened as ax, ay, bx, by, cx, cy.
func (t *Triangle) Flatten() []float64 {
	return []float64{t.A.X, t.A.Y, t.B.X, t.B.Y, t.C.X, t.C.Y}
}

// Positive for counterclockwise triangles, negative for clockwise ones.
func (t *Triangle) SignedArea() float64 {
	return cross(t.A, t.B, t.C) / 2
}

// Point in triangle by sign consistency. The point is inside when it does not
// sit strictly on opposite sides of any two of the edges (a,b), (b,c) and (c,a).
// This works for either winding, and points on an edge count as inside, so a
// point on an edge shared by two triangles is contained by both of them.
func (t *Triangle) ContainsPoint(p Point) bool {
	ab := cross(t.A, t.B, p)
	bc := cross(t.B, t.C, p)
	ca := cross(t.C, t.A, p)

	hasNegative := ab < 0 || bc < 0 || ca < 0
	hasPositive := ab > 0 || bc > 0 || ca > 0
	return !(hasNegative && hasPositive)
}

func (t *Triangle) String() string {
	return fmt.Sprintf("<%s, %s, %s>", t.A, t.B, t.C)
}
