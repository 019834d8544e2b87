package advanced

import (
	"fmt"
	"math"
)

// Compute the circumcircle of points i, j and k by intersecting the
// perpendicular bisectors of edges (i,j) and (j,k).
//
// The bisector of a nearly horizontal edge has a slope that blows up, so each
// edge is special cased: when (i,j) is nearly horizontal, its bisector is the
// vertical line through its midpoint, and the center is found on the bisector
// of (j,k) along that line. The same goes for (j,k) the other way around.
//
// Collinear vertices put the center at infinity. Rather than letting NaN or Inf
// leak into later comparisons, such circles (and circles with coincident
// vertices) are flagged as degenerate.
func NewCircumcircle(points []Point, i, j, k int) Circumcircle {
	p1, p2, p3 := points[i], points[j], points[k]

	dy12 := math.Abs(p1.Y - p2.Y)
	dy23 := math.Abs(p2.Y - p3.Y)

	var centerX, centerY float64
	switch {
	case Equal(p1.Y, p2.Y):
		m2 := -(p3.X - p2.X) / (p3.Y - p2.Y)
		mx2 := (p2.X + p3.X) / 2
		my2 := (p2.Y + p3.Y) / 2
		centerX = (p2.X + p1.X) / 2
		centerY = m2*(centerX-mx2) + my2
	case Equal(p2.Y, p3.Y):
		m1 := -(p2.X - p1.X) / (p2.Y - p1.Y)
		mx1 := (p1.X + p2.X) / 2
		my1 := (p1.Y + p2.Y) / 2
		centerX = (p3.X + p2.X) / 2
		centerY = m1*(centerX-mx1) + my1
	default:
		m1 := -(p2.X - p1.X) / (p2.Y - p1.Y)
		m2 := -(p3.X - p2.X) / (p3.Y - p2.Y)
		mx1 := (p1.X + p2.X) / 2
		mx2 := (p2.X + p3.X) / 2
		my1 := (p1.Y + p2.Y) / 2
		my2 := (p2.Y + p3.Y) / 2
		centerX = (m1*mx1 - m2*mx2 + my2 - my1) / (m1 - m2)
		// Use whichever bisector is better conditioned
		if dy12 > dy23 {
			centerY = m1*(centerX-mx1) + my1
		} else {
			centerY = m2*(centerX-mx2) + my2
		}
	}

	center := Point{X: centerX, Y: centerY}
	radiusSq := p2.SquaredDistance(center)
	degenerate := !center.IsFinite() || !isFinite(radiusSq) ||
		p1.Coincident(p2) || p2.Coincident(p3) || p3.Coincident(p1)

	return Circumcircle{
		I:          i,
		J:          j,
		K:          k,
		Center:     center,
		RadiusSq:   radiusSq,
		degenerate: degenerate,
	}
}

// A degenerate circle comes from collinear or coincident vertices. It has no
// meaningful center, and must never enter the triangulation.
func (c Circumcircle) Degenerate() bool {
	return c.degenerate
}

// Whether p is inside the circle, or outside it by no more than Epsilon.
func (c Circumcircle) ContainsPoint(p Point) bool {
	return p.SquaredDistance(c.Center)-c.RadiusSq <= Epsilon
}

// Whether the whole circle lies to the left of p. During the sweep, points
// only ever move right, so a circle left of the current point can never
// contain a later one.
func (c Circumcircle) IsLeftOf(p Point) bool {
	dx := p.X - c.Center.X
	return dx > 0 && dx*dx > c.RadiusSq
}

// Whether all three vertex indices are below n, i.e. none of them belongs to
// a super-triangle appended after n real points.
func (c Circumcircle) indicesBelow(n int) bool {
	return c.I < n && c.J < n && c.K < n
}

func (c Circumcircle) String() string {
	return fmt.Sprintf("<%d, %d, %d|%s|%g>", c.I, c.J, c.K, c.Center, c.RadiusSq)
}
