package advanced

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Epsilon is the tolerance for every inside/outside and near-collinearity
// decision in the package.
const Epsilon = 1e-5

// Tolerance based float equality.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func (p Point) vec() r2.Point {
	return r2.Point(p)
}

func (p Point) SquaredDistance(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Two points are coincident if they are closer than Epsilon.
func (p Point) Coincident(q Point) bool {
	return p.SquaredDistance(q) < Epsilon*Epsilon
}

func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Cross product of (b - a) and (p - a). Positive when p is to the left of the
// directed line a→b.
func cross(a, b, p Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}
