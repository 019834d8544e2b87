// Delaunay triangulation of point sets, with a bounding volume hierarchy for
// finding the triangle that contains a point.
//
// This package works on flat coordinate slices: points are given as
// x0, y0, x1, y1, ... and triangles come back as flat triples of point
// indices. The advanced package has the same functionality with typed values.
package delaunay

import (
	"github.com/osuushi/delaunay/advanced"
	"github.com/pkg/errors"
)

type Point = advanced.Point
type Triangle = advanced.Triangle

var (
	ErrOddCoordinates  = errors.New("coordinate list has an odd length")
	ErrNonFinite       = errors.New("coordinate is not finite")
	ErrTriangleIndices = errors.New("invalid triangle index list")
	ErrEmptyTriangles  = errors.New("no triangles to index")
)

// Compute the Delaunay triangulation of a flat coordinate list, returning flat
// index triples into the points it describes. Fewer than three points, or
// points that are all collinear, give an empty triangulation and no error.
func BuildTriangulation(coordinates []float64) ([]uint32, error) {
	points, err := pointsFromCoordinates(coordinates)
	if err != nil {
		return nil, err
	}

	indices := advanced.Triangulate(points)
	result := make([]uint32, len(indices))
	for i, index := range indices {
		result[i] = uint32(index)
	}
	return result, nil
}

// BVH answers point location queries over a triangulation. The zero value, and
// a nil *BVH, contain no triangles.
type BVH struct {
	index *advanced.BVH
}

// Triangulate the points and index the result. When the triangulation comes
// out empty, so does the BVH, and every sample misses.
func NewBVH(coordinates []float64) (*BVH, error) {
	points, err := pointsFromCoordinates(coordinates)
	if err != nil {
		return nil, err
	}

	indices := advanced.Triangulate(points)
	if len(indices) == 0 {
		return &BVH{}, nil
	}
	return build(advanced.TrianglesFromIndices(points, indices))
}

// Index an existing triangulation, given as flat index triples into the points.
// The triangles do not need to be Delaunay, or even to cover the points.
func NewBVHWithTriangulation(coordinates []float64, triangles []uint32) (*BVH, error) {
	points, err := pointsFromCoordinates(coordinates)
	if err != nil {
		return nil, err
	}

	if len(triangles)%3 != 0 {
		return nil, errors.Wrapf(ErrTriangleIndices, "length %d is not a multiple of 3", len(triangles))
	}
	if len(triangles) == 0 {
		return nil, ErrEmptyTriangles
	}
	indices := make([]int, len(triangles))
	for i, index := range triangles {
		if int(index) >= len(points) {
			return nil, errors.Wrapf(ErrTriangleIndices, "index %d at position %d is out of range for %d points", index, i, len(points))
		}
		indices[i] = int(index)
	}

	return build(advanced.TrianglesFromIndices(points, indices))
}

func build(triangles []*Triangle) (result *BVH, err error) {
	defer func() {
		recoveredErr := advanced.HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return &BVH{index: advanced.Build(triangles)}, nil
}

// Find the triangle containing (x, y), and return its vertex coordinates as
// ax, ay, bx, by, cx, cy. Returns nil if no triangle contains the point.
func (b *BVH) Sample(x, y float64) []float64 {
	if b == nil {
		return nil
	}
	triangle := b.index.Sample(Point{X: x, Y: y})
	if triangle == nil {
		return nil
	}
	return triangle.Flatten()
}

// The underlying hierarchy, or nil if there are no triangles.
func (b *BVH) Index() *advanced.BVH {
	if b == nil {
		return nil
	}
	return b.index
}

func pointsFromCoordinates(coordinates []float64) ([]Point, error) {
	if len(coordinates)%2 != 0 {
		return nil, errors.Wrapf(ErrOddCoordinates, "got %d values", len(coordinates))
	}

	points := make([]Point, len(coordinates)/2)
	for i := range points {
		points[i] = Point{X: coordinates[2*i], Y: coordinates[2*i+1]}
		if !points[i].IsFinite() {
			return nil, errors.Wrapf(ErrNonFinite, "point %d is %s", i, points[i])
		}
	}
	return points, nil
}
