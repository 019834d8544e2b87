package delaunay

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scenario = []float64{
	150, 150,
	340, 200,
	100, 350,
	160, 640,
	470, 150,
	400, 400,
}

// Smoke tests. The internals are tested in advanced.
func TestBuildTriangulation(t *testing.T) {
	t.Run("scenario", func(t *testing.T) {
		triangles, err := BuildTriangulation(scenario)
		require.NoError(t, err)
		assert.Equal(t, []uint32{0, 2, 1, 2, 3, 5, 1, 2, 5, 0, 1, 4, 1, 5, 4}, triangles)
	})

	t.Run("square", func(t *testing.T) {
		triangles, err := BuildTriangulation([]float64{1, -1, 1, 1, -1, 1, -1, -1})
		require.NoError(t, err)
		assert.Len(t, triangles, 6)
	})

	t.Run("too few points", func(t *testing.T) {
		triangles, err := BuildTriangulation([]float64{0, 0, 1, 1})
		assert.NoError(t, err)
		assert.Empty(t, triangles)

		triangles, err = BuildTriangulation(nil)
		assert.NoError(t, err)
		assert.Empty(t, triangles)
	})

	t.Run("odd coordinates", func(t *testing.T) {
		_, err := BuildTriangulation([]float64{0, 0, 1, 1, 2})
		assert.ErrorIs(t, err, ErrOddCoordinates)
		assert.Equal(t, ErrOddCoordinates, errors.Cause(err))
	})

	t.Run("non-finite", func(t *testing.T) {
		_, err := BuildTriangulation([]float64{0, 0, 1, math.NaN(), 2, 0})
		assert.ErrorIs(t, err, ErrNonFinite)
		_, err = BuildTriangulation([]float64{0, 0, math.Inf(1), 1, 2, 0})
		assert.ErrorIs(t, err, ErrNonFinite)
	})
}

func TestNewBVH(t *testing.T) {
	t.Run("scenario", func(t *testing.T) {
		bvh, err := NewBVH(scenario)
		require.NoError(t, err)
		assert.Equal(t, []float64{150, 150, 100, 350, 340, 200}, bvh.Sample(200, 250))
		assert.Nil(t, bvh.Sample(0, 0))
	})

	t.Run("shared edge", func(t *testing.T) {
		bvh, err := NewBVH(scenario)
		require.NoError(t, err)
		found := bvh.Sample(220, 275)
		candidates := [][]float64{
			{150, 150, 100, 350, 340, 200},
			{340, 200, 100, 350, 400, 400},
		}
		assert.Contains(t, candidates, found)
	})

	t.Run("empty triangulation", func(t *testing.T) {
		bvh, err := NewBVH([]float64{0, 0, 1, 1})
		require.NoError(t, err)
		require.NotNil(t, bvh)
		assert.Nil(t, bvh.Sample(0.5, 0.5))
		assert.Nil(t, bvh.Index())
	})

	t.Run("bad coordinates", func(t *testing.T) {
		_, err := NewBVH([]float64{0})
		assert.ErrorIs(t, err, ErrOddCoordinates)
	})

	t.Run("index", func(t *testing.T) {
		bvh, err := NewBVH(scenario)
		require.NoError(t, err)
		require.NotNil(t, bvh.Index())
		assert.Equal(t, 9, bvh.Index().Len())
	})

	t.Run("nil", func(t *testing.T) {
		var bvh *BVH
		assert.Nil(t, bvh.Sample(1, 1))
		assert.Nil(t, bvh.Index())
	})
}

func TestNewBVHWithTriangulation(t *testing.T) {
	t.Run("same as building directly", func(t *testing.T) {
		triangles, err := BuildTriangulation(scenario)
		require.NoError(t, err)
		withTriangulation, err := NewBVHWithTriangulation(scenario, triangles)
		require.NoError(t, err)
		direct, err := NewBVH(scenario)
		require.NoError(t, err)

		for x := 100.0; x <= 470; x += 10 {
			for y := 150.0; y <= 640; y += 10 {
				assert.Equal(t, direct.Sample(x, y), withTriangulation.Sample(x, y), "(%g, %g)", x, y)
			}
		}
		assert.Equal(t, direct.Index().Len(), withTriangulation.Index().Len())
	})

	t.Run("arbitrary triangles", func(t *testing.T) {
		bvh, err := NewBVHWithTriangulation([]float64{0, 0, 10, 0, 0, 10, 10, 10}, []uint32{0, 1, 2})
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0, 10, 0, 0, 10}, bvh.Sample(2, 2))
		assert.Nil(t, bvh.Sample(8, 8))
	})

	t.Run("length not a multiple of 3", func(t *testing.T) {
		_, err := NewBVHWithTriangulation(scenario, []uint32{0, 1})
		assert.ErrorIs(t, err, ErrTriangleIndices)
	})

	t.Run("index out of range", func(t *testing.T) {
		_, err := NewBVHWithTriangulation(scenario, []uint32{0, 1, 6})
		assert.ErrorIs(t, err, ErrTriangleIndices)
		assert.Contains(t, err.Error(), "index 6")
	})

	t.Run("no triangles", func(t *testing.T) {
		_, err := NewBVHWithTriangulation(scenario, nil)
		assert.ErrorIs(t, err, ErrEmptyTriangles)
	})

	t.Run("bad coordinates", func(t *testing.T) {
		_, err := NewBVHWithTriangulation([]float64{0, 0, 1}, []uint32{0, 1, 2})
		assert.ErrorIs(t, err, ErrOddCoordinates)
	})
}
