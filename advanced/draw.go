package advanced

import (
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Rendering of meshes and hierarchies, for debugging and for the command line
// tool.

const dbgDrawPadding = 20

// Render triangles as a PNG, with the boxes of bvh drawn on top if it is not
// nil. Scale is in pixels per unit. The origin is at the bottom left.
func DrawMesh(w io.Writer, points []Point, triangles []*Triangle, bvh *BVH, scale float64) error {
	c := newMeshContext(points, triangles, scale)

	c.SetLineWidth(1)
	for _, t := range triangles {
		c.MoveTo(t.A.X, t.A.Y)
		c.LineTo(t.B.X, t.B.Y)
		c.LineTo(t.C.X, t.C.Y)
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	if bvh != nil {
		bvh.Walk(func(id NodeID, depth int) bool {
			bounds := bvh.Bounds(id)
			c.DrawRectangle(bounds.X.Lo, bounds.Y.Lo, bounds.X.Length(), bounds.Y.Length())
			// Deeper boxes fade out
			c.SetRGBA(1, 1, 0, math.Max(0.1, 0.8-0.1*float64(depth)))
			c.Stroke()
			return true
		})
	}

	c.SetRGB(1, 0.3, 0.3)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 3/scale)
		c.Fill()
	}

	return c.EncodePNG(w)
}

// Render the mesh to a temporary PNG and print it to w with the iTerm inline
// image protocol.
func PrintMesh(w io.Writer, points []Point, triangles []*Triangle, bvh *BVH, scale float64) error {
	file, err := os.CreateTemp("", "delaunay-*.png")
	if err != nil {
		return err
	}
	defer os.Remove(file.Name())

	if err := DrawMesh(file, points, triangles, bvh, scale); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	imgcat.CatFile(file.Name(), w)
	return nil
}

// A context sized to fit everything, flipped so that Y points up.
func newMeshContext(points []Point, triangles []*Triangle, scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	extend := func(p Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, p := range points {
		extend(p)
	}
	for _, t := range triangles {
		extend(t.A)
		extend(t.B)
		extend(t.C)
	}
	if minX > maxX {
		// Nothing to draw
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)
	return c
}
