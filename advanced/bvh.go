package advanced

import (
	"fmt"
	"strings"

	"github.com/golang/geo/r2"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay/dbg"
)

// A bounding volume hierarchy over a set of triangles, answering point location
// queries.
//
// Nodes live in a flat arena and refer to each other by NodeID. A leaf holds
// exactly one triangle and no children, and an internal node holds exactly two
// children and no triangle. A leaf's box is its triangle's box, and an internal
// node's box is the union of its children's boxes. The hierarchy is immutable
// once built, so concurrent queries are safe.
type BVH struct {
	nodes []bvhNode
}

type NodeID int

// Child id of a leaf.
const NoNode NodeID = -1

type bvhNode struct {
	bounds      r2.Rect
	left, right NodeID
	triangle    *Triangle
}

type splitAxis int

const (
	xAxis splitAxis = iota
	yAxis
)

// Build a BVH over the triangles. The hierarchy takes ownership of the
// triangles, but not of the slice, which is left as is.
//
// Building from zero triangles is a caller error and panics with a
// GeometryError.
func Build(triangles []*Triangle) *BVH {
	if len(triangles) == 0 {
		fatalf("cannot build a BVH from zero triangles")
	}

	// A binary tree with n leaves has exactly 2n-1 nodes
	bvh := &BVH{nodes: make([]bvhNode, 0, 2*len(triangles)-1)}
	work := make([]*Triangle, len(triangles))
	copy(work, triangles)
	bvh.build(work)
	return bvh
}

// Recursively partition triangles into nodes, laid out in pre-order.
func (b *BVH) build(triangles []*Triangle) NodeID {
	id := NodeID(len(b.nodes))
	b.nodes = append(b.nodes, bvhNode{left: NoNode, right: NoNode})

	if len(triangles) == 1 {
		b.nodes[id].triangle = triangles[0]
		b.nodes[id].bounds = triangles[0].Bounds()
		return id
	}

	left, right := partition(triangles)
	leftID := b.build(left)
	rightID := b.build(right)

	node := &b.nodes[id]
	node.left = leftID
	node.right = rightID
	node.bounds = b.nodes[leftID].bounds.Union(b.nodes[rightID].bounds)
	return id
}

// Split triangles on the axis where their centroids are most spread out, at the
// mean centroid coordinate. Neither side is ever empty.
func partition(triangles []*Triangle) (left, right []*Triangle) {
	axis, threshold := splitPlane(triangles)
	for _, t := range triangles {
		c := t.Centroid()
		v := c.X
		if axis == yAxis {
			v = c.Y
		}
		if v < threshold {
			left = append(left, t)
		} else {
			right = append(right, t)
		}
	}

	// When all centroids coincide on the axis, everything lands on one side. Move
	// one triangle over so that recursion terminates.
	if len(left) == 0 {
		left = append(left, right[len(right)-1])
		right = right[:len(right)-1]
	}
	if len(right) == 0 {
		right = append(right, left[len(left)-1])
		left = left[:len(left)-1]
	}
	return left, right
}

func splitPlane(triangles []*Triangle) (splitAxis, float64) {
	extent := r2.EmptyRect()
	var sum Point
	for _, t := range triangles {
		c := t.Centroid()
		extent = extent.AddPoint(c.vec())
		sum.X += c.X
		sum.Y += c.Y
	}

	n := float64(len(triangles))
	size := extent.Size()
	if size.X > size.Y {
		return xAxis, sum.X / n
	}
	return yAxis, sum.Y / n
}

// Find the triangle containing p, or nil if there is none.
//
// When the boxes of both children of a node contain p, and both subtrees
// report a triangle (which happens for points on a shared edge or vertex), the
// triangle whose centroid is closer to p wins.
func (b *BVH) Sample(p Point) *Triangle {
	if b == nil || len(b.nodes) == 0 {
		return nil
	}
	return b.sample(b.Root(), p)
}

func (b *BVH) sample(id NodeID, p Point) *Triangle {
	node := &b.nodes[id]
	if !node.bounds.InteriorContainsPoint(p.vec()) {
		return nil
	}

	if node.triangle != nil {
		if node.triangle.ContainsPoint(p) {
			return node.triangle
		}
		return nil
	}

	left := b.sample(node.left, p)
	right := b.sample(node.right, p)
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	if left.Centroid().SquaredDistance(p) < right.Centroid().SquaredDistance(p) {
		return left
	}
	return right
}

func (b *BVH) Root() NodeID {
	if len(b.nodes) == 0 {
		return NoNode
	}
	return 0
}

// Number of nodes, leaves and internal nodes alike.
func (b *BVH) Len() int {
	return len(b.nodes)
}

func (b *BVH) IsLeaf(id NodeID) bool {
	return b.nodes[id].triangle != nil
}

// The children of an internal node, or NoNode twice for a leaf.
func (b *BVH) Children(id NodeID) (left, right NodeID) {
	return b.nodes[id].left, b.nodes[id].right
}

func (b *BVH) Bounds(id NodeID) r2.Rect {
	return b.nodes[id].bounds
}

// The triangle held by a leaf, or nil for an internal node.
func (b *BVH) Triangle(id NodeID) *Triangle {
	return b.nodes[id].triangle
}

// All triangles, in leaf order.
func (b *BVH) Triangles() []*Triangle {
	var result []*Triangle
	for _, node := range b.nodes {
		if node.triangle != nil {
			result = append(result, node.triangle)
		}
	}
	return result
}

// Visit nodes in pre-order. Returning false from fn skips the node's children.
func (b *BVH) Walk(fn func(id NodeID, depth int) bool) {
	if len(b.nodes) == 0 {
		return
	}
	b.walk(b.Root(), 0, fn)
}

func (b *BVH) walk(id NodeID, depth int, fn func(id NodeID, depth int) bool) {
	if !fn(id, depth) || b.IsLeaf(id) {
		return
	}
	left, right := b.Children(id)
	b.walk(left, depth+1, fn)
	b.walk(right, depth+1, fn)
}

// Depth of the deepest leaf. A single leaf has depth 0.
func (b *BVH) Depth() int {
	maxDepth := 0
	b.Walk(func(_ NodeID, depth int) bool {
		if depth > maxDepth {
			maxDepth = depth
		}
		return true
	})
	return maxDepth
}

func (b *BVH) String() string {
	var sb strings.Builder
	b.Walk(func(id NodeID, depth int) bool {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(b.DbgName(id))
		bounds := b.Bounds(id)
		fmt.Fprintf(&sb, " [%g, %g]-[%g, %g]", bounds.X.Lo, bounds.Y.Lo, bounds.X.Hi, bounds.Y.Hi)
		if triangle := b.Triangle(id); triangle != nil {
			fmt.Fprintf(&sb, " %s", triangle)
		}
		sb.WriteString("\n")
		return true
	})
	return sb.String()
}

// Readable name for a node. Leaves are green and internal nodes are cyan.
func (b *BVH) DbgName(id NodeID) string {
	name := dbg.Name(&b.nodes[id])
	if b.IsLeaf(id) {
		return aurora.Green(name).String()
	}
	return aurora.Cyan(name).String()
}
