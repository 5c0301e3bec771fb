// Package bsp implements a binary space partition tree over rectangles.
// Leaves are the candidate regions for room placement.
package bsp

import (
	"delve/pkg/engine/rng"
)

// Node is a rectangular region of the tree. It has either no children
// (a leaf) or exactly two whose rectangles partition its own.
type Node struct {
	X, Y, W, H int
	Depth      int

	// Horizontal is true when the split line runs along x, dividing the
	// height. Position is the absolute coordinate of that line.
	Horizontal bool
	Position   int

	Left, Right *Node
	Parent      *Node
}

// New creates a root node covering the given rectangle.
func New(x, y, w, h int) *Node {
	return &Node{X: x, Y: y, W: w, H: h}
}

// IsLeaf returns true if the node has no children
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// SplitOnce splits the node in two at the absolute coordinate position.
// The caller guarantees position lies strictly inside the node.
func (n *Node) SplitOnce(horizontal bool, position int) {
	n.Horizontal = horizontal
	n.Position = position
	if horizontal {
		// Split horizontally (top and bottom)
		n.Left = &Node{X: n.X, Y: n.Y, W: n.W, H: position - n.Y}
		n.Right = &Node{X: n.X, Y: position, W: n.W, H: n.Y + n.H - position}
	} else {
		// Split vertically (left and right)
		n.Left = &Node{X: n.X, Y: n.Y, W: position - n.X, H: n.H}
		n.Right = &Node{X: position, Y: n.Y, W: n.X + n.W - position, H: n.H}
	}
	for _, child := range []*Node{n.Left, n.Right} {
		child.Depth = n.Depth + 1
		child.Parent = n
	}
}

// SplitRecursive partitions the node until maxDepth levels have been
// created or no region can be split without a side shorter than minSize.
// Regions whose aspect ratio exceeds maxHVRatio are always cut across
// their long axis. A nil r uses a time-seeded generator.
func (n *Node) SplitRecursive(r rng.Random, maxDepth, minSize int, maxHVRatio float64) {
	if r == nil {
		r = rng.NewTimeSeeded()
	}
	if minSize < 1 {
		minSize = 1
	}
	n.splitRecursive(r, maxDepth, minSize, maxHVRatio)
}

func (n *Node) splitRecursive(r rng.Random, count, minSize int, maxHVRatio float64) {
	if count <= 0 {
		return
	}

	canSplitHeight := n.H >= minSize*2
	canSplitWidth := n.W >= minSize*2
	if !canSplitHeight && !canSplitWidth {
		return // Too small to split
	}

	var horizontal bool
	switch {
	case canSplitHeight && float64(n.H) > maxHVRatio*float64(n.W):
		horizontal = true
	case canSplitWidth && float64(n.W) > maxHVRatio*float64(n.H):
		horizontal = false
	case canSplitHeight && canSplitWidth:
		horizontal = r.Number(0, 1) == 0
	default:
		horizontal = canSplitHeight
	}

	if horizontal {
		n.SplitOnce(true, r.Number(n.Y+minSize, n.Y+n.H-minSize))
	} else {
		n.SplitOnce(false, r.Number(n.X+minSize, n.X+n.W-minSize))
	}

	n.Left.splitRecursive(r, count-1, minSize, maxHVRatio)
	n.Right.splitRecursive(r, count-1, minSize, maxHVRatio)
}

// Leaves returns the leaf nodes in pre-order.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	TraversePreOrder(n, func(node *Node, acc *[]*Node) Action {
		if node.IsLeaf() {
			*acc = append(*acc, node)
		}
		return Continue
	}, &leaves)
	return leaves
}
