package bsp

import (
	"github.com/zyedidia/generic/queue"
	"github.com/zyedidia/generic/stack"
)

// Action tells a traversal whether to keep going.
type Action int

const (
	Continue Action = iota
	Stop
)

// Visitor is called for every node of a traversal with the caller's context.
// Returning Stop halts the whole traversal.
type Visitor[C any] func(n *Node, ctx C) Action

// TraversePreOrder visits a node before its children, left subtree first.
func TraversePreOrder[C any](root *Node, visit Visitor[C], ctx C) Action {
	if root == nil {
		return Continue
	}
	if visit(root, ctx) == Stop {
		return Stop
	}
	if TraversePreOrder(root.Left, visit, ctx) == Stop {
		return Stop
	}
	return TraversePreOrder(root.Right, visit, ctx)
}

// TraverseLevelOrder visits nodes breadth first, shallowest level first.
func TraverseLevelOrder[C any](root *Node, visit Visitor[C], ctx C) Action {
	for _, n := range levelOrder(root) {
		if visit(n, ctx) == Stop {
			return Stop
		}
	}
	return Continue
}

// TraverseInvertedLevelOrder visits nodes level by level from the deepest
// level to the root, so leaves are seen before their ancestors.
func TraverseInvertedLevelOrder[C any](root *Node, visit Visitor[C], ctx C) Action {
	pending := stack.New[*Node]()
	for _, n := range levelOrder(root) {
		pending.Push(n)
	}
	for pending.Size() > 0 {
		if visit(pending.Pop(), ctx) == Stop {
			return Stop
		}
	}
	return Continue
}

func levelOrder(root *Node) []*Node {
	if root == nil {
		return nil
	}
	var order []*Node
	q := queue.New[*Node]()
	q.Enqueue(root)
	for !q.Empty() {
		n := q.Dequeue()
		order = append(order, n)
		if n.Left != nil {
			q.Enqueue(n.Left)
		}
		if n.Right != nil {
			q.Enqueue(n.Right)
		}
	}
	return order
}
