// Package bsp tests partition invariants: leaf sizes, exact tiling of the
// parent by its children, depth limits and traversal order.
package bsp

import (
	"testing"

	"delve/pkg/engine/rng"
)

// checkPartition walks the tree and reports every internal node whose
// children do not exactly tile it.
func checkPartition(t *testing.T, root *Node) {
	t.Helper()
	TraversePreOrder(root, func(n *Node, t *testing.T) Action {
		if n.IsLeaf() {
			return Continue
		}
		l, r := n.Left, n.Right
		if l.W*l.H+r.W*r.H != n.W*n.H {
			t.Errorf("node %+v: child areas %d+%d != %d", *n, l.W*l.H, r.W*r.H, n.W*n.H)
		}
		if n.Horizontal {
			if l.X != n.X || r.X != n.X || l.W != n.W || r.W != n.W {
				t.Errorf("horizontal split of %v,%v %vx%v changed width or x", n.X, n.Y, n.W, n.H)
			}
			if l.Y != n.Y || r.Y != l.Y+l.H || r.Y+r.H != n.Y+n.H {
				t.Errorf("horizontal split of %v,%v %vx%v leaves a gap or overlap", n.X, n.Y, n.W, n.H)
			}
		} else {
			if l.Y != n.Y || r.Y != n.Y || l.H != n.H || r.H != n.H {
				t.Errorf("vertical split of %v,%v %vx%v changed height or y", n.X, n.Y, n.W, n.H)
			}
			if l.X != n.X || r.X != l.X+l.W || r.X+r.W != n.X+n.W {
				t.Errorf("vertical split of %v,%v %vx%v leaves a gap or overlap", n.X, n.Y, n.W, n.H)
			}
		}
		if l.Parent != n || r.Parent != n {
			t.Errorf("children of %v,%v do not point back at their parent", n.X, n.Y)
		}
		return Continue
	}, t)
}

func TestSplitRecursive_LeavesRespectMinSize(t *testing.T) {
	for seed := uint32(1); seed <= 40; seed++ {
		root := New(0, 0, 80, 50)
		root.SplitRecursive(rng.NewCMWC(seed), 8, 4, 1.5)
		for _, leaf := range root.Leaves() {
			if leaf.W < 4 || leaf.H < 4 {
				t.Fatalf("seed %d: leaf %dx%d at %d,%d smaller than minSize 4", seed, leaf.W, leaf.H, leaf.X, leaf.Y)
			}
		}
		checkPartition(t, root)
	}
}

func TestSplitRecursive_RootTooSmall(t *testing.T) {
	root := New(0, 0, 7, 7)
	root.SplitRecursive(rng.NewCMWC(1), 8, 4, 1.5)
	if !root.IsLeaf() {
		t.Errorf("7x7 root with minSize 4 was split into %+v / %+v", *root.Left, *root.Right)
	}
}

func TestSplitRecursive_DepthLimit(t *testing.T) {
	root := New(0, 0, 200, 200)
	root.SplitRecursive(rng.NewCMWC(9), 3, 2, 1.5)
	maxDepth := 0
	TraverseLevelOrder(root, func(n *Node, max *int) Action {
		if n.Depth > *max {
			*max = n.Depth
		}
		return Continue
	}, &maxDepth)
	if maxDepth != 3 {
		t.Errorf("max depth = %d, want 3 on a large region", maxDepth)
	}

	zero := New(0, 0, 200, 200)
	zero.SplitRecursive(rng.NewCMWC(9), 0, 2, 1.5)
	if !zero.IsLeaf() {
		t.Error("maxDepth 0 should leave the root unsplit")
	}
}

func TestSplitRecursive_LongAxisForced(t *testing.T) {
	for seed := uint32(1); seed <= 20; seed++ {
		wide := New(0, 0, 60, 10)
		wide.SplitRecursive(rng.NewCMWC(seed), 1, 4, 1.5)
		if wide.IsLeaf() || wide.Horizontal {
			t.Fatalf("seed %d: wide 60x10 region should be split vertically", seed)
		}
		tall := New(0, 0, 10, 60)
		tall.SplitRecursive(rng.NewCMWC(seed), 1, 4, 1.5)
		if tall.IsLeaf() || !tall.Horizontal {
			t.Fatalf("seed %d: tall 10x60 region should be split horizontally", seed)
		}
	}
}

func TestSplitOnce_Offsets(t *testing.T) {
	n := New(3, 5, 10, 20)
	n.SplitOnce(true, 12)
	if n.Left.H != 7 || n.Right.Y != 12 || n.Right.H != 13 {
		t.Errorf("horizontal split at 12: left %+v right %+v", *n.Left, *n.Right)
	}
	checkPartition(t, n)
}

func TestTraverseInvertedLevelOrder_DeepestFirst(t *testing.T) {
	root := New(0, 0, 64, 64)
	root.SplitRecursive(rng.NewCMWC(11), 4, 4, 1.5)

	var depths []int
	TraverseInvertedLevelOrder(root, func(n *Node, d *[]int) Action {
		*d = append(*d, n.Depth)
		return Continue
	}, &depths)

	if len(depths) == 0 || depths[len(depths)-1] != 0 {
		t.Fatalf("root should be visited last, got depths %v", depths)
	}
	for i := 1; i < len(depths); i++ {
		if depths[i] > depths[i-1] {
			t.Fatalf("depth increased from %d to %d at visit %d", depths[i-1], depths[i], i)
		}
	}
}

func TestTraverse_StopHaltsTraversal(t *testing.T) {
	root := New(0, 0, 64, 64)
	root.SplitRecursive(rng.NewCMWC(2), 4, 4, 1.5)

	visits := 0
	action := TraverseInvertedLevelOrder(root, func(n *Node, count *int) Action {
		*count++
		if *count == 2 {
			return Stop
		}
		return Continue
	}, &visits)
	if action != Stop || visits != 2 {
		t.Errorf("got action %v after %d visits, want Stop after 2", action, visits)
	}

	visits = 0
	TraversePreOrder(root, func(n *Node, count *int) Action {
		*count++
		return Stop
	}, &visits)
	if visits != 1 {
		t.Errorf("pre-order visited %d nodes after Stop, want 1", visits)
	}
}
