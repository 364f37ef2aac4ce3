package world

import "math"

// Node is one branch point of a dungeon topology.
// Nodes only describe shape; rooms are created from them by Build.
type Node struct {
	Depth  int
	Parent *Node
	Left   *Node
	Right  *Node
}

// ChildCount returns how many children (0, 1 or 2) the node has.
func (n *Node) ChildCount() int {
	count := 0
	if n.Left != nil {
		count++
	}
	if n.Right != nil {
		count++
	}
	return count
}

// Tree is a random binary tree describing how the dungeon branches.
type Tree struct {
	Root *Node

	maxDepth  int
	oddsPower float64
	rng       Rand
}

// NewTree grows a random topology. Each node at depth d gets a left and then a
// right child, each with probability 1 - (d/maxDepth)^oddsPower. The left
// subtree is grown completely before the right child is rolled.
func NewTree(rng Rand, maxDepth int, oddsPower float64) *Tree {
	t := &Tree{
		Root:      &Node{Depth: 0},
		maxDepth:  maxDepth,
		oddsPower: oddsPower,
		rng:       rng,
	}
	t.grow(t.Root)
	return t
}

// branchOdds returns the probability that a node at depth gets a child.
// It reaches 0 at maxDepth and goes negative beyond it.
func (t *Tree) branchOdds(depth int) float64 {
	return 1 - math.Pow(float64(depth)/float64(t.maxDepth), t.oddsPower)
}

// grow recursively rolls children for node.
// The hard stop is depth > maxDepth, so nodes at maxDepth still roll (with
// zero odds) before recursion ends.
func (t *Tree) grow(node *Node) {
	if node.Depth > t.maxDepth {
		return
	}

	odds := t.branchOdds(node.Depth)

	if t.rng.Float64() <= odds {
		node.Left = &Node{Depth: node.Depth + 1, Parent: node}
		t.grow(node.Left)
	}
	if t.rng.Float64() <= odds {
		node.Right = &Node{Depth: node.Depth + 1, Parent: node}
		t.grow(node.Right)
	}
}

// Layer returns every node at exactly depth, left subtree before right
// subtree and left child before right child. Build pairs this slice
// positionally with pending doors, so the order is part of the contract.
func (t *Tree) Layer(depth int) []*Node {
	if depth < 0 {
		return nil
	}
	if depth == 0 {
		return []*Node{t.Root}
	}
	return collectLayer(t.Root, depth, nil)
}

func collectLayer(node *Node, depth int, layer []*Node) []*Node {
	if node == nil {
		return layer
	}

	if node.Depth == depth-1 {
		if node.Left != nil {
			layer = append(layer, node.Left)
		}
		if node.Right != nil {
			layer = append(layer, node.Right)
		}
		return layer
	}

	layer = collectLayer(node.Left, depth, layer)
	return collectLayer(node.Right, depth, layer)
}

// Count returns the total number of nodes in the tree.
func (t *Tree) Count() int {
	return countNodes(t.Root)
}

func countNodes(node *Node) int {
	if node == nil {
		return 0
	}
	return 1 + countNodes(node.Left) + countNodes(node.Right)
}

// Depth returns the depth of the deepest node.
func (t *Tree) Depth() int {
	return deepest(t.Root)
}

func deepest(node *Node) int {
	if node == nil {
		return -1
	}
	return max(node.Depth, deepest(node.Left), deepest(node.Right))
}
