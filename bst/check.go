// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// CheckUp - check the up pointers for consistency
func (tree *Tree[K, V, A]) CheckUp() bool {
	if Nil == tree.root {
		return true
	}
	if Nil != tree.nodes[tree.root].up {
		tree.Tracef("check: root: %v has a parent", tree.nodes[tree.root].key)
		return false
	}
	for _, h := range tree.postOrder() {
		n := &tree.nodes[h]
		for _, c := range [2]Handle{n.left, n.right} {
			if Nil != c && tree.nodes[c].up != h {
				tree.Tracef("check: fail at node: %v  actual: %d  expected: %d", tree.nodes[c].key, tree.nodes[c].up, h)
				return false
			}
		}
	}
	return true
}

// CheckOrder - true if an in-order walk gives strictly ascending keys
// and visits exactly Count() nodes
func (tree *Tree[K, V, A]) CheckOrder() bool {
	n := 0
	previous := Nil
	for h := tree.first(tree.root); Nil != h; h = tree.Successor(h) {
		if Nil != previous && tree.compare(tree.nodes[previous].key, tree.nodes[h].key) >= 0 {
			tree.Tracef("check: out of order: %v before %v", tree.nodes[previous].key, tree.nodes[h].key)
			return false
		}
		previous = h
		n += 1
		if n > tree.count {
			break
		}
	}
	return n == tree.count
}

// IsBalanced - true if at every node the heights of the two
// sub-trees differ by at most one
//
// uses only the shape of the tree, never any stored payload
func (tree *Tree[K, V, A]) IsBalanced() bool {
	height := tree.Heights()
	for _, h := range tree.postOrder() {
		n := &tree.nodes[h]
		d := height[n.right] - height[n.left]
		if d < -1 || d > 1 {
			return false
		}
	}
	return true
}

// Height - number of nodes on the longest path from the root
func (tree *Tree[K, V, A]) Height() int {
	return tree.Heights()[tree.root]
}

// Heights - height of the sub-tree rooted at every node, indexed by
// handle; Nil and free slots have height zero
func (tree *Tree[K, V, A]) Heights() []int {
	height := make([]int, len(tree.nodes))
	for _, h := range tree.postOrder() {
		n := &tree.nodes[h]
		height[h] = 1 + max(height[n.left], height[n.right])
	}
	return height
}

// internal: all nodes, every child listed before its parent
func (tree *Tree[K, V, A]) postOrder() []Handle {
	if Nil == tree.root {
		return nil
	}
	order := make([]Handle, 0, tree.count)
	stack := []Handle{tree.root}
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, h)
		n := &tree.nodes[h]
		if Nil != n.left {
			stack = append(stack, n.left)
		}
		if Nil != n.right {
			stack = append(stack, n.right)
		}
	}
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order
}
