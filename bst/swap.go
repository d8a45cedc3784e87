// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Swap - exchange the positions of two nodes in the tree
//
// each node takes over the parent and children of the other, key,
// value and payload stay with their node.  Also correct when one
// node is a direct child of the other.
func (tree *Tree[K, V, A]) Swap(h1 Handle, h2 Handle) {
	if h1 == h2 || Nil == h1 || Nil == h2 {
		return
	}
	n1 := &tree.nodes[h1]
	n2 := &tree.nodes[h2]

	p1, l1, r1 := n1.up, n1.left, n1.right
	p2, l2, r2 := n2.up, n2.left, n2.right
	isLeft1 := tree.IsLeftChild(h1)
	isLeft2 := tree.IsLeftChild(h2)

	n1.up, n2.up = p2, p1
	n1.left, n2.left = l2, l1
	n1.right, n2.right = r2, r1

	// adjacent: the links between the two now point to self
	switch h2 {
	case l1:
		n2.left = h1
		n1.up = h2
	case r1:
		n2.right = h1
		n1.up = h2
	}
	switch h1 {
	case l2:
		n1.left = h2
		n2.up = h1
	case r2:
		n1.right = h2
		n2.up = h1
	}

	// outside neighbours
	if Nil != p1 && h2 != p1 {
		if isLeft1 {
			tree.nodes[p1].left = h2
		} else {
			tree.nodes[p1].right = h2
		}
	}
	if Nil != p2 && h1 != p2 {
		if isLeft2 {
			tree.nodes[p2].left = h1
		} else {
			tree.nodes[p2].right = h1
		}
	}
	for _, c := range [2]Handle{l1, r1} {
		if Nil != c && h2 != c {
			tree.nodes[c].up = h2
		}
	}
	for _, c := range [2]Handle{l2, r2} {
		if Nil != c && h1 != c {
			tree.nodes[c].up = h1
		}
	}

	if tree.root == h1 {
		tree.root = h2
	} else if tree.root == h2 {
		tree.root = h1
	}
}
