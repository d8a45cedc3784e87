// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Remove - delete key from the tree, absent keys are ignored
func (tree *Tree[K, V, A]) Remove(key K) {
	h := tree.Search(key)
	if Nil == h {
		tree.Tracef("remove: absent key: %v", key)
		return
	}
	tree.removeNode(h)
}

// internal delete routine
func (tree *Tree[K, V, A]) removeNode(h Handle) {
	n := &tree.nodes[h]
	if Nil != n.left && Nil != n.right {
		// move h down to where its predecessor is, which
		// leaves h with at most a left child
		p := tree.Predecessor(h)
		tree.Tracef("remove: swap: %v with predecessor: %v", n.key, tree.nodes[p].key)
		tree.Swap(h, p)
		tree.removeNode(h)
		return
	}
	tree.Splice(h)
}

// Splice - unlink a node with at most one child and release it
//
// the child, if any, takes the place of the node. Returns the former
// parent of the node and whether the node was its left child
func (tree *Tree[K, V, A]) Splice(h Handle) (parent Handle, wasLeft bool) {
	n := &tree.nodes[h]
	if Nil != n.left && Nil != n.right {
		fault.Panicf("splice: node: %d has two children", h)
	}

	child := n.left
	if Nil == child {
		child = n.right
	}
	parent = n.up
	wasLeft = tree.IsLeftChild(h)

	if Nil != child {
		tree.nodes[child].up = parent
	}
	switch {
	case Nil == parent:
		tree.root = child
	case wasLeft:
		tree.nodes[parent].left = child
	default:
		tree.nodes[parent].right = child
	}

	tree.Tracef("remove: splice node: %d  key: %v", h, n.key)
	tree.freeNode(h)
	tree.count -= 1
	return parent, wasLeft
}
