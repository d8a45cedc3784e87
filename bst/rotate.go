// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/avltree/fault"
)

// RotateLeft - promote the right child of x into the place of x
//
//	    x                y
//	   / \              / \
//	  a   y     ->     x   c
//	     / \          / \
//	    b   c        a   b
//
// payloads are not touched
func (tree *Tree[K, V, A]) RotateLeft(x Handle) {
	y := tree.nodes[x].right
	if Nil == y {
		fault.Panicf("rotate left: node: %d has no right child", x)
	}
	b := tree.nodes[y].left
	up := tree.nodes[x].up

	tree.nodes[x].right = b
	if Nil != b {
		tree.nodes[b].up = x
	}
	tree.nodes[y].up = up
	tree.replaceChild(up, x, y)
	tree.nodes[y].left = x
	tree.nodes[x].up = y
	tree.Tracef("rotate left at: %v", tree.nodes[x].key)
}

// RotateRight - promote the left child of x into the place of x
//
//	      x            y
//	     / \          / \
//	    y   c   ->   a   x
//	   / \              / \
//	  a   b            b   c
//
// payloads are not touched
func (tree *Tree[K, V, A]) RotateRight(x Handle) {
	y := tree.nodes[x].left
	if Nil == y {
		fault.Panicf("rotate right: node: %d has no left child", x)
	}
	b := tree.nodes[y].right
	up := tree.nodes[x].up

	tree.nodes[x].left = b
	if Nil != b {
		tree.nodes[b].up = x
	}
	tree.nodes[y].up = up
	tree.replaceChild(up, x, y)
	tree.nodes[y].right = x
	tree.nodes[x].up = y
	tree.Tracef("rotate right at: %v", tree.nodes[x].key)
}

// point the slot of up (or the root) that held old at replacement
func (tree *Tree[K, V, A]) replaceChild(up Handle, old Handle, replacement Handle) {
	switch {
	case Nil == up:
		tree.root = replacement
	case old == tree.nodes[up].left:
		tree.nodes[up].left = replacement
	case old == tree.nodes[up].right:
		tree.nodes[up].right = replacement
	default:
		fault.Panicf("node: %d is not a child of: %d", old, up)
	}
}
