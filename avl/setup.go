// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/avltree/bst"
)

// Statistics - rotations performed since the tree was created
type Statistics struct {
	Single int // single rotations
	Double int // double rotations, each counted once
}

// Tree - AVL tree, node payload is the balance factor
//
// the structural primitives of the embedded tree (Attach, Splice,
// RotateLeft, ...) bypass balancing and are only for use by Insert
// and Remove
type Tree[K, V any] struct {
	*bst.Tree[K, V, int8]
	stats Statistics
}

// New - create an initially empty tree for naturally ordered keys
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{
		Tree: bst.New[K, V, int8](),
	}
}

// NewWithCompare - create an initially empty tree ordered by compare
func NewWithCompare[K, V any](compare func(a K, b K) int) *Tree[K, V] {
	return &Tree[K, V]{
		Tree: bst.NewWithCompare[K, V, int8](compare),
	}
}

// Stats - rotation counters
func (tree *Tree[K, V]) Stats() Statistics {
	return tree.stats
}

// Balance - balance factor at an iterator position
func (tree *Tree[K, V]) Balance(it bst.Iterator[K, V, int8]) int {
	return int(it.Aux())
}

// Swap - exchange the positions of two nodes and their balance
// factors, since the factor belongs to the position
func (tree *Tree[K, V]) Swap(h1 bst.Handle, h2 bst.Handle) {
	if h1 == h2 || bst.Nil == h1 || bst.Nil == h2 {
		return
	}
	tree.Tree.Swap(h1, h2)
	b1 := tree.Aux(h1)
	tree.SetAux(h1, tree.Aux(h2))
	tree.SetAux(h2, b1)
}

// rotate so that the child on the heavy side moves up:
// heavy < 0 is left heavy, heavy > 0 is right heavy
func (tree *Tree[K, V]) rotateAway(h bst.Handle, heavy int8) {
	if heavy < 0 {
		tree.RotateRight(h)
	} else {
		tree.RotateLeft(h)
	}
}
