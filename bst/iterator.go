// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Iterator - position of a node in a tree, or the end of the tree
//
// any insert or remove on the tree invalidates all iterators
type Iterator[K, V, A any] struct {
	tree *Tree[K, V, A]
	node Handle
}

// Begin - iterator at the lowest key, End() if the tree is empty
func (tree *Tree[K, V, A]) Begin() Iterator[K, V, A] {
	return tree.First()
}

// End - iterator past the highest key
func (tree *Tree[K, V, A]) End() Iterator[K, V, A] {
	return Iterator[K, V, A]{tree: tree, node: Nil}
}

// First - iterator at the node with the lowest key value
func (tree *Tree[K, V, A]) First() Iterator[K, V, A] {
	return Iterator[K, V, A]{tree: tree, node: tree.first(tree.root)}
}

// Last - iterator at the node with the highest key value
func (tree *Tree[K, V, A]) Last() Iterator[K, V, A] {
	return Iterator[K, V, A]{tree: tree, node: tree.last(tree.root)}
}

// Root - iterator at the root node, for walking the structure
func (tree *Tree[K, V, A]) Root() Iterator[K, V, A] {
	return Iterator[K, V, A]{tree: tree, node: tree.root}
}

// internal: lowest node in a sub-tree
func (tree *Tree[K, V, A]) first(h Handle) Handle {
	if Nil == h {
		return Nil
	}
	for Nil != tree.nodes[h].left {
		h = tree.nodes[h].left
	}
	return h
}

// internal: highest node in a sub-tree
func (tree *Tree[K, V, A]) last(h Handle) Handle {
	if Nil == h {
		return Nil
	}
	for Nil != tree.nodes[h].right {
		h = tree.nodes[h].right
	}
	return h
}

// Successor - node with the next highest key, or Nil
func (tree *Tree[K, V, A]) Successor(h Handle) Handle {
	if r := tree.nodes[h].right; Nil != r {
		return tree.first(r)
	}
	// climb until arriving from a left child
	for {
		up := tree.nodes[h].up
		if Nil == up {
			return Nil
		}
		if tree.nodes[up].left == h {
			return up
		}
		h = up
	}
}

// Predecessor - node with the next lowest key, or Nil
func (tree *Tree[K, V, A]) Predecessor(h Handle) Handle {
	if l := tree.nodes[h].left; Nil != l {
		return tree.last(l)
	}
	// climb until arriving from a right child
	for {
		up := tree.nodes[h].up
		if Nil == up {
			return Nil
		}
		if tree.nodes[up].right == h {
			return up
		}
		h = up
	}
}

// Next - iterator at the next highest key, or End()
func (it Iterator[K, V, A]) Next() Iterator[K, V, A] {
	if Nil == it.node {
		return it
	}
	return Iterator[K, V, A]{tree: it.tree, node: it.tree.Successor(it.node)}
}

// IsEnd - true when past the last node
func (it Iterator[K, V, A]) IsEnd() bool {
	return Nil == it.node
}

// Equal - true if both refer to the same position of the same tree
func (it Iterator[K, V, A]) Equal(other Iterator[K, V, A]) bool {
	return it.tree == other.tree && it.node == other.node
}

// Handle - the node handle, Nil at the end
func (it Iterator[K, V, A]) Handle() Handle {
	return it.node
}

// Key - read the key, panics at the end
func (it Iterator[K, V, A]) Key() K {
	it.mustNotBeEnd("key")
	return it.tree.nodes[it.node].key
}

// Value - read the value, panics at the end
func (it Iterator[K, V, A]) Value() V {
	it.mustNotBeEnd("value")
	return it.tree.nodes[it.node].value
}

// SetValue - replace the value in place
func (it Iterator[K, V, A]) SetValue(value V) {
	it.mustNotBeEnd("set value")
	it.tree.nodes[it.node].value = value
}

// Aux - read the auxiliary payload
func (it Iterator[K, V, A]) Aux() A {
	it.mustNotBeEnd("aux")
	return it.tree.nodes[it.node].aux
}

// Parent - iterator at the parent node, End() for the root
func (it Iterator[K, V, A]) Parent() Iterator[K, V, A] {
	it.mustNotBeEnd("parent")
	return Iterator[K, V, A]{tree: it.tree, node: it.tree.nodes[it.node].up}
}

// Left - iterator at the left child, End() if none
func (it Iterator[K, V, A]) Left() Iterator[K, V, A] {
	it.mustNotBeEnd("left")
	return Iterator[K, V, A]{tree: it.tree, node: it.tree.nodes[it.node].left}
}

// Right - iterator at the right child, End() if none
func (it Iterator[K, V, A]) Right() Iterator[K, V, A] {
	it.mustNotBeEnd("right")
	return Iterator[K, V, A]{tree: it.tree, node: it.tree.nodes[it.node].right}
}

// accessors at End() would touch the reserved arena slot
func (it Iterator[K, V, A]) mustNotBeEnd(operation string) {
	if Nil == it.node {
		fault.Panicf("iterator: %s at end", operation)
	}
}
