// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"math"

	"github.com/bitmark-inc/avltree/fault"
)

// Handle - index of a node in the arena of its tree
type Handle uint32

// Nil - the handle that refers to no node
const Nil Handle = 0

// a node in the tree
type node[K, V, A any] struct {
	left  Handle // left sub-tree
	right Handle // right sub-tree
	up    Handle // parent node, or next free node when reclaimed
	key   K      // key part for ordering
	value V      // value part for data storage
	aux   A      // payload reserved for a balancing scheme
}

// allocate a new node, reuses reclaimed nodes if any are available
func (tree *Tree[K, V, A]) newNode(key K, value V) Handle {
	if Nil != tree.free {
		h := tree.free
		p := &tree.nodes[h]
		tree.free = p.up
		tree.freeNodes -= 1
		*p = node[K, V, A]{key: key, value: value}
		return h
	}
	if uint64(len(tree.nodes)) >= math.MaxUint32 {
		fault.Panicf("arena exhausted at: %d nodes", len(tree.nodes))
	}
	tree.nodes = append(tree.nodes, node[K, V, A]{key: key, value: value})
	return Handle(len(tree.nodes) - 1)
}

// reclaim a node and keep it on the free list
func (tree *Tree[K, V, A]) freeNode(h Handle) {
	tree.nodes[h] = node[K, V, A]{up: tree.free} // drop key/value references
	tree.free = h
	tree.freeNodes += 1
}

// ArenaStats - slots allocated in the arena and how many of them are
// waiting on the free list
func (tree *Tree[K, V, A]) ArenaStats() (allocated int, free int) {
	return len(tree.nodes) - 1, tree.freeNodes
}
