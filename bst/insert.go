// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Insert - add a key/value pair, or overwrite the value of an
// existing key
//
// no balancing is done, the shape of the tree depends only on the
// order of inserts and removes
func (tree *Tree[K, V, A]) Insert(key K, value V) {
	found, parent, left := tree.Locate(key)
	if Nil != found {
		tree.nodes[found].value = value
		tree.Tracef("insert: overwrite key: %v", key)
		return
	}
	h := tree.Attach(parent, left, key, value)
	tree.Tracef("insert: new node: %d  key: %v", h, key)
}

// Attach - create a leaf holding key/value as a child of parent
//
// parent == Nil makes the leaf the root of an empty tree.  The caller
// must have obtained parent and left from Locate with no intervening
// change to the tree
func (tree *Tree[K, V, A]) Attach(parent Handle, left bool, key K, value V) Handle {
	h := tree.newNode(key, value)
	tree.count += 1
	tree.nodes[h].up = parent
	switch {
	case Nil == parent:
		tree.root = h
	case left:
		tree.nodes[parent].left = h
	default:
		tree.nodes[parent].right = h
	}
	return h
}
