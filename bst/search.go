// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Search - handle of the node holding key, or Nil
func (tree *Tree[K, V, A]) Search(key K) Handle {
	h, _, _ := tree.Locate(key)
	return h
}

// Locate - descend from the root towards key
//
// returns the node holding key if present, otherwise Nil together
// with the last node visited and the side of it where key belongs
func (tree *Tree[K, V, A]) Locate(key K) (found Handle, parent Handle, left bool) {
	p := tree.root
	for Nil != p {
		n := &tree.nodes[p]
		switch c := tree.compare(key, n.key); {
		case c < 0:
			parent, left = p, true
			p = n.left
		case c > 0:
			parent, left = p, false
			p = n.right
		default:
			return p, n.up, tree.IsLeftChild(p)
		}
	}
	return Nil, parent, left
}

// Find - iterator positioned at key, or End() if key is absent
func (tree *Tree[K, V, A]) Find(key K) Iterator[K, V, A] {
	return Iterator[K, V, A]{tree: tree, node: tree.Search(key)}
}
