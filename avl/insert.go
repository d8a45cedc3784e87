// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/bst"
)

// Insert - insert a new node into the tree, or overwrite the value
// if the key is already present
func (tree *Tree[K, V]) Insert(key K, value V) {
	found, parent, left := tree.Locate(key)
	if bst.Nil != found {
		tree.SetValue(found, value)
		tree.Tracef("insert: overwrite key: %v", key)
		return
	}

	n := tree.Attach(parent, left, key, value)
	tree.Tracef("insert: new node: %d  key: %v", n, key)
	if bst.Nil == parent {
		return // new root, balance 0
	}

	// parent was leaning: the new leaf filled the gap
	if 0 != tree.Aux(parent) {
		tree.SetAux(parent, 0)
		return
	}

	if left {
		tree.SetAux(parent, -1)
	} else {
		tree.SetAux(parent, +1)
	}
	tree.insertFix(parent, n)
}

// insertFix - the sub-tree at p has grown by one level, n is the
// child of p on the grown side
func (tree *Tree[K, V]) insertFix(p bst.Handle, n bst.Handle) {
	for {
		g := tree.Up(p)
		if bst.Nil == g {
			return
		}

		// side of g that has grown
		d := int8(+1)
		if tree.IsLeftChild(p) {
			d = -1
		}
		balance := tree.Aux(g) + d

		switch balance {
		case 0:
			tree.SetAux(g, 0)
			return

		case d:
			tree.SetAux(g, balance)
			p, n = g, p
			continue
		}

		// |balance| == 2
		if tree.IsLeftChild(n) == (d < 0) {
			// n is outside: single rotation at g
			tree.rotateAway(g, d)
			tree.SetAux(g, 0)
			tree.SetAux(p, 0)
			tree.stats.Single += 1
			tree.Tracef("insert: single rotation at: %v", tree.Key(g))
			return
		}

		// n is inside: rotate it up through p, then through g
		nb := tree.Aux(n)
		tree.rotateAway(p, -d)
		tree.rotateAway(g, d)
		switch nb {
		case d:
			tree.SetAux(p, 0)
			tree.SetAux(g, -d)
		case -d:
			tree.SetAux(p, d)
			tree.SetAux(g, 0)
		default:
			tree.SetAux(p, 0)
			tree.SetAux(g, 0)
		}
		tree.SetAux(n, 0)
		tree.stats.Double += 1
		tree.Tracef("insert: double rotation at: %v", tree.Key(g))
		return
	}
}
