// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/bst"
)

// Remove - removes a specific item from the tree, absent keys are
// ignored
func (tree *Tree[K, V]) Remove(key K) {
	h := tree.Search(key)
	if bst.Nil == h {
		tree.Tracef("remove: absent key: %v", key)
		return
	}

	// two children: trade places with the predecessor, after
	// which h has no right child
	if bst.Nil != tree.Left(h) && bst.Nil != tree.Right(h) {
		p := tree.Predecessor(h)
		tree.Tracef("remove: swap: %v with predecessor: %v", key, tree.Key(p))
		tree.Swap(h, p)
	}

	parent, wasLeft := tree.Splice(h)
	if bst.Nil == parent {
		return
	}
	diff := int8(-1)
	if wasLeft {
		diff = +1
	}
	tree.removeFix(parent, diff)
}

// removeFix - one sub-tree of n has lost a level; diff is +1 if it was
// the left one and -1 if it was the right one
func (tree *Tree[K, V]) removeFix(n bst.Handle, diff int8) {
	for bst.Nil != n {
		// same for the parent, in case the height of n drops
		p := tree.Up(n)
		ndiff := int8(0)
		if bst.Nil != p {
			if tree.IsLeftChild(n) {
				ndiff = +1
			} else {
				ndiff = -1
			}
		}

		balance := tree.Aux(n) + diff
		switch balance {
		case -1, +1:
			// height of n unchanged
			tree.SetAux(n, balance)
			return

		case 0:
			tree.SetAux(n, 0)
			n, diff = p, ndiff
			continue
		}

		// |balance| == 2: c is the child on the heavy side
		s := balance / 2
		c := tree.Right(n)
		if s < 0 {
			c = tree.Left(n)
		}

		switch cb := tree.Aux(c); cb {
		case s:
			tree.rotateAway(n, s)
			tree.SetAux(n, 0)
			tree.SetAux(c, 0)
			tree.stats.Single += 1
			tree.Tracef("remove: single rotation at: %v", tree.Key(n))

		case 0:
			tree.rotateAway(n, s)
			tree.SetAux(n, s)
			tree.SetAux(c, -s)
			tree.stats.Single += 1
			tree.Tracef("remove: single rotation at: %v  height kept", tree.Key(n))
			return

		default:
			g := tree.Right(c)
			if s > 0 {
				g = tree.Left(c)
			}
			gb := tree.Aux(g)
			tree.rotateAway(c, -s)
			tree.rotateAway(n, s)
			switch gb {
			case s:
				tree.SetAux(n, -s)
				tree.SetAux(c, 0)
			case -s:
				tree.SetAux(n, 0)
				tree.SetAux(c, s)
			default:
				tree.SetAux(n, 0)
				tree.SetAux(c, 0)
			}
			tree.SetAux(g, 0)
			tree.stats.Double += 1
			tree.Tracef("remove: double rotation at: %v", tree.Key(n))
		}
		n, diff = p, ndiff
	}
}
