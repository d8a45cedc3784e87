// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// CheckBalance - check that every stored balance factor is in
// {-1, 0, +1} and equals the actual height difference of its
// sub-trees
func (tree *Tree[K, V]) CheckBalance() bool {
	height := tree.Heights()
	for it := tree.Begin(); !it.IsEnd(); it = it.Next() {
		h := it.Handle()
		actual := height[tree.Right(h)] - height[tree.Left(h)]
		stored := int(tree.Aux(h))
		if stored < -1 || stored > 1 || stored != actual {
			tree.Tracef("check: fail at node: %v  stored: %d  actual: %d", it.Key(), stored, actual)
			return false
		}
	}
	return true
}

// Check - all invariants: parent links, key order and balance
func (tree *Tree[K, V]) Check() bool {
	return tree.CheckUp() && tree.CheckOrder() && tree.CheckBalance()
}
