// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/avltree/fault"
)

// At - copy of the value stored under key
//
// the only lookup that treats a missing key as an error; to change
// the stored value in place use Find(key).SetValue(value)
func (tree *Tree[K, V, A]) At(key K) (V, error) {
	h := tree.Search(key)
	if Nil == h {
		var zero V
		return zero, fault.ErrKeyNotFound
	}
	return tree.nodes[h].value, nil
}
