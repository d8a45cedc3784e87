// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
//
// returns the depth of the tree
func (tree *Tree[K, V, A]) Print(w io.Writer, printData bool) int {
	return tree.printTree(w, tree.root, "", root, printData)
}

// internal print - returns the maximum depth of the tree
func (tree *Tree[K, V, A]) printTree(w io.Writer, h Handle, prefix string, br branch, printData bool) int {
	if Nil == h {
		return 0
	}
	n := &tree.nodes[h]
	rd := 0
	ld := 0
	if Nil != n.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = tree.printTree(w, n.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if Nil != n.up {
		up = tree.nodes[n.up].key
	}
	if printData {
		fmt.Fprintf(w, "%v → %v ^%v %v\n", n.key, n.value, up, n.aux)
	} else {
		fmt.Fprintf(w, "%v ^%v\n", n.key, up)
	}
	if Nil != n.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = tree.printTree(w, n.left, prefix+t, left, printData)
	}
	return 1 + max(rd, ld)
}
