// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"cmp"
)

// Tracer - optional receiver of debugging messages
//
// *logger.L from github.com/bitmark-inc/logger satisfies this
type Tracer interface {
	Debugf(format string, arguments ...interface{})
}

// Tree - type to hold the node arena and root node of a tree
type Tree[K, V, A any] struct {
	nodes     []node[K, V, A] // nodes[0] is never used
	free      Handle          // head of reclaimed node list
	freeNodes int             // number of nodes on the free list
	root      Handle
	count     int
	compare   func(a K, b K) int
	tracer    Tracer
}

// New - create an initially empty tree for naturally ordered keys
func New[K cmp.Ordered, V any, A any]() *Tree[K, V, A] {
	return NewWithCompare[K, V, A](cmp.Compare[K])
}

// NewWithCompare - create an initially empty tree ordered by compare
//
// compare(a, b) must return a negative number when a < b, zero when
// a == b and a positive number when a > b
func NewWithCompare[K, V, A any](compare func(a K, b K) int) *Tree[K, V, A] {
	return &Tree[K, V, A]{
		nodes:   make([]node[K, V, A], 1),
		compare: compare,
	}
}

// SetTracer - attach a debugging channel, nil to detach
func (tree *Tree[K, V, A]) SetTracer(tracer Tracer) {
	tree.tracer = tracer
}

// Tracef - send a message to the tracer if one is attached
func (tree *Tree[K, V, A]) Tracef(format string, arguments ...interface{}) {
	if nil != tree.tracer {
		tree.tracer.Debugf(format, arguments...)
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V, A]) IsEmpty() bool {
	return Nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V, A]) Count() int {
	return tree.count
}

// Clear - release all nodes and reset to an empty tree
func (tree *Tree[K, V, A]) Clear() {
	clear(tree.nodes)
	tree.nodes = tree.nodes[:1]
	tree.free = Nil
	tree.freeNodes = 0
	tree.root = Nil
	tree.count = 0
}

// RootHandle - handle of the root node, Nil for an empty tree
func (tree *Tree[K, V, A]) RootHandle() Handle {
	return tree.root
}

// Up - parent of a node
func (tree *Tree[K, V, A]) Up(h Handle) Handle {
	return tree.nodes[h].up
}

// Left - left child of a node
func (tree *Tree[K, V, A]) Left(h Handle) Handle {
	return tree.nodes[h].left
}

// Right - right child of a node
func (tree *Tree[K, V, A]) Right(h Handle) Handle {
	return tree.nodes[h].right
}

// Key - key stored in a node
func (tree *Tree[K, V, A]) Key(h Handle) K {
	return tree.nodes[h].key
}

// Value - value stored in a node
func (tree *Tree[K, V, A]) Value(h Handle) V {
	return tree.nodes[h].value
}

// SetValue - overwrite the value stored in a node
func (tree *Tree[K, V, A]) SetValue(h Handle, value V) {
	tree.nodes[h].value = value
}

// Aux - auxiliary payload of a node
func (tree *Tree[K, V, A]) Aux(h Handle) A {
	return tree.nodes[h].aux
}

// SetAux - set the auxiliary payload of a node
func (tree *Tree[K, V, A]) SetAux(h Handle, aux A) {
	tree.nodes[h].aux = aux
}

// IsLeftChild - true if the node is the left child of its parent
func (tree *Tree[K, V, A]) IsLeftChild(h Handle) bool {
	up := tree.nodes[h].up
	return Nil != up && tree.nodes[up].left == h
}

// IsRightChild - true if the node is the right child of its parent
func (tree *Tree[K, V, A]) IsRightChild(h Handle) bool {
	up := tree.nodes[h].up
	return Nil != up && tree.nodes[up].right == h
}
