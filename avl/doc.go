// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The tree extends the unbalanced tree of package bst: each node
// keeps its balance factor, height(right) - height(left), in the
// node payload.  Insert and Remove change the shape of the tree
// directly and then climb from the point of change towards the root
// adjusting balance factors and rotating where a factor would reach
// ±2.
//
// This version allows for data associated with key, which can be
// overwritten by an insert with the same key.  Also delete does not
// copy data around so that a node handle stays with its key.
package avl

//go:generate mockgen -destination=mocks/tracer.go -package=mocks github.com/bitmark-inc/avltree/bst Tracer
