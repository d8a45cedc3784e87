// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - an unbalanced binary search tree with parent links
// to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Nodes live in an arena owned by the tree and are addressed by a
// Handle, handle zero meaning "no node".  Every node carries an
// auxiliary payload of type A that this package never interprets;
// balanced trees built on top of this one keep their per-node
// bookkeeping there (see package avl).
//
// An insert with an existing key overwrites the value and leaves the
// shape of the tree unchanged.  Delete of a node with two children
// moves nodes, not data, so a Handle stays attached to its key for as
// long as that key is in the tree.
package bst
