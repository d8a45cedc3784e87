// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// operations and whether they need a key
var operationKeys = map[string]bool{
	"insert": true,
	"remove": true,
	"find":   true,
	"at":     true,
	"print":  false,
	"list":   false,
	"check":  false,
	"clear":  false,
}

// parseOperation - decode a command-line argument: op[:key[=value]]
func parseOperation(argument string) (Operation, error) {
	op, rest, hasKey := strings.Cut(argument, ":")
	operation := Operation{
		Op: strings.ToLower(strings.TrimSpace(op)),
	}
	if hasKey {
		operation.Key, operation.Value, _ = strings.Cut(rest, "=")
	}
	return operation, validate(operation)
}

func validate(operation Operation) error {
	needKey, ok := operationKeys[operation.Op]
	if !ok {
		return fault.ErrInvalidOperation
	}
	if needKey && "" == operation.Key {
		return fault.ErrMissingKey
	}
	return nil
}

// runOperations - apply each operation in turn writing results to w
//
// a missing key for "at" is reported and does not stop the run
func runOperations(w io.Writer, tree *avl.Tree[string, string], operations []Operation, printData bool) error {

	for i, operation := range operations {
		if err := validate(operation); nil != err {
			return fmt.Errorf("operation[%d]: %q  error: %w", i, operation.Op, err)
		}

		switch operation.Op {
		case "insert":
			tree.Insert(operation.Key, operation.Value)

		case "remove":
			tree.Remove(operation.Key)

		case "find":
			it := tree.Find(operation.Key)
			if it.IsEnd() {
				fmt.Fprintf(w, "find: %q not found\n", operation.Key)
			} else {
				fmt.Fprintf(w, "find: %q → %q  balance: %d\n", it.Key(), it.Value(), tree.Balance(it))
			}

		case "at":
			value, err := tree.At(operation.Key)
			if nil != err {
				fmt.Fprintf(w, "at: %q  error: %s\n", operation.Key, err)
			} else {
				fmt.Fprintf(w, "at: %q → %q\n", operation.Key, value)
			}

		case "print":
			if tree.IsEmpty() {
				fmt.Fprintf(w, "empty tree\n")
				break
			}
			depth := tree.Print(w, printData)
			fmt.Fprintf(w, "depth: %d\n", depth)

		case "list":
			for it := tree.Begin(); !it.IsEnd(); it = it.Next() {
				fmt.Fprintf(w, "%q → %q\n", it.Key(), it.Value())
			}

		case "check":
			stats := tree.Stats()
			fmt.Fprintf(w, "check: order: %t  balance: %t  parent: %t  count: %d  height: %d  rotations: %d/%d\n",
				tree.CheckOrder(), tree.CheckBalance(), tree.CheckUp(),
				tree.Count(), tree.Height(), stats.Single, stats.Double)

		case "clear":
			tree.Clear()
		}
	}
	return nil
}
