// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bst

import (
	"fmt"
	"strings"
)

// Order selects a depth-first traversal.
type Order int

const (
	PreOrder Order = iota
	InOrder
	PostOrder
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case InOrder:
		return "in-order"
	case PostOrder:
		return "post-order"
	default:
		return "Order(" + fmt.Sprint(int(o)) + ")"
	}
}

func (o Order) valid() bool {
	return o >= PreOrder && o <= PostOrder
}

// ParseOrder accepts "pre", "in", "post", optionally followed by "order"
// or "-order", in any case.
func ParseOrder(s string) (Order, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimSuffix(strings.TrimSuffix(name, "order"), "-")
	switch name {
	case "pre":
		return PreOrder, nil
	case "in":
		return InOrder, nil
	case "post":
		return PostOrder, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

// WalkFn is used when walking the tree. Takes a
// key, returning if iteration should be terminated.
type WalkFn func(key int) bool

// Walk visits every key of the subtree in the given order. It stops as soon
// as fn returns true.
func (n *Node) Walk(order Order, fn WalkFn) error {
	if !order.valid() {
		return fmt.Errorf("%w: %s", ErrUnknownOrder, order)
	}
	recursiveWalk(n, order, fn)
	return nil
}

// Traverse collects the keys of the subtree in the given order.
func (n *Node) Traverse(order Order) ([]int, error) {
	keys := make([]int, 0, n.Size())
	err := n.Walk(order, func(k int) bool {
		keys = append(keys, k)
		return false
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// recursiveWalk returns true if the walk should be aborted.
func recursiveWalk(n *Node, order Order, fn WalkFn) bool {
	if n == nil {
		return false
	}
	switch order {
	case PreOrder:
		if fn(n.key) {
			return true
		}
		if recursiveWalk(n.left, order, fn) {
			return true
		}
		return recursiveWalk(n.right, order, fn)
	case InOrder:
		if recursiveWalk(n.left, order, fn) {
			return true
		}
		if fn(n.key) {
			return true
		}
		return recursiveWalk(n.right, order, fn)
	default:
		if recursiveWalk(n.left, order, fn) {
			return true
		}
		if recursiveWalk(n.right, order, fn) {
			return true
		}
		return fn(n.key)
	}
}
