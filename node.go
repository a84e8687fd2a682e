// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bst

import (
	"fmt"
)

// Node is a single element of the tree. A nil *Node is the empty subtree,
// and every read method below accepts a nil receiver.
//
// Keys in the left subtree are strictly less than key, keys in the right
// subtree are greater than or equal to it. Nodes reachable from a committed
// Tree are never modified again.
type Node struct {
	key   int
	left  *Node
	right *Node

	// mutateCh is closed when a tracked transaction replaces or removes
	// this node.
	mutateCh chan struct{}
}

func (n *Node) Key() int {
	return n.key
}

func (n *Node) Left() *Node {
	return n.left
}

func (n *Node) Right() *Node {
	return n.right
}

func (n *Node) isLeaf() bool {
	return n.left == nil && n.right == nil
}

func (n *Node) getMutateCh() chan struct{} {
	return n.mutateCh
}

// Lookup reports whether key is present in the subtree.
func (n *Node) Lookup(key int) bool {
	if n == nil {
		return false
	}
	if n.key == key {
		return true
	}
	if key < n.key {
		return n.left.Lookup(key)
	}
	return n.right.Lookup(key)
}

// Minimum returns the node holding the smallest key of the subtree, or
// ErrEmptyTree if the subtree is empty.
func (n *Node) Minimum() (*Node, error) {
	if n == nil {
		return nil, ErrEmptyTree
	}
	return minimum(n), nil
}

// Maximum returns the node holding the largest key of the subtree, or
// ErrEmptyTree if the subtree is empty.
func (n *Node) Maximum() (*Node, error) {
	if n == nil {
		return nil, ErrEmptyTree
	}
	return maximum(n), nil
}

// Size is the number of nodes in the subtree.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.Size() + n.right.Size()
}

// Depth counts the levels of the subtree, so a lone node has depth 1 and
// the empty subtree has depth 0.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.Depth(), n.right.Depth())
}

// Height is Depth minus one: -1 for the empty subtree, 0 for a leaf.
func (n *Node) Height() int {
	return n.Depth() - 1
}

// Balanced reports whether the depths of the two children differ by at
// most one at every node of the subtree.
func (n *Node) Balanced() bool {
	_, ok := balance(n)
	return ok
}

// Validate checks the ordering invariant over the whole subtree.
func (n *Node) Validate() error {
	return validate(n, nil, nil)
}

// validate checks that every key in n lies in [lo, hi). A nil bound is
// unbounded.
func validate(n *Node, lo, hi *int) error {
	if n == nil {
		return nil
	}
	if lo != nil && n.key < *lo {
		return fmt.Errorf("%w: key %d is less than ancestor %d", ErrInvariant, n.key, *lo)
	}
	if hi != nil && n.key >= *hi {
		return fmt.Errorf("%w: key %d is not less than ancestor %d", ErrInvariant, n.key, *hi)
	}
	if err := validate(n.left, lo, &n.key); err != nil {
		return err
	}
	return validate(n.right, &n.key, hi)
}
