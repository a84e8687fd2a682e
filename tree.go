// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bst

import (
	"errors"
	"io"

	"github.com/xlab/treeprint"
)

var (
	// ErrEmptyTree is returned by queries that need at least one key.
	ErrEmptyTree = errors.New("bst: tree is empty")

	// ErrUnknownOrder is returned for a traversal order other than
	// PreOrder, InOrder or PostOrder.
	ErrUnknownOrder = errors.New("bst: unknown traversal order")

	// ErrInvariant is returned by Validate when a key sits on the wrong
	// side of one of its ancestors.
	ErrInvariant = errors.New("bst: ordering invariant violated")
)

// Tree is an immutable binary search tree over int keys. Insert and Delete
// leave the receiver untouched and return a new tree that shares every
// unchanged node with it, so a *Tree can be read from any number of
// goroutines.
type Tree struct {
	root *Node
	size int

	// mutateCh is closed when a tracked transaction started from this
	// tree changes its root.
	mutateCh chan struct{}
}

func New() *Tree {
	return &Tree{
		mutateCh: make(chan struct{}),
	}
}

// Len is used to return the number of keys in the tree
func (t *Tree) Len() int {
	return t.size
}

// Root returns the root node of the tree, nil when the tree is empty.
func (t *Tree) Root() *Node {
	return t.root
}

func (t *Tree) Insert(key int) *Tree {
	txn := t.Txn()
	txn.Insert(key)
	return txn.Commit()
}

func (t *Tree) Delete(key int) (*Tree, bool) {
	txn := t.Txn()
	ok := txn.Delete(key)
	if !ok {
		return t, false
	}
	return txn.Commit(), true
}

func (t *Tree) Lookup(key int) bool {
	return t.root.Lookup(key)
}

// LookupWatch is Lookup plus a channel that is closed once a tracked
// transaction changes the part of the tree the answer depends on: the
// matching node, or the node whose empty child slot key would occupy.
func (t *Tree) LookupWatch(key int) (<-chan struct{}, bool) {
	n := t.root
	if n == nil {
		return t.mutateCh, false
	}
	for {
		if n.key == key {
			return n.getMutateCh(), true
		}
		next := n.right
		if key < n.key {
			next = n.left
		}
		if next == nil {
			return n.getMutateCh(), false
		}
		n = next
	}
}

func (t *Tree) Minimum() (int, error) {
	n, err := t.root.Minimum()
	if err != nil {
		return 0, err
	}
	return n.key, nil
}

func (t *Tree) Maximum() (int, error) {
	n, err := t.root.Maximum()
	if err != nil {
		return 0, err
	}
	return n.key, nil
}

func (t *Tree) Depth() int {
	return t.root.Depth()
}

func (t *Tree) Height() int {
	return t.root.Height()
}

func (t *Tree) Balanced() bool {
	return t.root.Balanced()
}

// Walk is used to walk the tree
func (t *Tree) Walk(order Order, fn WalkFn) error {
	return t.root.Walk(order, fn)
}

func (t *Tree) Traverse(order Order) ([]int, error) {
	return t.root.Traverse(order)
}

// Iterator returns an ascending iterator positioned before the smallest key.
func (t *Tree) Iterator() *Iterator {
	return t.root.Iterator()
}

// ReverseIterator returns a descending iterator positioned after the largest
// key.
func (t *Tree) ReverseIterator() *ReverseIterator {
	return t.root.ReverseIterator()
}

// PrintTree writes the shape of the tree to w, one node per line, with each
// child labelled L or R.
func (t *Tree) PrintTree(w io.Writer) error {
	if t.root == nil {
		_, err := io.WriteString(w, treeprint.NewWithRoot("(empty)").String())
		return err
	}
	tree := treeprint.NewWithRoot(t.root.key)
	printTreeUtil(tree, t.root)
	_, err := io.WriteString(w, tree.String())
	return err
}

func printTreeUtil(branch treeprint.Tree, n *Node) {
	if n.left != nil {
		printTreeUtil(branch.AddMetaBranch("L", n.left.key), n.left)
	}
	if n.right != nil {
		printTreeUtil(branch.AddMetaBranch("R", n.right.key), n.right)
	}
}
