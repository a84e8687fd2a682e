// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bst

// ReverseIterator is used to iterate over a set of nodes
// in reverse in-order
type ReverseIterator struct {
	node  *Node
	stack []*Node
}

func (n *Node) ReverseIterator() *ReverseIterator {
	ri := &ReverseIterator{node: n}
	ri.pushRight(n)
	return ri
}

// SeekReverseLowerBound is used to seek the iterator to the largest key that is
// lower or equal to the given key.
func (ri *ReverseIterator) SeekReverseLowerBound(key int) {
	ri.stack = ri.stack[:0]
	n := ri.node
	for n != nil {
		if n.key <= key {
			ri.stack = append(ri.stack, n)
			n = n.right
		} else {
			n = n.left
		}
	}
}

// Previous returns the previous key in reverse order
func (ri *ReverseIterator) Previous() (int, bool) {
	if len(ri.stack) == 0 {
		return 0, false
	}
	n := ri.stack[len(ri.stack)-1]
	ri.stack = ri.stack[:len(ri.stack)-1]
	ri.pushRight(n.left)
	return n.key, true
}

func (ri *ReverseIterator) pushRight(n *Node) {
	for n != nil {
		ri.stack = append(ri.stack, n)
		n = n.right
	}
}
