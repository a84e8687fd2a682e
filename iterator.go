// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bst

// Iterator walks a subtree in ascending key order. It holds the path of
// pending ancestors on a stack instead of recursing.
type Iterator struct {
	node  *Node
	stack []*Node
}

// Iterator returns an iterator over the subtree rooted at n.
func (n *Node) Iterator() *Iterator {
	i := &Iterator{node: n}
	i.pushLeft(n)
	return i
}

// SeekLowerBound positions the iterator so that the next key returned is the
// smallest key greater than or equal to key.
func (i *Iterator) SeekLowerBound(key int) {
	i.stack = i.stack[:0]
	n := i.node
	for n != nil {
		if key <= n.key {
			i.stack = append(i.stack, n)
			n = n.left
		} else {
			n = n.right
		}
	}
}

// Next returns the next key in ascending order.
func (i *Iterator) Next() (int, bool) {
	if len(i.stack) == 0 {
		return 0, false
	}
	n := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	i.pushLeft(n.right)
	return n.key, true
}

func (i *Iterator) pushLeft(n *Node) {
	for n != nil {
		i.stack = append(i.stack, n)
		n = n.left
	}
}
