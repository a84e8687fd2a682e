// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bst

// minimum descends left from a non-nil node.
func minimum(n *Node) *Node {
	for n.left != nil {
		n = n.left
	}
	return n
}

func maximum(n *Node) *Node {
	for n.right != nil {
		n = n.right
	}
	return n
}

// balance returns the depth of n and whether n and all of its subtrees are
// height-balanced, in one bottom-up pass. The depth is meaningless once the
// second result is false.
func balance(n *Node) (int, bool) {
	if n == nil {
		return 0, true
	}
	ld, ok := balance(n.left)
	if !ok {
		return 0, false
	}
	rd, ok := balance(n.right)
	if !ok {
		return 0, false
	}
	if abs(ld-rd) > 1 {
		return 0, false
	}
	return 1 + max(ld, rd), true
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// walkNodes is a pre-order visit of every node, used where the node itself
// (not just its key) matters.
func walkNodes(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	walkNodes(n.left, fn)
	walkNodes(n.right, fn)
}

func isClosed(ch chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}
