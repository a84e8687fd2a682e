// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bst

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

// balancedByDepth is the direct recursive definition, recomputing depths at
// every node.
func balancedByDepth(n *Node) bool {
	if n == nil {
		return true
	}
	return abs(n.left.Depth()-n.right.Depth()) <= 1 &&
		balancedByDepth(n.left) &&
		balancedByDepth(n.right)
}

func TestNode_Balanced(t *testing.T) {
	t.Parallel()

	type exp struct {
		keys []int
		want bool
	}
	cases := []exp{
		{nil, true},
		{[]int{1}, true},
		{[]int{2, 1}, true},
		{[]int{8, 3, 10, 1, 6, 9, 14}, true},
		{[]int{8, 3, 10, 1, 6, 14, 4, 7, 13}, false},
		{[]int{5, 4, 3, 2, 1}, false},
		{[]int{1, 2, 3}, false},
		{[]int{50, 17, 72, 12, 23, 54, 76, 9, 14, 19, 67}, true},
	}

	for _, tc := range cases {
		root := buildTree(tc.keys...).Root()
		require.Equal(t, tc.want, root.Balanced(), "keys %v", tc.keys)
		require.Equal(t, balancedByDepth(root), root.Balanced(), "keys %v", tc.keys)
	}
}

func TestNode_BalancedMatchesDefinition(t *testing.T) {
	t.Parallel()

	check := func(keys []int8) bool {
		txn := New().Txn()
		for _, k := range keys {
			txn.Insert(int(k))
		}
		root := txn.Root()
		return root.Balanced() == balancedByDepth(root)
	}
	require.NoError(t, quick.Check(check, nil))
}

func TestNode_InsertProperties(t *testing.T) {
	t.Parallel()

	check := func(keys []int16) bool {
		txn := New().Txn()
		for _, k := range keys {
			txn.Insert(int(k))
		}
		root := txn.Root()

		inorder, err := root.Traverse(InOrder)
		if err != nil || !slices.IsSorted(inorder) {
			return false
		}
		if root.Size() != len(keys) || txn.Len() != len(keys) {
			return false
		}
		if root.Height() != root.Depth()-1 {
			return false
		}
		if root != nil && root.Size() != 1+root.left.Size()+root.right.Size() {
			return false
		}
		for _, k := range keys {
			if !root.Lookup(int(k)) {
				return false
			}
		}
		if len(keys) > 0 {
			n, err := root.Minimum()
			if err != nil || n.Key() != int(slices.Min(keys)) {
				return false
			}
		}
		return root.Validate() == nil
	}
	require.NoError(t, quick.Check(check, nil))
}

func TestNode_DeleteProperties(t *testing.T) {
	t.Parallel()

	check := func(keys []uint8, del []uint8) bool {
		txn := New().Txn()
		present := make(map[int]int)
		for _, k := range keys {
			txn.Insert(int(k))
			present[int(k)]++
		}
		for _, k := range del {
			size := txn.Len()
			ok := txn.Delete(int(k))
			if ok != (present[int(k)] > 0) {
				return false
			}
			if ok {
				present[int(k)]--
				if txn.Len() != size-1 {
					return false
				}
			}
			if txn.Lookup(int(k)) != (present[int(k)] > 0) {
				return false
			}
		}
		root := txn.Root()
		return root.Validate() == nil && root.Size() == txn.Len()
	}
	require.NoError(t, quick.Check(check, nil))
}

func TestNode_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, (*Node)(nil).Validate())
	require.NoError(t, buildTree(sampleKeys...).Root().Validate())

	bad := &Node{
		key:  5,
		left: &Node{key: 3, right: &Node{key: 6}},
	}
	require.ErrorIs(t, bad.Validate(), ErrInvariant)

	// Equal keys belong on the right
	bad = &Node{key: 5, left: &Node{key: 5}}
	require.ErrorIs(t, bad.Validate(), ErrInvariant)

	good := &Node{key: 5, right: &Node{key: 5}}
	require.NoError(t, good.Validate())
}

func TestNode_WalkStopsEarly(t *testing.T) {
	t.Parallel()

	root := buildTree(sampleKeys...).Root()
	var seen []int
	err := root.Walk(InOrder, func(k int) bool {
		seen = append(seen, k)
		return k >= 6
	})
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 4, 6}, seen)

	seen = nil
	err = root.Walk(PostOrder, func(k int) bool {
		seen = append(seen, k)
		return len(seen) == 3
	})
	require.NoError(t, err)
	require.Equal(t, []int{1, 4, 7}, seen)
}

func TestNode_UnknownOrder(t *testing.T) {
	t.Parallel()

	root := buildTree(sampleKeys...).Root()
	_, err := root.Traverse(Order(7))
	require.ErrorIs(t, err, ErrUnknownOrder)
	require.ErrorIs(t, root.Walk(Order(-1), func(int) bool { return false }), ErrUnknownOrder)
}

func TestParseOrder(t *testing.T) {
	t.Parallel()

	type exp struct {
		in   string
		want Order
	}
	cases := []exp{
		{"pre", PreOrder},
		{"pre-order", PreOrder},
		{"PreOrder", PreOrder},
		{"in", InOrder},
		{" inorder ", InOrder},
		{"post-order", PostOrder},
	}
	for _, tc := range cases {
		got, err := ParseOrder(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
		back, err := ParseOrder(got.String())
		require.NoError(t, err)
		require.Equal(t, got, back)
	}

	for _, in := range []string{"", "order", "level", "pre-post"} {
		_, err := ParseOrder(in)
		require.ErrorIs(t, err, ErrUnknownOrder, in)
	}
}
