// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bst

import (
	"github.com/hashicorp/golang-lru/v2/simplelru"
)

const defaultModifiedCache = 8192

// Txn is a batch of mutations over a tree. Nodes are copied on first write
// and then modified in place for the rest of the transaction, so the tree the
// transaction started from is never changed. A Txn must only be used from a
// single goroutine.
type Txn struct {
	root *Node
	snap *Node
	size int

	// snapCh is the mutate channel of the tree the transaction started
	// from. It guards watches taken on an empty tree.
	snapCh chan struct{}

	// writable tracks the nodes created by this transaction that may be
	// modified in place.
	writable *simplelru.LRU[*Node, any]

	trackMutate   bool
	trackChannels map[chan struct{}]struct{}
	trackOverflow bool
}

// Txn starts a new transaction that can be used to mutate the tree
func (t *Tree) Txn() *Txn {
	return &Txn{
		root:   t.root,
		snap:   t.root,
		size:   t.size,
		snapCh: t.mutateCh,
	}
}

// Clone makes an independent copy of the transaction. The clone carries any
// uncommitted writes, has TrackMutate turned off and tracks no nodes; further
// mutations to either transaction are independent.
func (t *Txn) Clone() *Txn {
	// reset the writable node cache to avoid leaking future writes into the clone
	t.writable = nil

	return &Txn{
		root:   t.root,
		snap:   t.snap,
		size:   t.size,
		snapCh: t.snapCh,
	}
}

// TrackMutate can be used to toggle if mutations are tracked. If this is enabled
// then notifications will be issued for affected nodes when the transaction
// is committed.
func (t *Txn) TrackMutate(track bool) {
	t.trackMutate = track
}

// Root returns the current root of the transaction, uncommitted writes
// included.
func (t *Txn) Root() *Node {
	return t.root
}

// Len is the number of keys in the transaction's view of the tree.
func (t *Txn) Len() int {
	return t.size
}

// Lookup reports whether key is present, uncommitted writes included.
func (t *Txn) Lookup(key int) bool {
	return t.root.Lookup(key)
}

// Insert adds key to the tree. Equal keys are kept, each one placed to the
// right of the others.
func (t *Txn) Insert(key int) {
	t.root = t.recursiveInsert(t.root, key)
	t.size++
}

func (t *Txn) recursiveInsert(n *Node, key int) *Node {
	if n == nil {
		return t.newNode(key)
	}
	nc := t.writeNode(n)
	if key < nc.key {
		nc.left = t.recursiveInsert(nc.left, key)
	} else {
		nc.right = t.recursiveInsert(nc.right, key)
	}
	return nc
}

// Delete removes one occurrence of key, reporting whether it was present.
// Deleting a missing key leaves the tree untouched.
func (t *Txn) Delete(key int) bool {
	newRoot, ok := t.recursiveDelete(t.root, key)
	if !ok {
		return false
	}
	t.root = newRoot
	t.size--
	return true
}

func (t *Txn) recursiveDelete(n *Node, key int) (*Node, bool) {
	if n == nil {
		return nil, false
	}

	switch {
	case key < n.key:
		child, ok := t.recursiveDelete(n.left, key)
		if !ok {
			return n, false
		}
		nc := t.writeNode(n)
		nc.left = child
		return nc, true
	case key > n.key:
		child, ok := t.recursiveDelete(n.right, key)
		if !ok {
			return n, false
		}
		nc := t.writeNode(n)
		nc.right = child
		return nc, true
	}

	// Nodes with at most one child are spliced out
	switch {
	case n.left == nil:
		t.trackChannel(n.getMutateCh())
		return n.right, true
	case n.right == nil:
		t.trackChannel(n.getMutateCh())
		return n.left, true
	}

	// Two children: take the successor's key, then drop the successor
	succ := minimum(n.right)
	right, _ := t.recursiveDelete(n.right, succ.key)
	nc := t.writeNode(n)
	nc.key = succ.key
	nc.right = right
	return nc, true
}

func (t *Txn) newNode(key int) *Node {
	n := &Node{
		key:      key,
		mutateCh: make(chan struct{}),
	}
	t.markWritable(n)
	return n
}

// writeNode returns a node that is safe to modify within this transaction,
// copying n unless it was created by the transaction.
func (t *Txn) writeNode(n *Node) *Node {
	if t.writable != nil {
		if _, ok := t.writable.Get(n); ok {
			return n
		}
	}

	t.trackChannel(n.getMutateCh())
	nc := &Node{
		key:      n.key,
		left:     n.left,
		right:    n.right,
		mutateCh: make(chan struct{}),
	}
	t.markWritable(nc)
	return nc
}

func (t *Txn) markWritable(n *Node) {
	if t.writable == nil {
		lru, err := simplelru.NewLRU[*Node, any](defaultModifiedCache, nil)
		if err != nil {
			panic(err)
		}
		t.writable = lru
	}
	t.writable.Add(n, nil)
}

func (t *Txn) trackChannel(ch chan struct{}) {
	// In overflow, make sure we don't store any more objects.
	if t.trackOverflow || !t.trackMutate {
		return
	}

	// If this would overflow the state we reject it and set the flag (since
	// we aren't tracking everything that's required any longer).
	if len(t.trackChannels) >= defaultModifiedCache {
		t.trackChannels = nil
		t.trackOverflow = true
		return
	}

	// Create the map on the fly when we need it.
	if t.trackChannels == nil {
		t.trackChannels = make(map[chan struct{}]struct{})
	}
	t.trackChannels[ch] = struct{}{}
}

// Commit is used to finalize the transaction and return a new tree. If mutation
// tracking is turned on then notifications will also be issued.
func (t *Txn) Commit() *Tree {
	nt := t.CommitOnly()
	if t.trackMutate {
		t.Notify()
	}
	return nt
}

// CommitOnly is used to finalize the transaction and return a new tree, but
// does not issue any notifications until Notify is called.
func (t *Txn) CommitOnly() *Tree {
	nt := &Tree{
		root:     t.root,
		size:     t.size,
		mutateCh: make(chan struct{}),
	}
	t.writable = nil
	return nt
}

// Notify is used along with TrackMutate to trigger notifications. This must
// only be done once a transaction is committed via CommitOnly, and it is called
// automatically by Commit.
func (t *Txn) Notify() {
	if !t.trackMutate {
		return
	}

	if t.root != t.snap && t.snapCh != nil && !isClosed(t.snapCh) {
		close(t.snapCh)
	}

	if t.trackOverflow {
		t.slowNotify()
	} else {
		for ch := range t.trackChannels {
			if !isClosed(ch) {
				close(ch)
			}
		}
	}

	t.trackChannels = nil
	t.trackOverflow = false
}

// slowNotify closes the channel of every node of the starting tree that is no
// longer part of the current one. It needs no tracked state but walks both
// trees.
func (t *Txn) slowNotify() {
	live := make(map[*Node]struct{})
	walkNodes(t.root, func(n *Node) {
		live[n] = struct{}{}
	})
	walkNodes(t.snap, func(n *Node) {
		if _, ok := live[n]; ok {
			return
		}
		if !isClosed(n.mutateCh) {
			close(n.mutateCh)
		}
	})
}
