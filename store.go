// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bst

import (
	"sync"
	"sync/atomic"
)

// Store holds the current version of a tree for concurrent use. Writers are
// serialised; readers take snapshots without locking and never observe a
// partially applied update.
type Store struct {
	writeLock sync.Mutex
	current   atomic.Pointer[Tree]
}

// NewStore returns a store holding t, or an empty tree when t is nil.
func NewStore(t *Tree) *Store {
	if t == nil {
		t = New()
	}
	s := &Store{}
	s.current.Store(t)
	return s
}

// Snapshot returns the latest committed tree.
func (s *Store) Snapshot() *Tree {
	return s.current.Load()
}

// Update runs fn against a transaction on the latest tree and publishes the
// result. If fn returns an error nothing is published. Watches taken on
// earlier snapshots fire after the new tree is visible.
func (s *Store) Update(fn func(txn *Txn) error) error {
	s.writeLock.Lock()
	defer s.writeLock.Unlock()

	txn := s.current.Load().Txn()
	txn.TrackMutate(true)
	if err := fn(txn); err != nil {
		return err
	}
	s.current.Store(txn.CommitOnly())
	txn.Notify()
	return nil
}
