// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"

	"github.com/tvrjcf/Demo-sub001/base/errors"
)

// link.go has the code that splices nodes into sibling chains.
// The node and child list types do not do this themselves.

var (
	// ErrNilNode is returned when a nil node is passed to a linking function.
	ErrNilNode = errors.New("tree: nil node")

	// ErrSelfLink is returned when a node would be linked under itself.
	ErrSelfLink = errors.New("tree: node can not be linked to itself")

	// ErrForeignParent is returned when a node already has a parent
	// other than the one it is being linked under. Nodes can not be moved.
	ErrForeignParent = errors.New("tree: node belongs to another parent")

	// ErrAlreadyLinked is returned when a node is already in the child
	// list it is being linked into.
	ErrAlreadyLinked = errors.New("tree: node is already linked")

	// ErrAncestor is returned when a node would be linked under one of
	// its own descendants.
	ErrAncestor = errors.New("tree: node is an ancestor of the parent")
)

// SetFirst sets the first child of the list. It does not change the
// parent of n or any sibling links; keeping the chain consistent is
// up to the caller.
func (c *Children[T]) SetFirst(n *Node[T]) {
	c.first = n
}

// SetNextSibling sets the next sibling link of the node. It does no
// checking; keeping the chain free of cycles is up to the caller.
func (n *Node[T]) SetNextSibling(next *Node[T]) {
	n.next = next
}

// attach checks that child can be linked under parent,
// and sets its parent if it is still a root.
func attach[T any](parent, child *Node[T]) error {
	if parent == nil || child == nil {
		return ErrNilNode
	}
	if parent == child {
		return fmt.Errorf("%w: %s", ErrSelfLink, child.name)
	}
	if child.parent != nil && child.parent != parent {
		return fmt.Errorf("%w: %q is under %s, not %s", ErrForeignParent, child.name, child.parent, parent)
	}
	if child.parent == parent && child.IndexInParent() >= 0 {
		return fmt.Errorf("%w: %s", ErrAlreadyLinked, child)
	}
	if !parent.WalkUpParent(func(k *Node[T]) bool { return k != child }) {
		return fmt.Errorf("%w: %s above %s", ErrAncestor, child.name, parent)
	}
	child.parent = parent
	return nil
}

// Append links the given child at the end of the parent's child list.
// If the child has no parent yet, its parent becomes the given parent.
// It fails if the child is already in the list or is an ancestor of
// the parent. A parentless child that was linked somewhere with the
// raw primitives is not detected.
func Append[T any](parent, child *Node[T]) error {
	if err := attach(parent, child); err != nil {
		return err
	}
	child.next = nil
	last := parent.children.Last()
	if last == nil {
		parent.children.first = child
		return nil
	}
	last.next = child
	return nil
}

// InsertAfter links the given child into the sibling chain directly
// after prev, under the parent of prev.
func InsertAfter[T any](prev, child *Node[T]) error {
	if prev == nil || child == nil {
		return ErrNilNode
	}
	if prev == child {
		return fmt.Errorf("%w: %s", ErrSelfLink, child.name)
	}
	if prev.parent == nil {
		return fmt.Errorf("tree.InsertAfter: %s is a root and has no siblings", prev)
	}
	if err := attach(prev.parent, child); err != nil {
		return err
	}
	child.next = prev.next
	prev.next = child
	return nil
}

// NewChild creates a new node under the given parent with
// [Node.NewSubNode] and links it at the end of the parent's
// child list, so it is immediately visible to lookups.
func NewChild[T any](parent *Node[T], name string, value T) *Node[T] {
	kid := parent.NewSubNode(name, value)
	errors.Log(Append(parent, kid))
	return kid
}
