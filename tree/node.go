// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides a generic first-child / next-sibling tree,
// centered on the [Node] type and its [Children] view.
//
// Each node stores a weak back-reference to its parent, a forward link
// to its next sibling and a [Children] list anchored at its first child.
// Indexed access, name lookup and counting all walk the sibling chain,
// so nothing is cached and nothing needs to be kept in sync.
//
// "Not found" is always reported as a nil *Node. The tree does no
// internal locking and no cycle detection: a cyclic sibling chain is
// a caller bug and makes traversal loop forever.
package tree

import (
	"github.com/tvrjcf/Demo-sub001/base/elide"
)

// Node is one position in a tree. The zero value is not usable;
// create nodes with [NewRoot], [Node.NewSubNode] or [NewChild].
type Node[T any] struct {

	// name identifies the node among its siblings. It is not required
	// to be unique; lookups return the first match.
	name string

	// value is the payload of the node.
	value T

	// parent is the node this node was created under or attached to.
	// It is navigational only and never changes once set.
	parent *Node[T]

	// next is the next node in the parent's sibling chain.
	next *Node[T]

	// children is the list of children, anchored at the first child.
	children Children[T]
}

// NewRoot returns a new root node with the given name and value.
func NewRoot[T any](name string, value T) *Node[T] {
	return newNode(name, value, nil)
}

func newNode[T any](name string, value T, parent *Node[T]) *Node[T] {
	return &Node[T]{name: name, value: value, parent: parent}
}

// Name returns the name the node was created with.
func (n *Node[T]) Name() string {
	return n.name
}

// Value returns the payload of the node.
func (n *Node[T]) Value() T {
	return n.value
}

// SetValue sets the payload of the node.
func (n *Node[T]) SetValue(v T) {
	n.value = v
}

// Parent returns the parent of the node, or nil if it is a root.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// NextSibling returns the next node in the sibling chain,
// or nil if this is the last one.
func (n *Node[T]) NextSibling() *Node[T] {
	return n.next
}

// PreviousSibling returns the node immediately before this one in its
// parent's child list. There is no stored backward link, so it scans the
// parent's children from the start. It returns nil if this node is the
// first child, has no parent, or is not linked into its parent's list.
func (n *Node[T]) PreviousSibling() *Node[T] {
	if n.parent == nil {
		return nil
	}
	var prev *Node[T]
	for c := n.parent.children.first; c != nil; c = c.next {
		if c == n {
			return prev
		}
		prev = c
	}
	return nil
}

// Depth returns the number of parent hops from this node to the root.
// A root node has depth 0.
func (n *Node[T]) Depth() int {
	depth := 0
	for p := n.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// Children returns the child list of this node.
func (n *Node[T]) Children() *Children[T] {
	return &n.children
}

// HasChildren returns whether this node has any linked children.
func (n *Node[T]) HasChildren() bool {
	return n.children.first != nil
}

// NewSubNode returns a new node with the given name and value whose
// parent is this node. The new node is not linked into this node's
// [Children]: it is not visible to iteration or lookup until it is
// spliced in, for example with [Append]. Use [NewChild] to do both.
func (n *Node[T]) NewSubNode(name string, value T) *Node[T] {
	return newNode(name, value, n)
}

// IsRoot returns whether this node has no parent.
func (n *Node[T]) IsRoot() bool {
	return n.parent == nil
}

// Root returns the root of this node's tree.
func (n *Node[T]) Root() *Node[T] {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// IndexInParent returns the index of this node in its parent's child
// list, or -1 if it has no parent or is not linked into the list.
func (n *Node[T]) IndexInParent() int {
	if n.parent == nil {
		return -1
	}
	i := 0
	for c := n.parent.children.first; c != nil; c = c.next {
		if c == n {
			return i
		}
		i++
	}
	return -1
}

// ParentByName returns the first ancestor of this node, going up,
// that has the given name. It returns nil if there is none.
func (n *Node[T]) ParentByName(name string) *Node[T] {
	for p := n.parent; p != nil; p = p.parent {
		if p.name == name {
			return p
		}
	}
	return nil
}

// String implements the [fmt.Stringer] interface by returning the path of the node.
func (n *Node[T]) String() string {
	if n == nil {
		return "nil"
	}
	return elide.Middle(n.Path(), 38)
}
