// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "iter"

// Children is the ordered list of a node's direct children. It only
// holds a reference to the first child; everything else is derived by
// following [Node.NextSibling] links, so the order is the order of the
// sibling chain.
type Children[T any] struct {
	first *Node[T]
}

// First returns the first child, or nil if the list is empty.
func (c *Children[T]) First() *Node[T] {
	return c.first
}

// Last returns the last child, or nil if the list is empty.
func (c *Children[T]) Last() *Node[T] {
	cur := c.first
	if cur == nil {
		return nil
	}
	for cur.next != nil {
		cur = cur.next
	}
	return cur
}

// IsEmpty returns whether the list has no children.
func (c *Children[T]) IsEmpty() bool {
	return c.first == nil
}

// At returns the child at the given index, walking the sibling chain
// from the first child. It returns nil if the chain ends first.
// Negative indices are rejected and also return nil.
func (c *Children[T]) At(index int) *Node[T] {
	if index < 0 {
		return nil
	}
	cur := c.first
	for ; cur != nil && index > 0; index-- {
		cur = cur.next
	}
	return cur
}

// ByName returns the first child with exactly the given name,
// or nil if there is none.
func (c *Children[T]) ByName(name string) *Node[T] {
	for cur := c.first; cur != nil; cur = cur.next {
		if cur.name == name {
			return cur
		}
	}
	return nil
}

// Count returns the number of children. The count is not cached:
// it walks the whole sibling chain.
func (c *Children[T]) Count() int {
	n := 0
	for cur := c.first; cur != nil; cur = cur.next {
		n++
	}
	return n
}

// Names returns the names of the children in order.
func (c *Children[T]) Names() []string {
	var names []string
	for cur := c.first; cur != nil; cur = cur.next {
		names = append(names, cur.name)
	}
	return names
}

// All returns a sequence over the children in order. Each call starts
// again from the first child, and each step reads the next sibling
// link on demand.
func (c *Children[T]) All() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for cur := c.first; cur != nil; cur = cur.next {
			if !yield(cur) {
				return
			}
		}
	}
}

// Cursor returns a new forward-only [Cursor] positioned before the
// first child.
func (c *Children[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{list: c}
}
