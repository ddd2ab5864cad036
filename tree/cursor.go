// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// Cursor is a forward-only position in a [Children] list. It starts
// before the first child; each call to [Cursor.Next] moves it one
// sibling along. It can not be rewound: get a new one from
// [Children.Cursor] to start over.
//
//	for c := n.Children().Cursor(); c.Next(); {
//		fmt.Println(c.Node().Name())
//	}
type Cursor[T any] struct {
	list    *Children[T]
	current *Node[T]
	started bool
}

// Next advances the cursor and returns whether it is now on a node.
// Once it returns false it keeps returning false.
func (c *Cursor[T]) Next() bool {
	if !c.started {
		c.started = true
		c.current = c.list.first
		return c.current != nil
	}
	if c.current == nil {
		return false
	}
	c.current = c.current.next
	return c.current != nil
}

// Node returns the node the cursor is on, or nil before the first
// call to [Cursor.Next] and after the end of the list.
func (c *Cursor[T]) Node() *Node[T] {
	return c.current
}
