// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkUp calls the given function on the node and all of its parents.
// It stops walking if the function returns [Break] and keeps walking if
// it returns [Continue]. It returns whether walking was finished (false
// if it was aborted with [Break]).
func (n *Node[T]) WalkUp(fun func(n *Node[T]) bool) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if !fun(cur) {
			return false
		}
	}
	return true
}

// WalkUpParent calls the given function on all of the node's parents (but not
// the node itself). It stops walking if the function returns [Break] and keeps
// walking if it returns [Continue]. It returns whether walking was finished.
func (n *Node[T]) WalkUpParent(fun func(n *Node[T]) bool) bool {
	if n.parent == nil {
		return true
	}
	return n.parent.WalkUp(fun)
}

// WalkDown calls the given function on the node and all of its linked
// descendants in depth-first pre-order. It stops walking the current branch
// of the tree if the function returns [Break] and keeps walking if it returns
// [Continue]. It is non-recursive.
func (n *Node[T]) WalkDown(fun func(n *Node[T]) bool) {
	if !fun(n) {
		return
	}
	var pending []*Node[T] // next siblings still to visit, innermost last
	cur := n.children.first
	for {
		if cur == nil {
			if len(pending) == 0 {
				return
			}
			cur = pending[len(pending)-1]
			pending = pending[:len(pending)-1]
			continue
		}
		if fun(cur) && cur.children.first != nil {
			if cur.next != nil {
				pending = append(pending, cur.next)
			}
			cur = cur.children.first
			continue
		}
		cur = cur.next
	}
}

// WalkDownPost iterates in a depth-first manner over the descendants, calling
// shouldContinue on each node to test if processing should proceed (if it returns
// [Break] then that branch of the tree is not further processed), and then calls
// the given function after all of a node's children have been iterated over.
// In effect, this means that the given function is called for deeper nodes first.
// It is non-recursive.
func (n *Node[T]) WalkDownPost(shouldContinue func(n *Node[T]) bool, fun func(n *Node[T]) bool) {
	if !shouldContinue(n) {
		fun(n)
		return
	}
	open := []*Node[T]{n} // nodes whose children are being visited
	cur := n.children.first
	for {
		if cur != nil {
			if shouldContinue(cur) && cur.children.first != nil {
				open = append(open, cur)
				cur = cur.children.first
				continue
			}
			fun(cur)
			cur = cur.next
			continue
		}
		done := open[len(open)-1]
		open = open[:len(open)-1]
		fun(done)
		if len(open) == 0 {
			return
		}
		cur = done.next
	}
}

// WalkDownBreadth calls the given function on the node and all of its linked
// descendants in breadth-first order, along with the depth of each node
// relative to this one. It stops walking the current branch of the tree if
// the function returns [Break] and keeps walking if it returns [Continue].
func (n *Node[T]) WalkDownBreadth(fun func(n *Node[T], depth int) bool) {
	type entry struct {
		node  *Node[T]
		depth int
	}
	queue := []entry{{n, 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if !fun(cur.node, cur.depth) {
			continue
		}
		for kid := range cur.node.children.All() {
			queue = append(queue, entry{kid, cur.depth + 1})
		}
	}
}

// Last returns the last node in the tree under the given node in
// depth-first order, or the node itself if it has no children.
func Last[T any](n *Node[T]) *Node[T] {
	for n.children.first != nil {
		n = n.children.Last()
	}
	return n
}

// Previous returns the previous node in the tree in depth-first order,
// or nil if this is the root node.
func Previous[T any](n *Node[T]) *Node[T] {
	if n.parent == nil {
		return nil
	}
	if prev := n.PreviousSibling(); prev != nil {
		return Last(prev)
	}
	return n.parent
}

// Next returns the next node in the tree in depth-first order,
// or nil if this is the last node.
func Next[T any](n *Node[T]) *Node[T] {
	if n.children.first != nil {
		return n.children.first
	}
	for cur := n; cur != nil; cur = cur.parent {
		if cur.next != nil {
			return cur.next
		}
	}
	return nil
}
