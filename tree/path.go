// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"strconv"
	"strings"
)

// EscapePathName returns a name that replaces any / with \\
func EscapePathName(name string) string {
	return strings.ReplaceAll(name, "/", `\\`)
}

// UnescapePathName returns a name that replaces any \\ with /
func UnescapePathName(name string) string {
	return strings.ReplaceAll(name, `\\`, "/")
}

// Path returns the path to this node from the tree root,
// using node names separated by / delimeters. Any
// existing / characters in names are escaped to \\
func (n *Node[T]) Path() string {
	if n.parent != nil {
		return n.parent.Path() + "/" + EscapePathName(n.name)
	}
	return "/" + EscapePathName(n.name)
}

// PathFrom returns the path to this node from the given ancestor node,
// using node names separated by / delimeters. Any existing / characters
// in names are escaped to \\
//
// The paths that it returns exclude the name of the ancestor and the
// leading slash; for example, in the tree a/b/c/d/e, the result of
// d.PathFrom(b) would be c/d. If the given node is not an ancestor,
// the result is the same as [Node.Path] without the leading slash.
func (n *Node[T]) PathFrom(ancestor *Node[T]) string {
	if n == ancestor {
		return ""
	}
	// we bail a level below the ancestor so it isn't in the path
	if n.parent == nil || n.parent == ancestor {
		return EscapePathName(n.name)
	}
	return n.parent.PathFrom(ancestor) + "/" + EscapePathName(n.name)
}

// FindPath returns the node at the given path from this node.
// FindPath only works reliably when names are unique, as the first
// matching child is taken at each level. The given path must be
// consistent with the format produced by [Node.PathFrom]. There is
// also support for index-based access (ie: [0] for the first child,
// [-1] for the last one). It returns nil if no node is found at the
// given path.
func (n *Node[T]) FindPath(path string) *Node[T] {
	cur := n
	for _, pe := range strings.Split(strings.Trim(strings.TrimSpace(path), "\""), "/") {
		if len(pe) == 0 {
			continue
		}
		cur = findPathChild(cur, UnescapePathName(pe))
		if cur == nil {
			return nil
		}
	}
	return cur
}

// findPathChild finds the child with the given string representation in [Node.FindPath].
func findPathChild[T any](n *Node[T], child string) *Node[T] {
	if len(child) > 2 && child[0] == '[' && child[len(child)-1] == ']' {
		idx, err := strconv.Atoi(child[1 : len(child)-1])
		if err == nil {
			if idx < 0 { // from end
				idx += n.children.Count()
			}
			return n.children.At(idx)
		}
	}
	return n.children.ByName(child)
}
