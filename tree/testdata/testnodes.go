// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testdata has value types and trees shared by the tree tests.
package testdata

import "github.com/tvrjcf/Demo-sub001/tree"

// Payload is a struct value with reference-typed fields,
// used to check that clones do not share memory.
type Payload struct {
	Label  string
	Weight int
	Tags   []string
	Attrs  map[string]string
}

// NewSample returns the tree
//
//	root
//	├── child0
//	├── child1
//	│   └── subchild1
//	│       └── subsubchild1
//	├── child2
//	└── child3
//
// with each node's value set to its index in depth-first order.
func NewSample() *tree.Node[int] {
	root := tree.NewRoot("root", 0)
	tree.NewChild(root, "child0", 1)
	child1 := tree.NewChild(root, "child1", 2)
	schild1 := tree.NewChild(child1, "subchild1", 3)
	tree.NewChild(schild1, "subsubchild1", 4)
	tree.NewChild(root, "child2", 5)
	tree.NewChild(root, "child3", 6)
	return root
}
