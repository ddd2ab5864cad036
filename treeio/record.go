// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package treeio loads and saves [tree.Node] trees in JSON, YAML and
// TOML, through the plain nested [Record] form, and writes indented
// text outlines of trees.
package treeio

import (
	"github.com/tvrjcf/Demo-sub001/tree"
)

// Record is the nested, serializable form of a tree node.
// Only children linked into the child list are included.
type Record[T any] struct {
	Name     string      `json:"name" yaml:"name" toml:"name"`
	Value    T           `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	Children []Record[T] `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// ToRecord returns the [Record] for the tree from the given node down.
func ToRecord[T any](n *tree.Node[T]) Record[T] {
	r := Record[T]{Name: n.Name(), Value: n.Value()}
	for kid := range n.Children().All() {
		r.Children = append(r.Children, ToRecord(kid))
	}
	return r
}

// FromRecord returns a new root node built from the given [Record],
// with all children linked in the order of the record.
func FromRecord[T any](r Record[T]) *tree.Node[T] {
	root := tree.NewRoot(r.Name, r.Value)
	addChildren(root, r.Children)
	return root
}

func addChildren[T any](parent *tree.Node[T], recs []Record[T]) {
	for _, rc := range recs {
		kid := tree.NewChild(parent, rc.Name, rc.Value)
		addChildren(kid, rc.Children)
	}
}
