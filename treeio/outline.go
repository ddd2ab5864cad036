// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treeio

import (
	"fmt"
	"io"
	"reflect"

	"github.com/tvrjcf/Demo-sub001/base/indent"
	"github.com/tvrjcf/Demo-sub001/tree"
)

// WriteOutline writes one line per node of the tree from the given node
// down, in depth-first order, indented by the depth of the node below n.
// Each line is the node name, followed by ": value" if the value is not
// the zero value.
func WriteOutline[T any](w io.Writer, n *tree.Node[T], ich indent.Character, width int) error {
	var err error
	base := n.Depth()
	n.WalkDown(func(k *tree.Node[T]) bool {
		if err != nil {
			return tree.Break
		}
		line := indent.String(ich, k.Depth()-base, width) + k.Name()
		if v := reflect.ValueOf(k.Value()); v.IsValid() && !v.IsZero() {
			line += fmt.Sprintf(": %v", k.Value())
		}
		_, err = fmt.Fprintln(w, line)
		return tree.Continue
	})
	return err
}
