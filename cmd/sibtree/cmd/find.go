// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newFindCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "find FILE PATH",
		Short: "Print the path, depth, value and siblings of the node at PATH",
		Long: `Find looks up the node at PATH, where each element is a child
name or a [i] index ([-1] is the last child), and prints its full
path, depth, value and neighbouring siblings.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := openTree(args[0], args[1])
			if err != nil {
				return err
			}
			slog.Debug("found node", "path", n.Path(), "children", n.Children().Count())
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "path:     %s\n", n.Path())
			fmt.Fprintf(w, "depth:    %d\n", n.Depth())
			fmt.Fprintf(w, "value:    %v\n", n.Value())
			if prev := n.PreviousSibling(); prev != nil {
				fmt.Fprintf(w, "previous: %s\n", prev.Name())
			}
			if next := n.NextSibling(); next != nil {
				fmt.Fprintf(w, "next:     %s\n", next.Name())
			}
			_, err = fmt.Fprintf(w, "children: %d\n", n.Children().Count())
			return err
		},
	}
}
