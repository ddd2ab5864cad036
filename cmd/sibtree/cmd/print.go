// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tvrjcf/Demo-sub001/treeio"
)

func newPrintCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "print FILE [PATH]",
		Short: "Print an indented outline of the tree, or of the subtree at PATH",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := openTree(args[0], args[1:]...)
			if err != nil {
				return err
			}
			return treeio.WriteOutline(cmd.OutOrStdout(), n, o.cfg.IndentCharacter(), o.cfg.IndentWidth)
		},
	}
}
