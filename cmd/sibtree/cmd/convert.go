// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tvrjcf/Demo-sub001/treeio"
)

func newConvertCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Re-encode a tree; formats are taken from the file extensions",
		Long: `Convert reads the tree in IN and writes it to OUT. The formats
are taken from the file extensions (.json, .yaml, .yml, .toml).
If OUT is "-", the tree is written to standard output in the
format set in the config.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := openTree(args[0])
			if err != nil {
				return err
			}
			if args[1] == "-" {
				return treeio.Write(cmd.OutOrStdout(), n, o.cfg.OutputFormat())
			}
			if err := treeio.Save(args[1], n); err != nil {
				return err
			}
			slog.Info("converted", "from", args[0], "to", args[1])
			return nil
		},
	}
}
