// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCountCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "count FILE [PATH]",
		Short: "Print the number of direct children of the root, or of the node at PATH",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := openTree(args[0], args[1:]...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), n.Children().Count())
			return err
		},
	}
}
