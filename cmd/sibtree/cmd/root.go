// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of the sibtree tool.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tvrjcf/Demo-sub001/base/errors"
	"github.com/tvrjcf/Demo-sub001/base/logx"
	"github.com/tvrjcf/Demo-sub001/cmd/sibtree/config"
	"github.com/tvrjcf/Demo-sub001/tree"
	"github.com/tvrjcf/Demo-sub001/treeio"
)

// options are the persistent flags shared by all commands.
type options struct {
	configFile string
	logLevel   string
	cfg        *config.Config
}

// NewRoot returns the root sibtree command with all subcommands added.
func NewRoot() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "sibtree",
		Short:         "Inspect and convert name/value trees stored as JSON, YAML or TOML",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.load(cmd)
		},
	}
	root.PersistentFlags().StringVar(&o.configFile, "config", config.DefaultFile, "config file")
	root.PersistentFlags().StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides config)")

	root.AddCommand(
		newPrintCmd(o),
		newCountCmd(o),
		newFindCmd(o),
		newConvertCmd(o),
	)
	return root
}

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	root := NewRoot()
	if err := root.Execute(); err != nil {
		root.PrintErrln("sibtree:", err)
		os.Exit(1)
	}
}

// load reads the config and sets up logging.
func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.Open(o.configFile)
	if err != nil {
		// a broken config should not stop read-only commands
		errors.Log(err)
	}
	o.cfg = cfg
	level := cfg.LogLevel
	if o.logLevel != "" {
		level = o.logLevel
	}
	lv, err := logx.ParseLevel(level)
	if err != nil {
		return err
	}
	logx.SetDefault(cmd.ErrOrStderr(), lv)
	return nil
}

// openTree opens the tree in the given file, optionally
// narrowed to the node at the given path.
func openTree(file string, path ...string) (*tree.Node[any], error) {
	root, err := treeio.Open[any](file)
	if err != nil {
		return nil, err
	}
	if len(path) == 0 || path[0] == "" {
		return root, nil
	}
	n := root.FindPath(path[0])
	if n == nil {
		return nil, &notFoundError{file: file, path: path[0]}
	}
	return n, nil
}

type notFoundError struct {
	file, path string
}

func (e *notFoundError) Error() string {
	return "no node at path " + e.path + " in " + e.file
}
