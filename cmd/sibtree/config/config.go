// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration structs for the sibtree tool.
package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/tvrjcf/Demo-sub001/base/errors"
	"github.com/tvrjcf/Demo-sub001/base/indent"
	"github.com/tvrjcf/Demo-sub001/base/logx"
	"github.com/tvrjcf/Demo-sub001/treeio"
)

// DefaultFile is the config file that is used when none is given.
const DefaultFile = "~/.config/sibtree/config.toml"

// Config is the configuration information for the sibtree tool.
type Config struct {

	// Format is the output format used by convert when
	// the output file is "-" (standard output).
	Format string `toml:"format"`

	// Indent is the indentation character for outlines: tab or space.
	Indent string `toml:"indent"`

	// IndentWidth is the number of spaces per level when Indent is space.
	IndentWidth int `toml:"indent_width"`

	// LogLevel is the minimum level of log messages: debug, info, warn or error.
	LogLevel string `toml:"log_level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Format:      "json",
		Indent:      "space",
		IndentWidth: 2,
		LogLevel:    "warn",
	}
}

// Open reads the config at the given file on top of the defaults.
// A missing file is not an error. A file that can not be decoded
// or has invalid values returns the defaults along with the error.
// A leading ~ is expanded to the home directory.
func Open(file string) (*Config, error) {
	c := Default()
	path, err := homedir.Expand(file)
	if err != nil {
		return c, err
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("config file not found, using defaults", "file", path)
		return c, nil
	}
	if err != nil {
		return c, err
	}
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return Default(), fmt.Errorf("config.Open %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Default(), fmt.Errorf("config.Open %s: %w", path, err)
	}
	return c, nil
}

// Validate returns an error if any field has an unsupported value.
func (c *Config) Validate() error {
	var errs []error
	if _, err := treeio.ParseFormat(c.Format); err != nil {
		errs = append(errs, err)
	}
	if _, err := indent.ParseCharacter(c.Indent); err != nil {
		errs = append(errs, err)
	}
	if c.IndentWidth < 0 {
		errs = append(errs, fmt.Errorf("config: negative indent_width %d", c.IndentWidth))
	}
	if _, err := logx.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// IndentCharacter returns the parsed [Config.Indent], defaulting to spaces.
func (c *Config) IndentCharacter() indent.Character {
	ich, err := indent.ParseCharacter(c.Indent)
	if err != nil {
		return indent.Space
	}
	return ich
}

// OutputFormat returns the parsed [Config.Format], defaulting to JSON.
func (c *Config) OutputFormat() treeio.Format {
	return errors.Log1(treeio.ParseFormat(c.Format))
}
