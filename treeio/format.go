// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treeio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tvrjcf/Demo-sub001/base/errors"
)

// Format is a file format that trees can be encoded in.
type Format int32

const (
	// JSON is the encoding/json format.
	JSON Format = iota

	// YAML is the YAML 1.2 format.
	YAML

	// TOML is the TOML 1.0 format.
	TOML
)

// ErrUnknownFormat is returned for format names and
// file extensions that are not supported.
var ErrUnknownFormat = errors.New("treeio: unknown format")

// String returns the lowercase name of the format.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	}
	return fmt.Sprintf("Format(%d)", int32(f))
}

// Ext returns the preferred file extension of the format, with the dot.
func (f Format) Ext() string {
	return "." + f.String()
}

// ParseFormat returns the [Format] with the given name (case insensitive).
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}
	return JSON, fmt.Errorf("%w %q", ErrUnknownFormat, name)
}

// FormatFromFilename returns the [Format] for the extension of the given filename.
func FormatFromFilename(filename string) (Format, error) {
	ext := filepath.Ext(filename)
	if ext == "" {
		return JSON, fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, filename)
	}
	return ParseFormat(ext[1:])
}
