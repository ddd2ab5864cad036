// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treeio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/tvrjcf/Demo-sub001/tree"
)

// Write writes the tree from the given node down to the given writer
// in the given format.
func Write[T any](w io.Writer, n *tree.Node[T], f Format) error {
	rec := ToRecord(n)
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "\t")
		return enc.Encode(rec)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		return enc.Encode(rec)
	}
	return fmt.Errorf("treeio.Write: %w %v", ErrUnknownFormat, f)
}

// Read reads a tree in the given format from the given reader
// and returns its root node.
func Read[T any](r io.Reader, f Format) (*tree.Node[T], error) {
	var rec Record[T]
	var err error
	switch f {
	case JSON:
		err = json.NewDecoder(r).Decode(&rec)
	case YAML:
		err = yaml.NewDecoder(r).Decode(&rec)
	case TOML:
		err = toml.NewDecoder(r).Decode(&rec)
	default:
		err = fmt.Errorf("%w %v", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("treeio.Read: %w", err)
	}
	return FromRecord(rec), nil
}

// Save writes the tree from the given node down to the given file,
// in the format given by its extension. A leading ~ in the filename
// is expanded to the home directory.
func Save[T any](filename string, n *tree.Node[T]) (err error) {
	filename, err = homedir.Expand(filename)
	if err != nil {
		return err
	}
	f, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fp.Close(); err == nil {
			err = cerr
		}
	}()
	bw := bufio.NewWriter(fp)
	if err = Write(bw, n, f); err != nil {
		return err
	}
	return bw.Flush()
}

// Open reads the tree in the given file, in the format given by its
// extension, and returns its root node. A leading ~ in the filename
// is expanded to the home directory.
func Open[T any](filename string) (*tree.Node[T], error) {
	filename, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	f, err := FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return Read[T](bufio.NewReader(fp), f)
}
