// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command sibtree prints, queries and converts name/value trees
// stored as JSON, YAML or TOML files.
package main

import "github.com/tvrjcf/Demo-sub001/cmd/sibtree/cmd"

func main() {
	cmd.Execute()
}
