// stepdoku - a stepwise Sudoku solver and teaching tool.
// Copyright (C) 2026 the stepdoku authors.
//
// Use of this source code is governed by the MIT license
// found in the LICENSE file.

package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
