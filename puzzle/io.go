// stepdoku - a stepwise Sudoku solver and teaching tool.
// Copyright (C) 2026 the stepdoku authors.
//
// Use of this source code is governed by the MIT license
// found in the LICENSE file.

package puzzle

import (
	"fmt"
)

/*

Print forms of boards

*/

// String gives the plain boxed-grid view of a board: assigned
// digits only, underscores for open cells.
func (b *Board) String() string {
	return b.Art(false)
}

// Art returns a pretty-printed grid of the board as a string.
// With showHints, open cells display what is known about them:
// "=d" for a single remaining candidate and "a,b" for a
// two-candidate cell.  Wider candidate sets print as "_" either
// way; the checkpoint file format is the place for full fidelity.
func (b *Board) Art(showHints bool) (result string) {
	if b == nil {
		return
	}
	// the column header
	result += "  "
	for col := 0; col < sideLen; col++ {
		if col%boxLen == 0 {
			result += "|"
		} else {
			result += " "
		}
		result += fmt.Sprintf("%2d ", col)
	}
	result += "|\n"
	// the rows, with a separator above each band of boxes
	for row := 0; row < sideLen; row++ {
		if row%boxLen == 0 {
			result += "  "
			for i := 0; i < sideLen; i++ {
				result += "+---"
			}
			result += "+\n"
		}
		result += fmt.Sprintf("%d ", row)
		for col := 0; col < sideLen; col++ {
			c := b.cellAt(Location{Col: col, Row: row})
			if col%boxLen == 0 {
				result += "|"
			} else {
				result += " "
			}
			switch {
			case c.digit != 0:
				result += fmt.Sprintf(" %d ", c.digit)
			case !showHints:
				result += " _ "
			case c.cands.Count() == 1:
				result += fmt.Sprintf("=%d ", c.cands.Single())
			case c.cands.Count() == 2:
				ds := c.cands.Digits()
				result += fmt.Sprintf("%d,%d", ds[0], ds[1])
			default:
				result += " _ "
			}
		}
		result += "|\n"
	}
	result += "  "
	for i := 0; i < sideLen; i++ {
		result += "+---"
	}
	result += "+\n"
	return
}
