// stepdoku - a stepwise Sudoku solver and teaching tool.
// Copyright (C) 2026 the stepdoku authors.
//
// Use of this source code is governed by the MIT license
// found in the LICENSE file.

// Package format reads and writes the two puzzle file formats and
// the move log.
//
// A start file gives the 81 cells of a fresh puzzle in reading
// order (left to right, top to bottom), one token per cell: a
// digit 1 through 9 for a given, and "." or "0" or "_" for an
// empty cell.  Rows may be written as 9 separate tokens or run
// together as one 9-character token, so both
//
//	4 . . . . 3 5 . 2
//
// and
//
//	4....35.2
//
// denote the same row.
//
// A checkpoint file captures a solve in progress with full
// candidate fidelity: 81 whitespace-separated tokens, "=5" for a
// cell assigned 5 and a digit run like "137" for an open cell
// admitting exactly 1, 3 and 7.  Loading a checkpoint replays it
// through the board's own assignment and restriction operations,
// so a corrupted file that violates group uniqueness is rejected
// the same way an illegal interactive move would be.
package format

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/stepdoku/stepdoku/puzzle"
)

const cellCount = 81

// locationOf maps a reading-order token index to its cell.
func locationOf(i int) puzzle.Location {
	return puzzle.Location{Col: i % 9, Row: i / 9}
}

/*

Start files

*/

// ParseStart reads a start-format grid and returns a board with
// the given digits assigned.
func ParseStart(r io.Reader) (*puzzle.Board, error) {
	tokens, err := startTokens(r)
	if err != nil {
		return nil, err
	}
	b := puzzle.NewBoard()
	for i, tok := range tokens {
		switch {
		case tok == "." || tok == "0" || tok == "_":
			// empty cell
		case len(tok) == 1 && tok[0] >= '1' && tok[0] <= '9':
			if err := b.Assign(locationOf(i), int(tok[0]-'0')); err != nil {
				return nil, fmt.Errorf("cell %d: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("cell %d: bad start token %q", i, tok)
		}
	}
	return b, nil
}

// startTokens splits a start file into 81 one-character tokens,
// expanding run-together rows.
func startTokens(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var tokens []string
	for _, word := range strings.Fields(string(data)) {
		if len(word) == 1 {
			tokens = append(tokens, word)
			continue
		}
		for _, c := range word {
			tokens = append(tokens, string(c))
		}
	}
	if len(tokens) != cellCount {
		return nil, fmt.Errorf("start grid has %d cells, expected %d", len(tokens), cellCount)
	}
	return tokens, nil
}

/*

Checkpoint files

*/

// ParseCheckpoint reads a checkpoint-format grid and returns the
// reconstructed board.  Assignments are replayed first so their
// propagation happens before the open cells are narrowed to their
// recorded candidate sets.
func ParseCheckpoint(r io.Reader) (*puzzle.Board, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	tokens := strings.Fields(string(data))
	if len(tokens) != cellCount {
		return nil, fmt.Errorf("checkpoint has %d cells, expected %d", len(tokens), cellCount)
	}
	b := puzzle.NewBoard()
	for i, tok := range tokens {
		if !strings.HasPrefix(tok, "=") {
			continue
		}
		d, err := digitOf(tok[1:])
		if err != nil {
			return nil, fmt.Errorf("cell %d: bad checkpoint token %q", i, tok)
		}
		if err := b.Assign(locationOf(i), d); err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
	}
	for i, tok := range tokens {
		if strings.HasPrefix(tok, "=") {
			continue
		}
		var allowed puzzle.DigitSet
		for _, c := range tok {
			d, err := digitOf(string(c))
			if err != nil {
				return nil, fmt.Errorf("cell %d: bad checkpoint token %q", i, tok)
			}
			allowed = allowed.Add(d)
		}
		if err := b.RestrictCandidates(locationOf(i), allowed); err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
	}
	return b, nil
}

func digitOf(s string) (int, error) {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, fmt.Errorf("bad digit %q", s)
	}
	return int(s[0] - '0'), nil
}

// WriteCheckpoint writes the board in checkpoint format, 9 tokens
// per line.  ParseCheckpoint reconstructs the written board
// exactly.
func WriteCheckpoint(w io.Writer, b *puzzle.Board) error {
	for i := 0; i < cellCount; i++ {
		loc := locationOf(i)
		var tok string
		if d := b.Value(loc); d != 0 {
			tok = fmt.Sprintf("=%d", d)
		} else {
			var sb strings.Builder
			for _, d := range b.Candidates(loc).Digits() {
				fmt.Fprintf(&sb, "%d", d)
			}
			tok = sb.String()
		}
		sep := " "
		if i%9 == 0 {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "%s%s", sep, tok); err != nil {
			return err
		}
		if i%9 == 8 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}

/*

File loading

*/

// ReadFile loads a puzzle file of either format.  A file whose
// tokens are all single characters is a start grid; anything with
// an "=" or a multi-digit candidate run is a checkpoint.
func ReadFile(path string) (*puzzle.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := string(data)
	if isCheckpoint(text) {
		b, err := ParseCheckpoint(strings.NewReader(text))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return b, nil
	}
	b, err := ParseStart(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

func isCheckpoint(text string) bool {
	fields := strings.Fields(text)
	// a run-together start row is 9 characters; any other
	// multi-character token marks a checkpoint
	for _, f := range fields {
		if strings.HasPrefix(f, "=") {
			return true
		}
		if len(f) > 1 && len(f) != 9 {
			return true
		}
	}
	// 81 tokens of candidate runs that all happen to be 9 long
	// (a blank board) still parse as a checkpoint
	return len(fields) == cellCount && len(fields[0]) == 9
}
