package format

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepdoku/stepdoku/puzzle"
)

const easyStart = `
4 . . . . 3 5 . 2
. . 9 5 . 6 3 4 .
. . . . . . . . 8
. . . . 3 4 8 6 .
. . 4 6 . 5 2 . .
. 2 8 7 9 . . . .
9 . . . . . . . .
. 8 7 3 . 2 9 . .
5 . 2 9 . . . . 6
`

const easyStartCompact = `
4....35.2
..95.634.
........8
....3486.
..46.52..
.2879....
9........
.873.29..
5.29....6
`

func TestParseStart(t *testing.T) {
	b, err := ParseStart(strings.NewReader(easyStart))
	require.NoError(t, err)
	assert.Equal(t, 4, b.Value(puzzle.Location{Col: 0, Row: 0}))
	assert.Equal(t, 2, b.Value(puzzle.Location{Col: 8, Row: 0}))
	assert.Equal(t, 6, b.Value(puzzle.Location{Col: 8, Row: 8}))
	assert.Equal(t, 0, b.Value(puzzle.Location{Col: 1, Row: 0}))
	assert.Len(t, b.OpenCells(), 81-32)
}

func TestParseStartCompactRows(t *testing.T) {
	spaced, err := ParseStart(strings.NewReader(easyStart))
	require.NoError(t, err)
	compact, err := ParseStart(strings.NewReader(easyStartCompact))
	require.NoError(t, err)
	for col := 0; col < 9; col++ {
		for row := 0; row < 9; row++ {
			loc := puzzle.Location{Col: col, Row: row}
			assert.Equal(t, spaced.Value(loc), compact.Value(loc), "cell %v", loc)
		}
	}
}

func TestParseStartRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bad token", strings.Replace(easyStart, "4", "x", 1)},
		{"short grid", "4 . . 5"},
		{"conflicting givens", strings.Replace(easyStart, "4 . .", "4 4 .", 1)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseStart(strings.NewReader(test.input))
			assert.Error(t, err)
		})
	}
}

func TestCheckpointRoundTrip(t *testing.T) {
	b, err := ParseStart(strings.NewReader(easyStart))
	require.NoError(t, err)
	// narrow one open cell beyond what propagation knows, as a
	// solver move would
	narrowed := puzzle.Location{Col: 1, Row: 0}
	require.NoError(t, b.RestrictCandidates(narrowed, puzzle.NewDigitSet(1, 6, 7)))

	var buf bytes.Buffer
	require.NoError(t, WriteCheckpoint(&buf, b))

	got, err := ParseCheckpoint(&buf)
	require.NoError(t, err)
	for col := 0; col < 9; col++ {
		for row := 0; row < 9; row++ {
			loc := puzzle.Location{Col: col, Row: row}
			assert.Equal(t, b.Value(loc), got.Value(loc), "value at %v", loc)
			assert.Equal(t, b.Candidates(loc), got.Candidates(loc), "candidates at %v", loc)
		}
	}
}

func TestParseCheckpointRejectsCorruption(t *testing.T) {
	b, err := ParseStart(strings.NewReader(easyStart))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteCheckpoint(&buf, b))

	// an assigned digit duplicated into its own row violates
	// group uniqueness and must not load
	corrupted := strings.Replace(buf.String(), "=4", "=2", 1)
	_, err = ParseCheckpoint(strings.NewReader(corrupted))
	assert.Error(t, err)
}

func TestReadFileDetectsFormat(t *testing.T) {
	dir := t.TempDir()

	startPath := filepath.Join(dir, "start.sdk")
	require.NoError(t, os.WriteFile(startPath, []byte(easyStart), 0o644))
	fromStart, err := ReadFile(startPath)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCheckpoint(&buf, fromStart))
	ckptPath := filepath.Join(dir, "ckpt.sdk")
	require.NoError(t, os.WriteFile(ckptPath, buf.Bytes(), 0o644))

	fromCkpt, err := ReadFile(ckptPath)
	require.NoError(t, err)
	for col := 0; col < 9; col++ {
		for row := 0; row < 9; row++ {
			loc := puzzle.Location{Col: col, Row: row}
			assert.Equal(t, fromStart.Candidates(loc), fromCkpt.Candidates(loc), "candidates at %v", loc)
		}
	}
}

func TestMoveLogRoundTrip(t *testing.T) {
	moves := []puzzle.Move{
		{
			Strategy: puzzle.SingleCandidate,
			Assigned: &puzzle.Assignment{Loc: puzzle.Location{Col: 8, Row: 0}, Digit: 5},
			Reason:   "only one candidate remains",
		},
		{
			Strategy: puzzle.NakedSubset,
			Removed: []puzzle.Elimination{
				{Loc: puzzle.Location{Col: 2, Row: 0}, Digit: 3},
			},
			Reason: "pair {3 7} claims two cells of row 0",
		},
		{
			Strategy:   puzzle.Speculation,
			Assigned:   &puzzle.Assignment{Loc: puzzle.Location{Col: 0, Row: 0}, Digit: 8},
			Reason:     "trying 1 in cell (0,0) contradicts after 1 moves, so 8 holds",
			TrialMoves: 1,
		},
	}

	var buf bytes.Buffer
	log := NewMoveLog(&buf)
	for i := range moves {
		require.NoError(t, log.Append(&moves[i]))
	}
	assert.Equal(t, len(moves), strings.Count(buf.String(), "\n"))
	// strategies serialize by name
	assert.Contains(t, buf.String(), `"single-candidate"`)

	got, err := ReadMoveLog(&buf)
	require.NoError(t, err)
	assert.Equal(t, moves, got)
}
