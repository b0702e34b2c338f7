package format

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/stepdoku/stepdoku/puzzle"
)

/*

The move log

One JSON-encoded Move per line, appended as the solve proceeds.
The log is a faithful replayable record of a run: each line names
the strategy, the assignment or eliminations, and the reason.

*/

// A MoveLog appends moves to a writer, one JSON object per line.
type MoveLog struct {
	enc *json.Encoder
}

// NewMoveLog wraps a writer (typically a file opened for append).
func NewMoveLog(w io.Writer) *MoveLog {
	return &MoveLog{enc: json.NewEncoder(w)}
}

// Append writes one move.  json.Encoder terminates each value
// with a newline, which is exactly the log's line discipline.
func (l *MoveLog) Append(m *puzzle.Move) error {
	return l.enc.Encode(m)
}

// ReadMoveLog parses a move log back into its moves.
func ReadMoveLog(r io.Reader) ([]puzzle.Move, error) {
	var moves []puzzle.Move
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var m puzzle.Move
		if err := json.Unmarshal(line, &m); err != nil {
			return nil, fmt.Errorf("move %d: %w", len(moves)+1, err)
		}
		moves = append(moves, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return moves, nil
}
