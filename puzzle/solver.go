// stepdoku - a stepwise Sudoku solver and teaching tool.
// Copyright (C) 2026 the stepdoku authors.
//
// Use of this source code is governed by the MIT license
// found in the LICENSE file.

// Package puzzle provides the stepwise Sudoku deduction engine:
// a 9x9 board model with incrementally maintained candidate sets,
// and a solver that finds one logically justified move at a time.
//
// Cells are designated by zero-based (column,row) Locations and
// either carry an assigned digit or a non-empty set of candidate
// digits.  Every cell belongs to exactly three groups (its row,
// its column, and its 3x3 box); assigning a digit removes it from
// the candidates of every other member of those groups, and that
// propagation is the only mechanism by which group exclusivity is
// maintained.
//
// The solver tries its deduction strategies in a fixed priority
// order, from trivial single-candidate detection up to bounded
// speculative branching, and returns control to the caller after
// each move so an external driver can record it, render the
// board, and decide whether to continue.  An unsatisfiable state
// surfaces as a *Contradiction error.
package puzzle

import (
	"encoding/json"
	"fmt"
)

/*

Strategies

*/

// A Strategy identifies one deduction rule in the solver
// pipeline.  The declaration order is the pipeline priority
// order.
type Strategy int

// Constants for the strategies, cheapest first.
const (
	SingleCandidate Strategy = iota
	HiddenSingle
	NakedSubset
	CrossGroup
	TwoLine
	ThreeLine
	TripletPivot
	Speculation
	numStrategies
)

// strategyNames are the wire and configuration names of the
// strategies.
var strategyNames = map[Strategy]string{
	SingleCandidate: "single-candidate",
	HiddenSingle:    "hidden-single",
	NakedSubset:     "naked-subset",
	CrossGroup:      "cross-group",
	TwoLine:         "two-line",
	ThreeLine:       "three-line",
	TripletPivot:    "triplet-pivot",
	Speculation:     "speculation",
}

// Strategies implement Stringer.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("strategy-%d", int(s))
}

// ParseStrategy maps a configuration name back to its Strategy.
func ParseStrategy(name string) (Strategy, bool) {
	for s, n := range strategyNames {
		if n == name {
			return s, true
		}
	}
	return 0, false
}

// Strategies serialize by name so move logs stay readable.
func (s Strategy) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Strategy) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, ok := ParseStrategy(name)
	if !ok {
		return fmt.Errorf("unknown strategy %q", name)
	}
	*s = parsed
	return nil
}

// A StrategySet is the set of strategies a solver may use,
// represented as a bitmask over Strategy values.
type StrategySet uint16

// Has reports whether the set includes the strategy.
func (ss StrategySet) Has(s Strategy) bool {
	return ss&(1<<uint(s)) != 0
}

// Add returns the set with the strategy included.
func (ss StrategySet) Add(s Strategy) StrategySet {
	return ss | 1<<uint(s)
}

// Without returns the set with the strategy excluded.
func (ss StrategySet) Without(s Strategy) StrategySet {
	return ss &^ (1 << uint(s))
}

// Predefined strategy sets.  Deterministic is everything except
// speculative branching; it is what trial solvers run with.
var (
	AllStrategies           = StrategySet(1<<uint(numStrategies) - 1)
	DeterministicStrategies = AllStrategies.Without(Speculation)
)

/*

Moves

*/

// An Assignment records a digit committed to a cell.
type Assignment struct {
	Loc   Location `json:"loc"`
	Digit int      `json:"digit"`
}

// An Elimination records a candidate digit removed from a cell.
type Elimination struct {
	Loc   Location `json:"loc"`
	Digit int      `json:"digit"`
}

// A Move describes one solver step: either a single assignment or
// a batch of eliminations sharing one cause, with a
// human-readable justification.  For speculative moves,
// TrialMoves is the number of deterministic moves the contradicted
// branch needed to fail.
type Move struct {
	Strategy   Strategy      `json:"strategy"`
	Assigned   *Assignment   `json:"assigned,omitempty"`
	Removed    []Elimination `json:"removed,omitempty"`
	Reason     string        `json:"reason"`
	TrialMoves int           `json:"trialMoves,omitempty"`
}

// Moves implement Stringer for logs and terminal output.
func (m *Move) String() string {
	if m.Assigned != nil {
		return fmt.Sprintf("[%s] %s := %d - %s",
			m.Strategy, m.Assigned.Loc, m.Assigned.Digit, m.Reason)
	}
	return fmt.Sprintf("[%s] %d candidates removed - %s",
		m.Strategy, len(m.Removed), m.Reason)
}

/*

The solver

*/

// DefaultTrialCap is the move budget of one speculative trial.
const DefaultTrialCap = 50

// A Solver holds the canonical board and the enabled strategy
// set.  FindMove tries the enabled strategies in priority order
// and applies the first move found, mutating the board; the
// caller drives the loop and records the moves.
//
// The solver exclusively owns its board for the lifetime of a
// run.  Speculative trials never touch it: each trial clones the
// board and mutates only its own clone.
type Solver struct {
	board    *Board
	enabled  StrategySet
	trialCap int
}

// An Option adjusts a solver at construction.
type Option func(*Solver)

// WithStrategies restricts the solver to the given strategy set.
func WithStrategies(ss StrategySet) Option {
	return func(s *Solver) { s.enabled = ss }
}

// WithTrialCap overrides the speculative trial move budget.
func WithTrialCap(budget int) Option {
	return func(s *Solver) {
		if budget > 0 {
			s.trialCap = budget
		}
	}
}

// NewSolver returns a solver over the given board with every
// strategy enabled, subject to the options.
func NewSolver(b *Board, opts ...Option) *Solver {
	s := &Solver{
		board:    b,
		enabled:  AllStrategies,
		trialCap: DefaultTrialCap,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Board exposes the solver's board for querying and rendering.
func (s *Solver) Board() *Board {
	return s.board
}

// pipeline binds the strategies to their implementations in
// priority order.  Later strategies are not attempted once an
// earlier one produces a move or raises a Contradiction.
type pipelineEntry struct {
	strategy Strategy
	find     func(*Solver) (*Move, error)
}

var pipeline []pipelineEntry

func init() {
	pipeline = []pipelineEntry{
		{SingleCandidate, (*Solver).singleCandidate},
		{HiddenSingle, (*Solver).hiddenSingle},
		{NakedSubset, (*Solver).nakedSubset},
		{CrossGroup, (*Solver).crossGroup},
		{TwoLine, (*Solver).twoLine},
		{ThreeLine, (*Solver).threeLine},
		{TripletPivot, (*Solver).tripletPivot},
		{Speculation, (*Solver).speculate},
	}
}

// FindMove finds and applies the next logically justified move,
// returning its description.  A nil move with a nil error means
// no enabled strategy produced a move: the board is either solved
// (check IsSolved) or stalled.  A *Contradiction error means the
// puzzle is unsatisfiable; the board keeps the deductions made
// before the failure was detected.
func (s *Solver) FindMove() (*Move, error) {
	if s.board.IsSolved() {
		return nil, nil
	}
	for _, entry := range pipeline {
		if !s.enabled.Has(entry.strategy) {
			continue
		}
		move, err := entry.find(s)
		if err != nil {
			return nil, err
		}
		if move != nil {
			return move, nil
		}
	}
	return nil, nil
}
