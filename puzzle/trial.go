// stepdoku - a stepwise Sudoku solver and teaching tool.
// Copyright (C) 2026 the stepdoku authors.
//
// Use of this source code is governed by the MIT license
// found in the LICENSE file.

package puzzle

/*

Speculative branching

The last-resort strategy.  For every open cell with exactly two
candidates, each candidate is tried on a disposable clone of the
board, running the deterministic pipeline up to a fixed move cap.
A branch either runs into a Contradiction (which proves the other
candidate) or stays inconclusive; solving the clone outright is
deliberately NOT treated as proof, because a puzzle with multiple
solutions could then be "decided" both ways.  The cell whose
contradicted branch failed fastest gives the most confident
deduction, so that one is committed.

*/

import (
	"fmt"
	"sync"
)

// A trialOutcome classifies one speculative branch.
type trialOutcome int

const (
	// trialInconclusive: the move cap ran out, the pipeline
	// stalled, or the clone reached a full solution, all without
	// contradiction.
	trialInconclusive trialOutcome = iota
	// trialContradicted: a Contradiction surfaced within the cap.
	trialContradicted
)

// runTrial seeds a clone of the board with one hypothesis digit
// and drives a nested deterministic solver until contradiction,
// stall, or the move cap.  The returned count is the number of
// moves taken to reach a contradiction (the failing move
// included); it is meaningless for inconclusive outcomes.
//
// The clone is owned exclusively by this trial and discarded on
// return, so trials are safe to run concurrently.
func (s *Solver) runTrial(loc Location, digit int) (trialOutcome, int) {
	clone := s.board.Clone()
	if err := clone.Assign(loc, digit); err != nil {
		// the hypothesis itself is untenable
		return trialContradicted, 0
	}
	nested := &Solver{
		board:    clone,
		enabled:  s.enabled.Without(Speculation), // never speculate recursively
		trialCap: s.trialCap,
	}
	for n := 1; n <= s.trialCap; n++ {
		move, err := nested.FindMove()
		if err != nil {
			return trialContradicted, n
		}
		if move == nil {
			return trialInconclusive, n - 1
		}
	}
	return trialInconclusive, s.trialCap
}

// A decision is a committed speculative deduction: the hypothesis
// digit that survived, and how quickly its sibling failed.
type decision struct {
	loc        Location
	digit      int
	failed     int // the contradicted hypothesis
	trialMoves int
}

// speculate tries both candidates of every two-candidate open
// cell and commits the digit whose sibling hypothesis was
// contradicted.  Both hypotheses failing means the puzzle itself
// is unsatisfiable.  Among all deciding cells the one whose
// contradicted branch failed in the fewest moves wins, ties going
// to board order.
func (s *Solver) speculate() (*Move, error) {
	b := s.board
	var best *decision
	for i := range b.cells {
		c := &b.cells[i]
		if c.digit != 0 || c.cands.Count() != 2 {
			continue
		}
		loc := c.loc
		digits := c.cands.Digits()

		// the two branches are independent: each mutates only its
		// own clone, and the results merge in fixed slots
		var outcomes [2]trialOutcome
		var counts [2]int
		var wg sync.WaitGroup
		for k := 0; k < 2; k++ {
			wg.Add(1)
			go func(k int) {
				defer wg.Done()
				outcomes[k], counts[k] = s.runTrial(loc, digits[k])
			}(k)
		}
		wg.Wait()

		c0 := outcomes[0] == trialContradicted
		c1 := outcomes[1] == trialContradicted
		switch {
		case c0 && c1:
			return nil, cellContradiction(loc, 0, BothTrialsFail)
		case c0:
			if best == nil || counts[0] < best.trialMoves {
				best = &decision{loc, digits[1], digits[0], counts[0]}
			}
		case c1:
			if best == nil || counts[1] < best.trialMoves {
				best = &decision{loc, digits[0], digits[1], counts[1]}
			}
		}
	}
	if best == nil {
		return nil, nil
	}
	if err := b.Assign(best.loc, best.digit); err != nil {
		return nil, err
	}
	return &Move{
		Strategy:   Speculation,
		Assigned:   &Assignment{best.loc, best.digit},
		TrialMoves: best.trialMoves,
		Reason: fmt.Sprintf("trying %d in cell %s contradicts after %d moves, so %d holds",
			best.failed, best.loc, best.trialMoves, best.digit),
	}, nil
}
