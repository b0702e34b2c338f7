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

Contradictions

*/

// A Contradiction describes a constraint that became
// unsatisfiable.  It carries enough context (cell, group, digit)
// for a client to explain the failure to users; the Reason code
// supports localized messaging the same way a condition code
// would, with Error producing the English rendering.
//
// A Contradiction raised while mutating the canonical board is
// fatal to a solving run and propagates to the driver uncaught.
// Inside a speculative trial it is caught by the trial engine and
// converted into a classification; it never escapes the trial.
type Contradiction struct {
	Reason ContradictionReason `json:"reason"`
	Cell   *Location           `json:"cell,omitempty"`
	Group  *GroupID            `json:"group,omitempty"`
	Digit  int                 `json:"digit,omitempty"`
}

// A ContradictionReason is the predicate that the cell or group
// failed to satisfy.
type ContradictionReason int

// Constants for the various contradiction reasons.
const (
	UnknownReason ContradictionReason = iota
	DigitOutOfRange
	CellAlreadyAssigned
	NotACandidate
	ForbidsAssignedDigit
	NoCandidatesLeft
	NoCellForDigit
	BothTrialsFail
	MaxReason
)

// Error produces an English, non-localized message for a
// Contradiction.
func (c *Contradiction) Error() string {
	cell := func() string {
		if c.Cell != nil {
			return c.Cell.String()
		}
		return "<unknown cell>"
	}
	group := func() string {
		if c.Group != nil {
			return c.Group.String()
		}
		return "<unknown group>"
	}
	switch c.Reason {
	case DigitOutOfRange:
		return fmt.Sprintf("digit %d is out of range 1 through 9", c.Digit)
	case CellAlreadyAssigned:
		return fmt.Sprintf("cell %s already has an assigned digit", cell())
	case NotACandidate:
		return fmt.Sprintf("digit %d is not a candidate of cell %s", c.Digit, cell())
	case ForbidsAssignedDigit:
		return fmt.Sprintf("%s forbids digit %d, which cell %s is already assigned",
			group(), c.Digit, cell())
	case NoCandidatesLeft:
		return fmt.Sprintf("cell %s has no remaining candidates", cell())
	case NoCellForDigit:
		return fmt.Sprintf("no cell in %s can contain %d", group(), c.Digit)
	case BothTrialsFail:
		return fmt.Sprintf("both candidates of cell %s lead to contradictions", cell())
	}
	return fmt.Sprintf("unknown contradiction at cell %s (digit %d)", cell(), c.Digit)
}

// cellContradiction builds a Contradiction scoped to one cell.
func cellContradiction(loc Location, digit int, reason ContradictionReason) *Contradiction {
	return &Contradiction{Reason: reason, Cell: &loc, Digit: digit}
}

// groupContradiction builds a Contradiction scoped to one group.
func groupContradiction(id GroupID, digit int, reason ContradictionReason) *Contradiction {
	return &Contradiction{Reason: reason, Group: &id, Digit: digit}
}

// propagationContradiction builds a Contradiction raised while a
// group propagated an assignment into one of its member cells.
func propagationContradiction(loc Location, id GroupID, digit int, reason ContradictionReason) *Contradiction {
	return &Contradiction{Reason: reason, Cell: &loc, Group: &id, Digit: digit}
}
