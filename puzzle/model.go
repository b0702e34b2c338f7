package puzzle

/*

Sudoku board representation

*/

import (
	"math/bits"
	"strconv"
)

/*

Digit sets

*/

// A DigitSet is a set of digits 1 through 9, represented as a
// fixed-width bitset (bit d set means digit d is present).  The
// zero value is the empty set.  Membership, union, intersection
// and size are all O(1), which matters because every deduction
// strategy manipulates candidate sets in its inner loops.
type DigitSet uint16

// allDigits has every bit 1 through 9 set.
const allDigits DigitSet = 0x3FE

// NewDigitSet builds a set from the given digits.  Digits outside
// 1 through 9 are ignored.
func NewDigitSet(digits ...int) DigitSet {
	var s DigitSet
	for _, d := range digits {
		if d >= 1 && d <= sideLen {
			s |= 1 << uint(d)
		}
	}
	return s
}

// FullDigitSet returns the set of all nine digits.
func FullDigitSet() DigitSet {
	return allDigits
}

// Has reports whether the set contains d.
func (s DigitSet) Has(d int) bool {
	return d >= 1 && d <= sideLen && s&(1<<uint(d)) != 0
}

// Add returns the set with d included.
func (s DigitSet) Add(d int) DigitSet {
	if d < 1 || d > sideLen {
		return s
	}
	return s | 1<<uint(d)
}

// Remove returns the set with d excluded.
func (s DigitSet) Remove(d int) DigitSet {
	return s &^ (1 << uint(d))
}

// Count gives the number of digits in the set.
func (s DigitSet) Count() int {
	return bits.OnesCount16(uint16(s))
}

// IsEmpty reports whether the set has no digits.
func (s DigitSet) IsEmpty() bool {
	return s == 0
}

// Single returns the set's only digit, or 0 if the set does not
// have exactly one digit.
func (s DigitSet) Single() int {
	if s.Count() != 1 {
		return 0
	}
	return bits.TrailingZeros16(uint16(s))
}

// Union returns the set of digits in either set.
func (s DigitSet) Union(t DigitSet) DigitSet {
	return s | t
}

// Intersect returns the set of digits in both sets.
func (s DigitSet) Intersect(t DigitSet) DigitSet {
	return s & t
}

// Minus returns the set of digits in s but not in t.
func (s DigitSet) Minus(t DigitSet) DigitSet {
	return s &^ t
}

// SubsetOf reports whether every digit of s is in t.
func (s DigitSet) SubsetOf(t DigitSet) bool {
	return s&^t == 0
}

// Digits returns the digits of the set in ascending order.
func (s DigitSet) Digits() []int {
	if s == 0 {
		return nil
	}
	ds := make([]int, 0, s.Count())
	for d := 1; d <= sideLen; d++ {
		if s.Has(d) {
			ds = append(ds, d)
		}
	}
	return ds
}

// Digit sets implement Stringer: "{1 3 7}".
func (s DigitSet) String() string {
	out := "{"
	for i, d := range s.Digits() {
		if i > 0 {
			out += " "
		}
		out += strconv.Itoa(d)
	}
	return out + "}"
}

/*

Cells

*/

// A cell is one puzzle position in the board arena.  It holds
// either an assigned digit (digit != 0, cands empty) or a
// non-empty candidate set (digit == 0).  An unassigned cell whose
// candidate set empties signals a Contradiction, never a valid
// terminal state; the mutation primitives below enforce that.
//
// Cells hold no group back-references: a cell's row, column and
// box follow from its coordinates (see groupsOf), which keeps the
// arena free of ownership cycles and makes boards copyable by
// value.
type cell struct {
	loc   Location
	digit int
	cands DigitSet
}

/*

Boards

*/

// A Board is the full puzzle: a flat arena of 81 cells in board
// order (column major, then row), constrained by the 27 shared
// group descriptors.  The digit-uniqueness invariant of every
// group is maintained incrementally by assignment propagation;
// there is no separate validation pass anywhere.
type Board struct {
	cells [cellCount]cell
}

// NewBoard returns an empty board: every cell unassigned with the
// full candidate set.  Boards are populated through Assign and
// RestrictCandidates, the same invariant-checked primitives the
// solver uses, so loading and solving share one code path.
func NewBoard() *Board {
	b := &Board{}
	for i := range b.cells {
		b.cells[i] = cell{loc: locationAt(i), cands: allDigits}
	}
	return b
}

// cellAt returns the arena cell for a location.  Callers must
// have validated the location.
func (b *Board) cellAt(loc Location) *cell {
	return &b.cells[loc.index()]
}

// Value returns the digit assigned at loc, or 0 if the cell is
// unassigned or the location is off the board.
func (b *Board) Value(loc Location) int {
	if !loc.inRange() {
		return 0
	}
	return b.cellAt(loc).digit
}

// Candidates returns the candidate set of the cell at loc.  An
// assigned cell (and an off-board location) has the empty set.
func (b *Board) Candidates(loc Location) DigitSet {
	if !loc.inRange() {
		return 0
	}
	return b.cellAt(loc).cands
}

// IsSolved reports whether every cell has an assigned digit.
// Because assignments propagate their exclusions incrementally,
// a fully assigned board is necessarily a valid solution.
func (b *Board) IsSolved() bool {
	for i := range b.cells {
		if b.cells[i].digit == 0 {
			return false
		}
	}
	return true
}

// OpenCells returns the locations of all unassigned cells in
// board order.
func (b *Board) OpenCells() []Location {
	var open []Location
	for i := range b.cells {
		if b.cells[i].digit == 0 {
			open = append(open, b.cells[i].loc)
		}
	}
	return open
}

// Clone returns a deep copy of the board.  The copy shares no
// mutable state with the original and diverges freely; the group
// table is invariant and always shared.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

/*

Mutation primitives

Assign and Disallow are the only two ways any caller, loader or
strategy mutates a cell.  Everything higher level is expressed in
terms of them plus read access to digits and candidate sets.

*/

// Assign gives an empty cell its digit and propagates the
// exclusion through the cell's row, column and box, removing the
// digit from the candidates of every other member.  That
// propagation is the sole mechanism by which group exclusivity is
// maintained.
//
// On a Contradiction the board is left in its last, partially
// propagated state so the deductions made before the failure
// remain visible for diagnosis.
func (b *Board) Assign(loc Location, digit int) error {
	if digit < 1 || digit > sideLen {
		return cellContradiction(loc, digit, DigitOutOfRange)
	}
	if !loc.inRange() {
		return cellContradiction(loc, digit, UnknownReason)
	}
	c := b.cellAt(loc)
	if c.digit != 0 {
		return cellContradiction(loc, digit, CellAlreadyAssigned)
	}
	if !c.cands.Has(digit) {
		return cellContradiction(loc, digit, NotACandidate)
	}
	c.digit = digit
	c.cands = 0
	for _, gi := range groupsOf(loc) {
		g := &groupTable[gi]
		for _, mi := range g.members {
			if mi == loc.index() {
				continue
			}
			if err := b.disallowIn(mi, digit, g.id); err != nil {
				return err
			}
		}
	}
	return nil
}

// Disallow removes a digit from the candidates of the cell at
// loc.  On an assigned cell it is a no-op unless the digit equals
// the assigned value, which is a Contradiction: a constraint
// cannot forbid a value already committed.  Emptying the
// candidate set is likewise a Contradiction.
func (b *Board) Disallow(loc Location, digit int) error {
	if digit < 1 || digit > sideLen {
		return cellContradiction(loc, digit, DigitOutOfRange)
	}
	if !loc.inRange() {
		return cellContradiction(loc, digit, UnknownReason)
	}
	c := b.cellAt(loc)
	if c.digit != 0 {
		if c.digit == digit {
			return cellContradiction(loc, digit, ForbidsAssignedDigit)
		}
		return nil
	}
	c.cands = c.cands.Remove(digit)
	if c.cands.IsEmpty() {
		return cellContradiction(loc, digit, NoCandidatesLeft)
	}
	return nil
}

// disallowIn is Disallow with the group on whose behalf the
// exclusion happens, so propagation failures name their source.
func (b *Board) disallowIn(index int, digit int, src GroupID) error {
	c := &b.cells[index]
	if c.digit != 0 {
		if c.digit == digit {
			return propagationContradiction(c.loc, src, digit, ForbidsAssignedDigit)
		}
		return nil
	}
	c.cands = c.cands.Remove(digit)
	if c.cands.IsEmpty() {
		return propagationContradiction(c.loc, src, digit, NoCandidatesLeft)
	}
	return nil
}

// RestrictCandidates intersects the candidate set of the cell at
// loc with the allowed set.  Loaders use it to restore checkpoint
// state; it applies the same invariant checks as Disallow.  On an
// assigned cell it is a no-op unless the allowed set excludes the
// assigned digit.
func (b *Board) RestrictCandidates(loc Location, allowed DigitSet) error {
	if !loc.inRange() {
		return cellContradiction(loc, 0, UnknownReason)
	}
	c := b.cellAt(loc)
	if c.digit != 0 {
		if !allowed.Has(c.digit) {
			return cellContradiction(loc, c.digit, ForbidsAssignedDigit)
		}
		return nil
	}
	c.cands = c.cands.Intersect(allowed)
	if c.cands.IsEmpty() {
		return cellContradiction(loc, 0, NoCandidatesLeft)
	}
	return nil
}

/*

Group views

Groups are stateless descriptors, so these accessors read the
cell arena on demand.

*/

// open returns the arena indices of the group's unassigned cells,
// in member order.
func (g *group) open(b *Board) []int {
	var out []int
	for _, mi := range g.members {
		if b.cells[mi].digit == 0 {
			out = append(out, mi)
		}
	}
	return out
}

// filled returns the arena indices of the group's assigned cells,
// in member order.
func (g *group) filled(b *Board) []int {
	var out []int
	for _, mi := range g.members {
		if b.cells[mi].digit != 0 {
			out = append(out, mi)
		}
	}
	return out
}

// hasValue reports whether any member cell is assigned the digit.
func (g *group) hasValue(b *Board, digit int) bool {
	for _, mi := range g.members {
		if b.cells[mi].digit == digit {
			return true
		}
	}
	return false
}

// admitting returns the arena indices of the group's open cells
// whose candidates include the digit, in member order.
func (g *group) admitting(b *Board, digit int) []int {
	var out []int
	for _, mi := range g.members {
		c := &b.cells[mi]
		if c.digit == 0 && c.cands.Has(digit) {
			out = append(out, mi)
		}
	}
	return out
}

// contains reports whether the arena index is a member of the
// group.
func (g *group) contains(index int) bool {
	for _, mi := range g.members {
		if mi == index {
			return true
		}
	}
	return false
}
