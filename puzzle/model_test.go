package puzzle

import (
	"reflect"
	"testing"
)

/*

Digit sets

*/

func TestDigitSetBasics(t *testing.T) {
	s := NewDigitSet(3, 7, 5)
	if !s.Has(3) || !s.Has(5) || !s.Has(7) {
		t.Errorf("set %v is missing digits it was built from", s)
	}
	if s.Has(1) || s.Has(9) {
		t.Errorf("set %v has digits it was not built from", s)
	}
	if s.Count() != 3 {
		t.Errorf("set %v: got count %d, expected 3", s, s.Count())
	}
	if got := s.Digits(); !reflect.DeepEqual(got, []int{3, 5, 7}) {
		t.Errorf("set digits: got %v, expected [3 5 7]", got)
	}
	if s.String() != "{3 5 7}" {
		t.Errorf("set string: got %q, expected {3 5 7}", s.String())
	}
	if FullDigitSet().Count() != 9 {
		t.Errorf("full set count: got %d", FullDigitSet().Count())
	}
	if NewDigitSet(0, 10, -4) != 0 {
		t.Errorf("out-of-range digits should be ignored")
	}
}

func TestDigitSetSingle(t *testing.T) {
	if d := NewDigitSet(5).Single(); d != 5 {
		t.Errorf("single of {5}: got %d", d)
	}
	if d := NewDigitSet(2, 5).Single(); d != 0 {
		t.Errorf("single of {2 5}: got %d, expected 0", d)
	}
	if d := DigitSet(0).Single(); d != 0 {
		t.Errorf("single of empty set: got %d, expected 0", d)
	}
}

func TestDigitSetAlgebra(t *testing.T) {
	a, b := NewDigitSet(1, 2, 3), NewDigitSet(2, 3, 4)
	if got := a.Union(b); got != NewDigitSet(1, 2, 3, 4) {
		t.Errorf("union: got %v", got)
	}
	if got := a.Intersect(b); got != NewDigitSet(2, 3) {
		t.Errorf("intersect: got %v", got)
	}
	if got := a.Minus(b); got != NewDigitSet(1) {
		t.Errorf("minus: got %v", got)
	}
	if !NewDigitSet(2, 3).SubsetOf(a) || a.SubsetOf(b) {
		t.Errorf("subset relations are wrong")
	}
	if got := a.Remove(2).Add(9); got != NewDigitSet(1, 3, 9) {
		t.Errorf("remove/add: got %v", got)
	}
}

/*

Geometry

*/

func TestLocationOrder(t *testing.T) {
	// board order is column major, then row
	if loc := locationAt(0); loc != (Location{0, 0}) {
		t.Errorf("index 0: got %v", loc)
	}
	if loc := locationAt(1); loc != (Location{Col: 0, Row: 1}) {
		t.Errorf("index 1: got %v, expected (0,1)", loc)
	}
	if loc := locationAt(9); loc != (Location{Col: 1, Row: 0}) {
		t.Errorf("index 9: got %v, expected (1,0)", loc)
	}
	for i := 0; i < cellCount; i++ {
		if got := locationAt(i).index(); got != i {
			t.Fatalf("index round trip failed at %d: got %d", i, got)
		}
	}
}

func TestGroupTable(t *testing.T) {
	// every cell is a member of exactly one group of each kind
	for i := 0; i < cellCount; i++ {
		loc := locationAt(i)
		gis := groupsOf(loc)
		kinds := [kindCount]GroupKind{Row, Column, Box}
		for k, gi := range gis {
			g := &groupTable[gi]
			if g.id.Kind != kinds[k] {
				t.Errorf("cell %v group %d: got kind %v, expected %v",
					loc, k, g.id.Kind, kinds[k])
			}
			if !g.contains(i) {
				t.Errorf("cell %v not a member of its %v", loc, g.id)
			}
		}
	}
	// every group has exactly nine members
	for gi := range groupTable {
		seen := make(map[int]bool)
		for _, mi := range groupTable[gi].members {
			seen[mi] = true
		}
		if len(seen) != groupLen {
			t.Errorf("%v has %d distinct members", groupTable[gi].id, len(seen))
		}
	}
}

/*

Board primitives

*/

func TestNewBoard(t *testing.T) {
	b := NewBoard()
	if b.IsSolved() {
		t.Errorf("empty board reports solved")
	}
	for i := 0; i < cellCount; i++ {
		loc := locationAt(i)
		if b.Value(loc) != 0 {
			t.Errorf("cell %v of empty board has value %d", loc, b.Value(loc))
		}
		if b.Candidates(loc) != FullDigitSet() {
			t.Errorf("cell %v of empty board has candidates %v", loc, b.Candidates(loc))
		}
	}
	if got := len(b.OpenCells()); got != cellCount {
		t.Errorf("empty board has %d open cells", got)
	}
}

func TestAssignPropagates(t *testing.T) {
	b := NewBoard()
	loc := Location{Col: 4, Row: 4}
	if err := b.Assign(loc, 7); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if b.Value(loc) != 7 {
		t.Errorf("assigned cell: got value %d", b.Value(loc))
	}
	if !b.Candidates(loc).IsEmpty() {
		t.Errorf("assigned cell kept candidates %v", b.Candidates(loc))
	}
	// every other member of the three containing groups lost 7
	for _, gi := range groupsOf(loc) {
		g := &groupTable[gi]
		for _, mi := range g.members {
			if mi == loc.index() {
				continue
			}
			if b.cells[mi].cands.Has(7) {
				t.Errorf("cell %v in %v still admits 7", b.cells[mi].loc, g.id)
			}
		}
	}
	// an unrelated cell is untouched
	if got := b.Candidates(Location{Col: 0, Row: 0}); got != FullDigitSet() {
		t.Errorf("unrelated cell has candidates %v", got)
	}
}

func TestAssignMisuse(t *testing.T) {
	b := NewBoard()
	loc := Location{Col: 2, Row: 3}
	if err := b.Assign(loc, 0); err == nil {
		t.Errorf("assign of 0 succeeded")
	}
	if err := b.Assign(loc, 10); err == nil {
		t.Errorf("assign of 10 succeeded")
	}
	if err := b.Assign(loc, 5); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if err := b.Assign(loc, 6); err == nil {
		t.Errorf("second assign to the same cell succeeded")
	}
	// assigning a digit excluded by an earlier restriction
	other := Location{Col: 6, Row: 6}
	if err := b.RestrictCandidates(other, NewDigitSet(1, 2)); err != nil {
		t.Fatalf("restrict failed: %v", err)
	}
	err := b.Assign(other, 9)
	if err == nil {
		t.Fatalf("assign of a non-candidate succeeded")
	}
	if c, ok := err.(*Contradiction); !ok || c.Reason != NotACandidate {
		t.Errorf("got error %v, expected a NotACandidate contradiction", err)
	}
}

func TestDisallowSemantics(t *testing.T) {
	b := NewBoard()
	loc := Location{Col: 1, Row: 1}
	if err := b.Assign(loc, 8); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	// disallowing a different digit on an assigned cell is a no-op
	if err := b.Disallow(loc, 3); err != nil {
		t.Errorf("disallow of a different digit errored: %v", err)
	}
	// disallowing the assigned digit is a contradiction
	err := b.Disallow(loc, 8)
	if err == nil {
		t.Fatalf("disallow of the assigned digit succeeded")
	}
	if c, ok := err.(*Contradiction); !ok || c.Reason != ForbidsAssignedDigit {
		t.Errorf("got error %v, expected a ForbidsAssignedDigit contradiction", err)
	}
	// removing the last candidate is a contradiction
	open := Location{Col: 5, Row: 5}
	if err := b.RestrictCandidates(open, NewDigitSet(2)); err != nil {
		t.Fatalf("restrict failed: %v", err)
	}
	err = b.Disallow(open, 2)
	if err == nil {
		t.Fatalf("emptying a candidate set succeeded")
	}
	if c, ok := err.(*Contradiction); !ok || c.Reason != NoCandidatesLeft {
		t.Errorf("got error %v, expected a NoCandidatesLeft contradiction", err)
	}
}

func TestRestrictCandidates(t *testing.T) {
	b := NewBoard()
	loc := Location{Col: 3, Row: 7}
	if err := b.RestrictCandidates(loc, NewDigitSet(1, 3, 7)); err != nil {
		t.Fatalf("restrict failed: %v", err)
	}
	if got := b.Candidates(loc); got != NewDigitSet(1, 3, 7) {
		t.Errorf("candidates after restrict: got %v", got)
	}
	// narrowing further intersects
	if err := b.RestrictCandidates(loc, NewDigitSet(3, 7, 9)); err != nil {
		t.Fatalf("second restrict failed: %v", err)
	}
	if got := b.Candidates(loc); got != NewDigitSet(3, 7) {
		t.Errorf("candidates after second restrict: got %v", got)
	}
	// a disjoint restriction empties the set
	if err := b.RestrictCandidates(loc, NewDigitSet(1)); err == nil {
		t.Errorf("disjoint restrict succeeded")
	}
	// restricting an assigned cell
	fixed := Location{Col: 0, Row: 0}
	if err := b.Assign(fixed, 4); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if err := b.RestrictCandidates(fixed, NewDigitSet(1, 4)); err != nil {
		t.Errorf("compatible restrict of an assigned cell errored: %v", err)
	}
	if err := b.RestrictCandidates(fixed, NewDigitSet(1, 2)); err == nil {
		t.Errorf("restrict excluding the assigned digit succeeded")
	}
}

func TestOpenCellsOrder(t *testing.T) {
	b := NewBoard()
	if err := b.Assign(Location{Col: 0, Row: 0}, 1); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	open := b.OpenCells()
	if len(open) != cellCount-1 {
		t.Fatalf("got %d open cells", len(open))
	}
	if open[0] != (Location{Col: 0, Row: 1}) {
		t.Errorf("first open cell: got %v, expected (0,1)", open[0])
	}
	if open[8] != (Location{Col: 1, Row: 0}) {
		t.Errorf("ninth open cell: got %v, expected (1,0)", open[8])
	}
}

/*

Cloning

*/

func TestCloneFidelityAndIndependence(t *testing.T) {
	b := NewBoard()
	if err := b.Assign(Location{Col: 2, Row: 2}, 6); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if err := b.RestrictCandidates(Location{Col: 8, Row: 8}, NewDigitSet(1, 9)); err != nil {
		t.Fatalf("restrict failed: %v", err)
	}

	c := b.Clone()
	for i := 0; i < cellCount; i++ {
		loc := locationAt(i)
		if b.Value(loc) != c.Value(loc) || b.Candidates(loc) != c.Candidates(loc) {
			t.Fatalf("clone differs at %v: (%d,%v) vs (%d,%v)", loc,
				b.Value(loc), b.Candidates(loc), c.Value(loc), c.Candidates(loc))
		}
	}

	// mutating the clone never changes the original
	if err := c.Assign(Location{Col: 4, Row: 0}, 3); err != nil {
		t.Fatalf("clone assign failed: %v", err)
	}
	if b.Value(Location{Col: 4, Row: 0}) != 0 {
		t.Errorf("mutating the clone changed the original's values")
	}
	if got := b.Candidates(Location{Col: 4, Row: 5}); got != FullDigitSet() {
		t.Errorf("mutating the clone changed the original's candidates: %v", got)
	}
}

/*

Group invariants

*/

func TestGroupUniquenessMaintained(t *testing.T) {
	// a second placement of a digit in a group is rejected during
	// propagation, not by a validation pass
	b := NewBoard()
	if err := b.Assign(Location{Col: 0, Row: 0}, 5); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	err := b.Assign(Location{Col: 7, Row: 0}, 5)
	if err == nil {
		t.Fatalf("duplicate digit in a row was accepted")
	}
	if _, ok := err.(*Contradiction); !ok {
		t.Errorf("got error %v, expected a Contradiction", err)
	}
}

func TestBoardArt(t *testing.T) {
	b := NewBoard()
	if err := b.Assign(Location{Col: 0, Row: 0}, 9); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	plain := b.String()
	if len(plain) == 0 {
		t.Fatalf("empty art")
	}
	hinted := b.Art(true)
	if plain == hinted {
		// the propagation left no narrow cells, so the two forms
		// can legitimately match; just make sure both render
		t.Logf("plain and hinted forms match")
	}
}
