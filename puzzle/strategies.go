package puzzle

/*

Deterministic deduction strategies, part 1: the single-group
rules.  Each strategy scans the board in a fixed order (cells in
board order, groups rows first, digits ascending) and applies the
first deduction it finds, so repeated runs over equal boards make
identical moves.

*/

import (
	"fmt"
)

/*

Single candidate

*/

// singleCandidate assigns any open cell whose candidate set has
// narrowed to exactly one digit.
func (s *Solver) singleCandidate() (*Move, error) {
	b := s.board
	for i := range b.cells {
		c := &b.cells[i]
		if c.digit != 0 {
			continue
		}
		d := c.cands.Single()
		if d == 0 {
			continue
		}
		loc := c.loc
		if err := b.Assign(loc, d); err != nil {
			return nil, err
		}
		return &Move{
			Strategy: SingleCandidate,
			Assigned: &Assignment{loc, d},
			Reason:   fmt.Sprintf("%d is the only candidate left in cell %s", d, loc),
		}, nil
	}
	return nil, nil
}

/*

Hidden single

*/

// hiddenSingle assigns a digit to the only open cell of a group
// that still admits it.  A digit with no admitting cell in a
// group that lacks it makes the puzzle unsatisfiable.
func (s *Solver) hiddenSingle() (*Move, error) {
	b := s.board
	for gi := range groupTable {
		g := &groupTable[gi]
		for d := 1; d <= sideLen; d++ {
			if g.hasValue(b, d) {
				continue
			}
			adm := g.admitting(b, d)
			switch len(adm) {
			case 0:
				return nil, groupContradiction(g.id, d, NoCellForDigit)
			case 1:
				loc := b.cells[adm[0]].loc
				if err := b.Assign(loc, d); err != nil {
					return nil, err
				}
				return &Move{
					Strategy: HiddenSingle,
					Assigned: &Assignment{loc, d},
					Reason: fmt.Sprintf("cell %s is the only place for %d in %s",
						loc, d, g.id),
				}, nil
			}
		}
	}
	return nil, nil
}

/*

Naked subsets

*/

// nakedSubset scans every group for a set of N open cells (2 <= N
// <= 6) whose combined candidates number exactly N, and removes
// those digits from the group's other open cells.  The first
// (group, size, subset) triple with a non-empty elimination wins.
func (s *Solver) nakedSubset() (*Move, error) {
	for gi := range groupTable {
		if move, err := s.nakedSubsetInGroup(gi); move != nil || err != nil {
			return move, err
		}
	}
	return nil, nil
}

// nakedSubsetInGroup runs the naked-subset search over one group.
func (s *Solver) nakedSubsetInGroup(gi int) (*Move, error) {
	b := s.board
	g := &groupTable[gi]
	open := g.open(b)
	var openDigits DigitSet
	for _, mi := range open {
		openDigits = openDigits.Union(b.cells[mi].cands)
	}
	for size := 2; size <= 6; size++ {
		// a subset as big as the open cell list leaves nothing to
		// eliminate from
		if size >= len(open) {
			break
		}
		for subset := DigitSet(1); subset <= allDigits; subset++ {
			if subset.Count() != size || !subset.SubsetOf(openDigits) {
				continue
			}
			inside := 0
			for _, mi := range open {
				if b.cells[mi].cands.SubsetOf(subset) {
					inside++
				}
			}
			if inside != size {
				continue
			}
			var removed []Elimination
			for _, mi := range open {
				c := &b.cells[mi]
				if c.cands.SubsetOf(subset) {
					continue
				}
				for _, d := range c.cands.Intersect(subset).Digits() {
					if err := b.Disallow(c.loc, d); err != nil {
						return nil, err
					}
					removed = append(removed, Elimination{c.loc, d})
				}
			}
			if len(removed) == 0 {
				continue
			}
			return &Move{
				Strategy: NakedSubset,
				Removed:  removed,
				Reason: fmt.Sprintf("%d cells of %s share the candidates %s",
					size, g.id, subset),
			}, nil
		}
	}
	return nil, nil
}

/*

Cross-group elimination

*/

// otherKinds gives the two group kinds a cell belongs to besides
// the given one, in kind order.
func otherKinds(k GroupKind) [2]GroupKind {
	switch k {
	case Row:
		return [2]GroupKind{Column, Box}
	case Column:
		return [2]GroupKind{Row, Box}
	}
	return [2]GroupKind{Row, Column}
}

// crossGroup finds a digit whose admitting cells within one group
// all funnel into a single group of another kind, and removes the
// digit from that cross group's cells outside the original group.
// The classic instances are box/line pointing and claiming.
func (s *Solver) crossGroup() (*Move, error) {
	b := s.board
	for gi := range groupTable {
		g := &groupTable[gi]
		for d := 1; d <= sideLen; d++ {
			if g.hasValue(b, d) {
				continue
			}
			adm := g.admitting(b, d)
			// zero admitting cells is hidden-single territory; one
			// cell trivially funnels but eliminates nothing new
			if len(adm) < 2 {
				continue
			}
			for _, kind := range otherKinds(g.id.Kind) {
				cross := groupIndexOf(b.cells[adm[0]].loc, kind)
				funnels := true
				for _, mi := range adm[1:] {
					if groupIndexOf(b.cells[mi].loc, kind) != cross {
						funnels = false
						break
					}
				}
				if !funnels {
					continue
				}
				h := &groupTable[cross]
				var removed []Elimination
				for _, mi := range h.open(b) {
					if g.contains(mi) {
						continue
					}
					c := &b.cells[mi]
					if !c.cands.Has(d) {
						continue
					}
					if err := b.Disallow(c.loc, d); err != nil {
						return nil, err
					}
					removed = append(removed, Elimination{c.loc, d})
				}
				if len(removed) == 0 {
					continue
				}
				return &Move{
					Strategy: CrossGroup,
					Removed:  removed,
					Reason: fmt.Sprintf("in %s, %d is confined to %s",
						g.id, d, h.id),
				}, nil
			}
		}
	}
	return nil, nil
}
