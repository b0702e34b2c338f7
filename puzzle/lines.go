package puzzle

/*

Deterministic deduction strategies, part 2: the cross-line
patterns.  These detect digits whose candidates collapse onto a
small shared set of coordinates across aligned lines (the
two-line and three-line patterns) or across linked candidate
pairs (the triplet pivot), and eliminate the implicated digit
outside the matched set.  A pattern that produces no actual
elimination is not a move; the scan continues.

*/

import (
	"fmt"
	"math/bits"
)

// lineBase gives the group-table base of lines of a kind.
func lineBase(kind GroupKind) int {
	if kind == Row {
		return rowBase
	}
	return columnBase
}

// crossOf gives the coordinate of a location along the crossing
// kind of line: the column for rows, the row for columns.
func crossOf(loc Location, kind GroupKind) int {
	if kind == Row {
		return loc.Col
	}
	return loc.Row
}

// lineKinds orders the two line scans; rows are searched before
// columns.
var lineKinds = [2]GroupKind{Row, Column}

/*

Two-line pattern

*/

// twoLine finds a digit admitted at exactly two coordinates in
// each of two parallel lines, with the coordinates matching.  The
// digit must occupy one matched coordinate in each line, so it is
// removed from the two crossing lines everywhere else.
func (s *Solver) twoLine() (*Move, error) {
	b := s.board
	for _, kind := range lineKinds {
		for d := 1; d <= sideLen; d++ {
			lines, masks := admittingMasks(b, kind, d, 2, 2)
			for i := 0; i < len(lines); i++ {
				for j := i + 1; j < len(lines); j++ {
					if masks[i] != masks[j] {
						continue
					}
					matched := []int{lines[i], lines[j]}
					move, err := s.eliminateAcross(kind, d, masks[i], matched,
						fmt.Sprintf("%d in %ss %d and %d occupies the same two crossing lines",
							d, kind, lines[i], lines[j]), TwoLine)
					if move != nil || err != nil {
						return move, err
					}
				}
			}
		}
	}
	return nil, nil
}

/*

Three-line pattern

*/

// threeLine extends the two-line pattern to three parallel lines
// whose admitting coordinates for a digit collapse onto three
// shared crossing lines.
func (s *Solver) threeLine() (*Move, error) {
	b := s.board
	for _, kind := range lineKinds {
		for d := 1; d <= sideLen; d++ {
			lines, masks := admittingMasks(b, kind, d, 2, 3)
			for i := 0; i < len(lines); i++ {
				for j := i + 1; j < len(lines); j++ {
					for k := j + 1; k < len(lines); k++ {
						union := masks[i] | masks[j] | masks[k]
						if bits.OnesCount16(union) != 3 {
							continue
						}
						matched := []int{lines[i], lines[j], lines[k]}
						move, err := s.eliminateAcross(kind, d, union, matched,
							fmt.Sprintf("%d in %ss %d, %d and %d collapses onto three crossing lines",
								d, kind, lines[i], lines[j], lines[k]), ThreeLine)
						if move != nil || err != nil {
							return move, err
						}
					}
				}
			}
		}
	}
	return nil, nil
}

// admittingMasks collects the lines of a kind in which the digit
// is unplaced and admitted by minCells through maxCells open
// cells, with each line's admitting coordinates as a bitmask of
// crossing-line indexes.
func admittingMasks(b *Board, kind GroupKind, d, minCells, maxCells int) (lines []int, masks []uint16) {
	base := lineBase(kind)
	for i := 0; i < sideLen; i++ {
		g := &groupTable[base+i]
		if g.hasValue(b, d) {
			continue
		}
		adm := g.admitting(b, d)
		if len(adm) < minCells || len(adm) > maxCells {
			continue
		}
		var mask uint16
		for _, mi := range adm {
			mask |= 1 << uint(crossOf(b.cells[mi].loc, kind))
		}
		lines = append(lines, i)
		masks = append(masks, mask)
	}
	return lines, masks
}

// eliminateAcross removes the digit from the crossing lines named
// by the coordinate mask, skipping cells that lie on the matched
// lines themselves.  Returns nil if the pattern eliminated
// nothing.
func (s *Solver) eliminateAcross(kind GroupKind, d int, coords uint16, matched []int, reason string, strategy Strategy) (*Move, error) {
	b := s.board
	crossKind := Column
	if kind == Column {
		crossKind = Row
	}
	onMatched := func(loc Location) bool {
		line := loc.Row
		if kind == Column {
			line = loc.Col
		}
		for _, m := range matched {
			if line == m {
				return true
			}
		}
		return false
	}
	var removed []Elimination
	for cc := 0; cc < sideLen; cc++ {
		if coords&(1<<uint(cc)) == 0 {
			continue
		}
		h := &groupTable[lineBase(crossKind)+cc]
		for _, mi := range h.open(b) {
			c := &b.cells[mi]
			if onMatched(c.loc) || !c.cands.Has(d) {
				continue
			}
			if err := b.Disallow(c.loc, d); err != nil {
				return nil, err
			}
			removed = append(removed, Elimination{c.loc, d})
		}
	}
	if len(removed) == 0 {
		return nil, nil
	}
	return &Move{Strategy: strategy, Removed: removed, Reason: reason}, nil
}

/*

Triplet pivot

*/

// tripletPivot finds a pivot cell with candidates {x,y} linked to
// two pincer cells {x,z} and {y,z}: whichever pivot candidate
// holds, one pincer becomes z, so z cannot survive in any cell
// that shares a group with both pincers.
func (s *Solver) tripletPivot() (*Move, error) {
	b := s.board
	var pairs []int
	for i := range b.cells {
		if b.cells[i].digit == 0 && b.cells[i].cands.Count() == 2 {
			pairs = append(pairs, i)
		}
	}
	for _, pi := range pairs {
		pivot := &b.cells[pi]
		for _, qi := range pairs {
			if qi == pi || !sameGroup(pivot.loc, b.cells[qi].loc) {
				continue
			}
			q := &b.cells[qi]
			shared := pivot.cands.Intersect(q.cands)
			if shared.Count() != 1 {
				continue
			}
			x := shared.Single()
			y := pivot.cands.Remove(x).Single()
			z := q.cands.Remove(x).Single()
			want := NewDigitSet(y, z)
			for _, ri := range pairs {
				if ri == pi || ri == qi {
					continue
				}
				r := &b.cells[ri]
				if r.cands != want || !sameGroup(pivot.loc, r.loc) {
					continue
				}
				var removed []Elimination
				for ci := range b.cells {
					c := &b.cells[ci]
					if ci == pi || ci == qi || ci == ri {
						continue
					}
					if c.digit != 0 || !c.cands.Has(z) {
						continue
					}
					if !sameGroup(c.loc, q.loc) || !sameGroup(c.loc, r.loc) {
						continue
					}
					if err := b.Disallow(c.loc, z); err != nil {
						return nil, err
					}
					removed = append(removed, Elimination{c.loc, z})
				}
				if len(removed) == 0 {
					continue
				}
				return &Move{
					Strategy: TripletPivot,
					Removed:  removed,
					Reason: fmt.Sprintf("pivot %s %s with pincers %s %s and %s %s forces %d out of their shared groups",
						pivot.loc, pivot.cands, q.loc, q.cands, r.loc, r.cands, z),
				}, nil
			}
		}
	}
	return nil, nil
}
