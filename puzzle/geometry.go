package puzzle

/*

Puzzle geometry

The board is the classic 9x9 Sudoku square: 81 cells covered by
27 groups (9 rows, 9 columns, 9 boxes), with every cell a member
of exactly one group of each kind.  The group table is pure index
data derived from cell coordinates, so it is computed once and
shared by every board.

*/

import (
	"fmt"
)

// Geometry constants.  The side length is fixed; this engine does
// not generalize to other puzzle sizes.
const (
	sideLen   = 9
	boxLen    = 3
	cellCount = sideLen * sideLen  // 81
	kindCount = 3                  // rows, columns, boxes
	groupLen  = sideLen            // cells per group
	numGroups = sideLen * kindCount // 27
)

// A Location is a column/row coordinate pair, zero-based, each in
// the range 0 through 8.  Locations are value types compared by
// their coordinates.
type Location struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// index gives the board-order position of a location: column
// major, then row, so cells of one column are consecutive.
func (l Location) index() int {
	return l.Col*sideLen + l.Row
}

// locationAt is the inverse of index.
func locationAt(index int) Location {
	return Location{Col: index / sideLen, Row: index % sideLen}
}

// box gives the index of the 3x3 box containing a location.
// Boxes are numbered in board order: down each band of columns,
// then across.
func (l Location) box() int {
	return (l.Col/boxLen)*boxLen + l.Row/boxLen
}

// inRange reports whether both coordinates are on the board.
func (l Location) inRange() bool {
	return l.Col >= 0 && l.Col < sideLen && l.Row >= 0 && l.Row < sideLen
}

// Locations implement Stringer.
func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.Col, l.Row)
}

/*

Group identity

*/

// A GroupKind tags the three kinds of constraint group.  It is an
// enumeration compared structurally, never derived from name
// text.
type GroupKind int

// Constants for the group kinds.
const (
	Row GroupKind = iota
	Column
	Box
)

// GroupKinds implement Stringer.
func (k GroupKind) String() string {
	switch k {
	case Row:
		return "row"
	case Column:
		return "column"
	case Box:
		return "box"
	}
	return "<group>"
}

// A GroupID names one of the 27 groups.  Indexes are zero-based,
// matching Location coordinates: row r holds the cells with Row
// == r, column c the cells with Col == c, and box b is numbered
// in board order.
type GroupID struct {
	Kind  GroupKind `json:"kind"`
	Index int       `json:"index"`
}

// Group IDs implement Stringer.
func (id GroupID) String() string {
	return fmt.Sprintf("%s %d", id.Kind, id.Index)
}

/*

The group table

*/

// A group is a descriptor for one constraint unit: its identity
// and the board-order indices of its nine member cells.  Groups
// hold no puzzle state of their own; all cell state lives in the
// board arena, and groups read it through the board.
type group struct {
	id      GroupID
	members [groupLen]int
}

// groupTable is the shared descriptor arena.  Rows occupy slots 0
// through 8, columns 9 through 17, boxes 18 through 26.
var groupTable = computeGroupTable()

const (
	rowBase    = 0
	columnBase = sideLen
	boxBase    = 2 * sideLen
)

func computeGroupTable() [numGroups]group {
	var gs [numGroups]group
	for i := 0; i < sideLen; i++ {
		gs[rowBase+i].id = GroupID{Row, i}
		gs[columnBase+i].id = GroupID{Column, i}
		gs[boxBase+i].id = GroupID{Box, i}
	}
	for i := 0; i < cellCount; i++ {
		loc := locationAt(i)
		// member slots follow board order within each group
		gs[rowBase+loc.Row].members[loc.Col] = i
		gs[columnBase+loc.Col].members[loc.Row] = i
		bi := loc.box()
		bslot := (loc.Col%boxLen)*boxLen + loc.Row%boxLen
		gs[boxBase+bi].members[bslot] = i
	}
	return gs
}

// groupsOf gives the table indices of the three groups containing
// a location, in kind order: row, column, box.  Membership is
// derived from the coordinates, so it is fixed for the lifetime
// of every board.
func groupsOf(loc Location) [kindCount]int {
	return [kindCount]int{
		rowBase + loc.Row,
		columnBase + loc.Col,
		boxBase + loc.box(),
	}
}

// groupIndexOf gives the table index of the group of the stated
// kind containing a location.
func groupIndexOf(loc Location, kind GroupKind) int {
	switch kind {
	case Row:
		return rowBase + loc.Row
	case Column:
		return columnBase + loc.Col
	}
	return boxBase + loc.box()
}

// sameGroup reports whether two locations share at least one
// group.
func sameGroup(a, b Location) bool {
	return a.Row == b.Row || a.Col == b.Col || a.box() == b.box()
}
