package pawnpad

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds  = errors.New("position out of bounds")
	ErrInvalidState = errors.New("view not initialized")
	ErrEmptyHistory = errors.New("nothing to undo")
)

// Position is a cursor location: Line is 1-based, Column is 0-based and
// counted in runes.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d.%d", p.Line, p.Column)
}

func comparePositions(a, b Position) int {
	switch {
	case a.Line < b.Line:
		return -1
	case a.Line > b.Line:
		return 1
	case a.Column < b.Column:
		return -1
	case a.Column > b.Column:
		return 1
	}
	return 0
}

// Before reports whether p comes strictly before o in document order.
func (p Position) Before(o Position) bool {
	return comparePositions(p, o) < 0
}

const (
	EditorActionType_Insert = iota + 1
	EditorActionType_Delete
	EditorActionType_Replace
)

// EditorAction is one undoable edit. Data is the inserted or removed text,
// Start where it was inserted or removed, and Cursor the cursor before it.
// A replace inserted Data in place of Removed.
type EditorAction struct {
	Type    int
	Start   Position
	Data    string
	Removed string
	Cursor  Position
}

// Change is the payload of a ContentChanged notification.
type Change struct {
	Version  uint64
	Start    Position
	End      Position // end of the affected range after the edit
	Inserted string
	Deleted  string
}

// endOf returns the position right after text when inserted at start.
func endOf(start Position, text []rune) Position {
	end := start
	for _, r := range text {
		if r == '\n' {
			end.Line++
			end.Column = 0
			continue
		}
		end.Column++
	}
	return end
}

// shiftAfterInsert moves p the way a right-gravity mark moves when text is
// inserted at start and now ends at end.
func shiftAfterInsert(p, start, end Position) Position {
	if p.Before(start) {
		return p
	}
	if p.Line == start.Line {
		return Position{Line: end.Line, Column: end.Column + p.Column - start.Column}
	}
	p.Line += end.Line - start.Line
	return p
}

// shiftAfterDelete moves p for the removal of [start, end).
func shiftAfterDelete(p, start, end Position) Position {
	switch {
	case !start.Before(p):
		return p
	case !end.Before(p):
		return start
	case p.Line == end.Line:
		return Position{Line: start.Line, Column: start.Column + p.Column - end.Column}
	}
	p.Line -= end.Line - start.Line
	return p
}
