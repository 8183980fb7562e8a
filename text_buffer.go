package pawnpad

import (
	"fmt"
	"strings"
)

const defaultHistoryLimit = 1000

// TextBuffer owns the document: its lines, the cursor and the undo history.
// It is the only mutable state of the editor core; every successful mutation
// notifies the ContentChanged observers exactly once, before returning.
type TextBuffer struct {
	lines   [][]rune
	cursor  Position
	version uint64

	UndoStack *Stack[EditorAction]

	contentObservers []func(Change)
	cursorObservers  []func(Position)
}

func NewTextBuffer(text string, historyLimit int) *TextBuffer {
	if historyLimit <= 0 {
		historyLimit = defaultHistoryLimit
	}
	return &TextBuffer{
		lines:     splitLines([]rune(normalizeNewlines(text))),
		cursor:    Position{Line: 1, Column: 0},
		UndoStack: NewStack[EditorAction](historyLimit),
	}
}

func normalizeNewlines(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}

func splitLines(text []rune) [][]rune {
	lines := [][]rune{{}}
	for _, r := range text {
		if r == '\n' {
			lines = append(lines, []rune{})
			continue
		}
		lines[len(lines)-1] = append(lines[len(lines)-1], r)
	}
	return lines
}

// OnContentChanged registers fn to run after every successful mutation.
func (b *TextBuffer) OnContentChanged(fn func(Change)) {
	b.contentObservers = append(b.contentObservers, fn)
}

// OnCursorMoved registers fn to run when SetCursor moves the cursor.
func (b *TextBuffer) OnCursorMoved(fn func(Position)) {
	b.cursorObservers = append(b.cursorObservers, fn)
}

func (b *TextBuffer) notify(c Change) {
	b.version++
	c.Version = b.version
	for _, fn := range b.contentObservers {
		fn(c)
	}
}

func (b *TextBuffer) Version() uint64 { return b.version }

func (b *TextBuffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// SetText replaces the whole document, moves the cursor to the start and
// forgets the undo history.
func (b *TextBuffer) SetText(text string) {
	old := b.Text()
	runes := []rune(normalizeNewlines(text))
	b.lines = splitLines(runes)
	b.cursor = Position{Line: 1, Column: 0}
	b.UndoStack.Clear()
	b.notify(Change{
		Start:    Position{Line: 1, Column: 0},
		End:      b.End(),
		Inserted: string(runes),
		Deleted:  old,
	})
}

func (b *TextBuffer) LineCount() int { return len(b.lines) }

func (b *TextBuffer) LineLength(line int) (int, error) {
	if line < 1 || line > len(b.lines) {
		return 0, fmt.Errorf("%w: line %d of %d", ErrOutOfBounds, line, len(b.lines))
	}
	return len(b.lines[line-1]), nil
}

func (b *TextBuffer) Line(line int) (string, error) {
	if line < 1 || line > len(b.lines) {
		return "", fmt.Errorf("%w: line %d of %d", ErrOutOfBounds, line, len(b.lines))
	}
	return string(b.lines[line-1]), nil
}

// End is the position after the last rune of the document.
func (b *TextBuffer) End() Position {
	return Position{Line: len(b.lines), Column: len(b.lines[len(b.lines)-1])}
}

func (b *TextBuffer) validate(p Position) error {
	if p.Line < 1 || p.Line > len(b.lines) || p.Column < 0 || p.Column > len(b.lines[p.Line-1]) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	return nil
}

func (b *TextBuffer) validateRange(start, end Position) error {
	if err := b.validate(start); err != nil {
		return err
	}
	if err := b.validate(end); err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("%w: range %s-%s is reversed", ErrOutOfBounds, start, end)
	}
	return nil
}

func (b *TextBuffer) clamp(p Position) Position {
	if p.Line < 1 {
		p.Line = 1
	}
	if p.Line > len(b.lines) {
		p.Line = len(b.lines)
	}
	if p.Column < 0 {
		p.Column = 0
	}
	if n := len(b.lines[p.Line-1]); p.Column > n {
		p.Column = n
	}
	return p
}

func (b *TextBuffer) Cursor() Position { return b.cursor }

// SetCursor moves the cursor to p clamped into the document and returns
// where it landed.
func (b *TextBuffer) SetCursor(p Position) Position {
	next := b.clamp(p)
	if next == b.cursor {
		return next
	}
	b.cursor = next
	for _, fn := range b.cursorObservers {
		fn(next)
	}
	return next
}

// Insert puts text at pos and returns the position right after it. The
// cursor moves with the text when it sits at or after pos.
func (b *TextBuffer) Insert(pos Position, text string) (Position, error) {
	if err := b.validate(pos); err != nil {
		return pos, err
	}
	runes := []rune(normalizeNewlines(text))
	if len(runes) == 0 {
		return pos, nil
	}
	b.UndoStack.Push(EditorAction{
		Type:   EditorActionType_Insert,
		Start:  pos,
		Data:   string(runes),
		Cursor: b.cursor,
	})
	end := b.insert(pos, runes)
	b.cursor = shiftAfterInsert(b.cursor, pos, end)
	b.notify(Change{Start: pos, End: end, Inserted: string(runes)})
	return end, nil
}

// Delete removes [start, end) and returns the removed text.
func (b *TextBuffer) Delete(start, end Position) (string, error) {
	if err := b.validateRange(start, end); err != nil {
		return "", err
	}
	if start == end {
		return "", nil
	}
	removed := b.remove(start, end)
	b.UndoStack.Push(EditorAction{
		Type:   EditorActionType_Delete,
		Start:  start,
		Data:   removed,
		Cursor: b.cursor,
	})
	b.cursor = shiftAfterDelete(b.cursor, start, end)
	b.notify(Change{Start: start, End: start, Deleted: removed})
	return removed, nil
}

// Replace swaps [start, end) for text as one edit: one notification and one
// undo entry. It returns the position right after the new text.
func (b *TextBuffer) Replace(start, end Position, text string) (Position, error) {
	if err := b.validateRange(start, end); err != nil {
		return start, err
	}
	runes := []rune(normalizeNewlines(text))
	if start == end && len(runes) == 0 {
		return start, nil
	}
	cursor := b.cursor
	removed := b.remove(start, end)
	newEnd := b.insert(start, runes)
	b.UndoStack.Push(EditorAction{
		Type:    EditorActionType_Replace,
		Start:   start,
		Data:    string(runes),
		Removed: removed,
		Cursor:  cursor,
	})
	b.cursor = shiftAfterInsert(shiftAfterDelete(cursor, start, end), start, newEnd)
	b.notify(Change{Start: start, End: newEnd, Inserted: string(runes), Deleted: removed})
	return newEnd, nil
}

// Get returns the text in [start, end) without touching the buffer.
func (b *TextBuffer) Get(start, end Position) (string, error) {
	if err := b.validateRange(start, end); err != nil {
		return "", err
	}
	return b.get(start, end), nil
}

// Undo reverts the most recent edit and restores the cursor it had before.
func (b *TextBuffer) Undo() error {
	last, err := b.UndoStack.Pop()
	if err != nil {
		return ErrEmptyHistory
	}

	var change Change
	switch last.Type {
	case EditorActionType_Insert:
		end := endOf(last.Start, []rune(last.Data))
		change = Change{Start: last.Start, End: last.Start, Deleted: b.remove(last.Start, end)}
	case EditorActionType_Delete:
		end := b.insert(last.Start, []rune(last.Data))
		change = Change{Start: last.Start, End: end, Inserted: last.Data}
	case EditorActionType_Replace:
		deleted := b.remove(last.Start, endOf(last.Start, []rune(last.Data)))
		end := b.insert(last.Start, []rune(last.Removed))
		change = Change{Start: last.Start, End: end, Inserted: last.Removed, Deleted: deleted}
	default:
		panic(fmt.Sprintf("pawnpad: unknown editor action %d", last.Type))
	}
	b.cursor = b.clamp(last.Cursor)
	b.notify(change)
	return nil
}

// Offset maps p to a rune offset into Text().
func (b *TextBuffer) Offset(p Position) (int, error) {
	if err := b.validate(p); err != nil {
		return 0, err
	}
	offset := p.Column
	for _, line := range b.lines[:p.Line-1] {
		offset += len(line) + 1
	}
	return offset, nil
}

// PositionAt maps a rune offset into Text() back to a position.
func (b *TextBuffer) PositionAt(offset int) (Position, error) {
	if offset < 0 {
		return Position{}, fmt.Errorf("%w: offset %d", ErrOutOfBounds, offset)
	}
	rest := offset
	for i, line := range b.lines {
		if rest <= len(line) {
			return Position{Line: i + 1, Column: rest}, nil
		}
		rest -= len(line) + 1
	}
	return Position{}, fmt.Errorf("%w: offset %d", ErrOutOfBounds, offset)
}

func (b *TextBuffer) insert(pos Position, text []rune) Position {
	line := b.lines[pos.Line-1]
	tail := line[pos.Column:]
	parts := splitLines(text)

	replacement := make([][]rune, len(parts))
	first := make([]rune, 0, pos.Column+len(parts[0]))
	first = append(first, line[:pos.Column]...)
	replacement[0] = append(first, parts[0]...)
	for i := 1; i < len(parts); i++ {
		replacement[i] = parts[i]
	}
	last := len(replacement) - 1
	replacement[last] = append(append([]rune{}, replacement[last]...), tail...)

	b.lines = append(b.lines[:pos.Line-1], append(replacement, b.lines[pos.Line:]...)...)
	return endOf(pos, text)
}

func (b *TextBuffer) remove(start, end Position) string {
	removed := b.get(start, end)
	head := b.lines[start.Line-1][:start.Column]
	tail := b.lines[end.Line-1][end.Column:]
	merged := make([]rune, 0, len(head)+len(tail))
	merged = append(merged, head...)
	merged = append(merged, tail...)
	b.lines = append(b.lines[:start.Line-1], append([][]rune{merged}, b.lines[end.Line:]...)...)
	return removed
}

func (b *TextBuffer) get(start, end Position) string {
	if start.Line == end.Line {
		return string(b.lines[start.Line-1][start.Column:end.Column])
	}
	var sb strings.Builder
	sb.WriteString(string(b.lines[start.Line-1][start.Column:]))
	for _, line := range b.lines[start.Line : end.Line-1] {
		sb.WriteByte('\n')
		sb.WriteString(string(line))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(b.lines[end.Line-1][:end.Column]))
	return sb.String()
}
