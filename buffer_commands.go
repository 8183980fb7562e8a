package pawnpad

import (
	"strings"
	"unicode/utf8"

	"github.com/amirrezaask/pawnpad/byteutils"
	"github.com/amirrezaask/pawnpad/lexers"
)

// InsertTab inserts a soft tab at the cursor.
func InsertTab(b *TextBuffer, tabSize int) error {
	_, err := b.Insert(b.Cursor(), strings.Repeat(" ", tabSize))
	return err
}

// InsertNewline breaks the line at the cursor and indents the new line
// according to ComputeIndent of the current one.
func InsertNewline(b *TextBuffer, tabSize int) error {
	cur := b.Cursor()
	line, err := b.Line(cur.Line)
	if err != nil {
		return err
	}
	indent := ComputeIndent(line, tabSize)
	_, err = b.Insert(cur, "\n"+strings.Repeat(" ", indent.Spaces))
	return err
}

// DeleteSoftTab removes the tabSize spaces right before the cursor, if that
// is what precedes it. It reports false when the default single character
// backspace should run instead.
func DeleteSoftTab(b *TextBuffer, tabSize int) (bool, error) {
	cur := b.Cursor()
	if cur.Column < tabSize {
		return false, nil
	}
	before, err := b.Get(Position{Line: cur.Line, Column: 0}, cur)
	if err != nil {
		return false, err
	}
	if !byteutils.HasSpaceSuffix([]byte(before), tabSize) {
		return false, nil
	}
	if _, err := b.Delete(Position{Line: cur.Line, Column: cur.Column - tabSize}, cur); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteWordBackward deletes, in order of preference: the line break before
// the cursor when it is at column 0, the whitespace run before the cursor,
// or the last word/symbol run before the cursor.
func DeleteWordBackward(b *TextBuffer) error {
	cur := b.Cursor()
	if cur.Column == 0 {
		if cur.Line == 1 {
			return nil
		}
		prevLen, err := b.LineLength(cur.Line - 1)
		if err != nil {
			return err
		}
		_, err = b.Delete(Position{Line: cur.Line - 1, Column: prevLen}, cur)
		return err
	}

	before, err := b.Get(Position{Line: cur.Line, Column: 0}, cur)
	if err != nil {
		return err
	}
	bs := []byte(before)
	if idx := byteutils.SeekTrailingWhitespace(bs); idx < len(bs) {
		_, err = b.Delete(Position{Line: cur.Line, Column: utf8.RuneCount(bs[:idx])}, cur)
		return err
	}

	token, ok := lexers.LastWord(before)
	if !ok {
		return nil
	}
	_, err = b.Delete(Position{Line: cur.Line, Column: token.Start}, cur)
	return err
}

// Copy puts the cursor line, with its line break, on the clipboard.
func Copy(b *TextBuffer, cb Clipboard) error {
	line, err := b.Line(b.Cursor().Line)
	if err != nil {
		return err
	}
	return cb.Write([]byte(line + "\n"))
}

// Cut copies the cursor line and removes it from the buffer.
func Cut(b *TextBuffer, cb Clipboard) error {
	if err := Copy(b, cb); err != nil {
		return err
	}
	cur := b.Cursor()
	start := Position{Line: cur.Line, Column: 0}
	end := Position{Line: cur.Line + 1, Column: 0}
	if cur.Line == b.LineCount() {
		n, _ := b.LineLength(cur.Line)
		end = Position{Line: cur.Line, Column: n}
		if cur.Line > 1 {
			prevLen, _ := b.LineLength(cur.Line - 1)
			start = Position{Line: cur.Line - 1, Column: prevLen}
		}
	}
	_, err := b.Delete(start, end)
	return err
}

// Paste inserts the clipboard content at the cursor.
func Paste(b *TextBuffer, cb Clipboard) error {
	bs, err := cb.Read()
	if err != nil {
		return err
	}
	_, err = b.Insert(b.Cursor(), string(bs))
	return err
}
