package pawnpad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferAt(text string, cursor Position) *TextBuffer {
	b := NewTextBuffer(text, 0)
	b.SetCursor(cursor)
	return b
}

func TestInsertTab(t *testing.T) {
	b := bufferAt("x", Position{Line: 1, Column: 0})
	require.NoError(t, InsertTab(b, 4))
	assert.Equal(t, "    x", b.Text())
	assert.Equal(t, Position{Line: 1, Column: 4}, b.Cursor())
}

func TestInsertNewline(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		cursor Position
		want   string
		after  Position
	}{
		{"keeps indent", "    x = 1;", Position{Line: 1, Column: 10}, "    x = 1;\n    ", Position{Line: 2, Column: 4}},
		{"brace opens block", "main() {", Position{Line: 1, Column: 8}, "main() {\n    ", Position{Line: 2, Column: 4}},
		{"if opens block", "  if x", Position{Line: 1, Column: 6}, "  if x\n      ", Position{Line: 2, Column: 6}},
		{"tab counts as four", "\tfoo", Position{Line: 1, Column: 4}, "\tfoo\n    ", Position{Line: 2, Column: 4}},
		{"whole line decides", "if x", Position{Line: 1, Column: 0}, "\n    if x", Position{Line: 2, Column: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := bufferAt(tt.text, tt.cursor)
			require.NoError(t, InsertNewline(b, 4))
			assert.Equal(t, tt.want, b.Text())
			assert.Equal(t, tt.after, b.Cursor())
		})
	}
}

func TestDeleteSoftTab(t *testing.T) {
	b := bufferAt("x       ", Position{Line: 1, Column: 8})
	handled, err := DeleteSoftTab(b, 4)
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, "x   ", b.Text())
	assert.Equal(t, Position{Line: 1, Column: 4}, b.Cursor())

	b = bufferAt("ab  ", Position{Line: 1, Column: 4})
	changes := recordChanges(b)
	handled, err = DeleteSoftTab(b, 4)
	require.NoError(t, err)
	assert.False(t, handled)
	assert.Equal(t, "ab  ", b.Text())
	assert.Empty(t, *changes)

	b = bufferAt("   ", Position{Line: 1, Column: 3})
	handled, err = DeleteSoftTab(b, 4)
	require.NoError(t, err)
	assert.False(t, handled)
}

func TestDeleteWordBackward(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		cursor Position
		want   string
		after  Position
	}{
		{"word", "foo bar", Position{Line: 1, Column: 7}, "foo ", Position{Line: 1, Column: 4}},
		{"trailing whitespace", "foo   ", Position{Line: 1, Column: 6}, "foo", Position{Line: 1, Column: 3}},
		{"symbol run", "x +=", Position{Line: 1, Column: 4}, "x ", Position{Line: 1, Column: 2}},
		{"merge lines", "ab\ncd", Position{Line: 2, Column: 0}, "abcd", Position{Line: 1, Column: 2}},
		{"middle of line", "foo bar baz", Position{Line: 1, Column: 7}, "foo  baz", Position{Line: 1, Column: 4}},
		{"first line start", "abc", Position{Line: 1, Column: 0}, "abc", Position{Line: 1, Column: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := bufferAt(tt.text, tt.cursor)
			require.NoError(t, DeleteWordBackward(b))
			assert.Equal(t, tt.want, b.Text())
			assert.Equal(t, tt.after, b.Cursor())
		})
	}
}

func TestCopyCutPaste(t *testing.T) {
	cb := &MemoryClipboard{}
	b := bufferAt("one\ntwo\nthree", Position{Line: 2, Column: 1})

	require.NoError(t, Copy(b, cb))
	bs, err := cb.Read()
	require.NoError(t, err)
	assert.Equal(t, "two\n", string(bs))

	require.NoError(t, Cut(b, cb))
	assert.Equal(t, "one\nthree", b.Text())
	assert.Equal(t, Position{Line: 2, Column: 0}, b.Cursor())

	b.SetCursor(Position{Line: 1, Column: 0})
	require.NoError(t, Paste(b, cb))
	assert.Equal(t, "two\none\nthree", b.Text())
	assert.Equal(t, Position{Line: 2, Column: 0}, b.Cursor())
}

func TestCutLastLine(t *testing.T) {
	cb := &MemoryClipboard{}
	b := bufferAt("one\ntwo", Position{Line: 2, Column: 2})
	require.NoError(t, Cut(b, cb))
	assert.Equal(t, "one", b.Text())

	b = bufferAt("only", Position{Line: 1, Column: 2})
	require.NoError(t, Cut(b, cb))
	assert.Equal(t, "", b.Text())
	bs, _ := cb.Read()
	assert.Equal(t, "only\n", string(bs))
}

func TestTabThenBackspaceRoundTrips(t *testing.T) {
	for _, text := range []string{"", "abc", "  x"} {
		b := bufferAt(text, Position{Line: 1, Column: len([]rune(text))})
		require.NoError(t, InsertTab(b, 4))
		handled, err := DeleteSoftTab(b, 4)
		require.NoError(t, err)
		assert.True(t, handled)
		assert.Equal(t, text, b.Text())
	}
}

func TestEnterAfterBlockOpener(t *testing.T) {
	b := bufferAt("  if (x) {", Position{Line: 1, Column: 10})
	require.NoError(t, InsertNewline(b, 4))
	line, err := b.Line(2)
	require.NoError(t, err)
	assert.Equal(t, "      ", line)
}

func TestCtrlBackspaceSymbolsThenWord(t *testing.T) {
	b := bufferAt("foo_bar()", Position{Line: 1, Column: 9})
	require.NoError(t, DeleteWordBackward(b))
	assert.Equal(t, "foo_bar", b.Text())
	require.NoError(t, DeleteWordBackward(b))
	assert.Equal(t, "", b.Text())
}
