package byteutils

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

// IndentWidth is the width of the leading run of spaces and tabs in bs,
// counting every tab as tabSize spaces.
func IndentWidth(bs []byte, tabSize int) int {
	width := 0
	for _, b := range bs {
		switch b {
		case ' ':
			width++
		case '\t':
			width += tabSize
		default:
			return width
		}
	}
	return width
}

// SeekTrailingWhitespace returns the index where the trailing whitespace run
// of bs starts, or len(bs) when bs does not end in whitespace.
func SeekTrailingWhitespace(bs []byte) int {
	i := len(bs)
	for i > 0 {
		r, size := utf8.DecodeLastRune(bs[:i])
		if !unicode.IsSpace(r) {
			break
		}
		i -= size
	}
	return i
}

// HasSpaceSuffix reports whether the last n bytes of bs are all ' '.
func HasSpaceSuffix(bs []byte, n int) bool {
	if n <= 0 || len(bs) < n {
		return false
	}
	return len(bytes.TrimLeft(bs[len(bs)-n:], " ")) == 0
}
