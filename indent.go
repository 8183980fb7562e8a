package pawnpad

import (
	"strings"

	"github.com/amirrezaask/pawnpad/byteutils"
)

// IndentResult is the indentation a new line should start with.
type IndentResult struct {
	Spaces int
}

// indentOpeners are line prefixes that open a block without a brace.
var indentOpeners = []string{"if ", "for ", "while ", "else", "switch ", "case "}

// ComputeIndent returns the indent for the line that follows line: its own
// leading indent, one level deeper when line opens a block.
func ComputeIndent(line string, tabSize int) IndentResult {
	spaces := byteutils.IndentWidth([]byte(line), tabSize)
	if opensBlock(strings.TrimSpace(line)) {
		spaces += tabSize
	}
	return IndentResult{Spaces: spaces}
}

func opensBlock(trimmed string) bool {
	if strings.HasSuffix(trimmed, "{") || strings.HasSuffix(trimmed, ":") {
		return true
	}
	for _, prefix := range indentOpeners {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}
