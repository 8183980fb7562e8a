package lexers

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// wordRuns finds maximal runs of word characters, symbols and whitespace.
// \w has the same meaning here as in the classifier passes.
var wordRuns = regexp2.MustCompile(`(\w+)|([^\w\s]+)|(\s+)`, regexp2.None)

var runKinds = [...]Kind{1: Word, 2: Symbol, 3: Whitespace}

// WordLexer splits text into the runs `\w+|[^\w\s]+|\s+` matches.
type WordLexer struct {
	data []rune
}

func (w *WordLexer) Tokens() []Token {
	var tokens []Token
	m, err := wordRuns.FindRunesMatch(w.data)
	for ; m != nil; m, err = wordRuns.FindNextMatch(m) {
		kind := Symbol
		for i := 1; i < len(runKinds); i++ {
			if g := m.GroupByNumber(i); g != nil && g.Length > 0 {
				kind = runKinds[i]
				break
			}
		}
		tokens = append(tokens, Token{Start: m.Index, End: m.Index + m.Length, Kind: kind})
	}
	if err != nil {
		panic(fmt.Sprintf("lexers: word runs: %v", err))
	}
	return tokens
}

func NewWordLexer(text string) Lexer {
	return &WordLexer{data: []rune(text)}
}

// LastWord returns the last word-lexer token of text, if any.
func LastWord(text string) (Token, bool) {
	tokens := NewWordLexer(text).Tokens()
	if len(tokens) == 0 {
		return Token{}, false
	}
	return tokens[len(tokens)-1], true
}
