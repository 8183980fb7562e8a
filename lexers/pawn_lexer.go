package lexers

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// Keywords is the fixed SourcePawn / AMX Mod X keyword table.
var Keywords = []string{
	"auto", "break", "case", "char", "const", "continue", "default", "do",
	"double", "else", "enum", "extern", "float", "for", "goto", "if",
	"int", "long", "register", "return", "short", "signed", "sizeof", "static",
	"struct", "switch", "typedef", "union", "unsigned", "void", "volatile", "while",
	"public", "stock", "native", "forward", "new", "decl", "funcenum", "functag",
	"Action", "Plugin", "Handle", "bool", "true", "false", "null", "INVALID_HANDLE",
}

type pass struct {
	kind Kind
	re   *regexp2.Regexp
}

// passes run in this order over the raw text. They are independent: a later
// pass may tag a region an earlier one already tagged, and both spans are kept.
var passes []pass

func init() {
	for _, kw := range Keywords {
		passes = append(passes, pass{Keyword, regexp2.MustCompile(`\b`+regexp2.Escape(kw)+`\b`, regexp2.None)})
	}
	passes = append(passes,
		pass{String, regexp2.MustCompile(`"[^"]*(?:"|\z)`, regexp2.None)},
		pass{Comment, regexp2.MustCompile(`//.*$`, regexp2.Multiline)},
		pass{Comment, regexp2.MustCompile(`/\*.*?(?:\*/|\z)`, regexp2.Singleline)},
		pass{Number, regexp2.MustCompile(`\b\d+\.?\d*\b`, regexp2.None)},
		pass{Preprocessor, regexp2.MustCompile(`#\w+`, regexp2.None)},
		pass{FunctionCall, regexp2.MustCompile(`\b\w+(?=\s*\()`, regexp2.None)},
	)
}

type PawnLexer struct {
	data []rune
}

func NewPawnLexer(text string) Lexer {
	return &PawnLexer{data: []rune(text)}
}

// Tokens returns every span of every pass, in pass order and then in text
// order. Overlaps are not resolved.
func (l *PawnLexer) Tokens() []Token {
	var tokens []Token
	for _, p := range passes {
		m, err := p.re.FindRunesMatch(l.data)
		for ; m != nil; m, err = p.re.FindNextMatch(m) {
			if m.Length == 0 {
				continue
			}
			tokens = append(tokens, Token{Start: m.Index, End: m.Index + m.Length, Kind: p.kind})
		}
		if err != nil {
			// only a match timeout can fail and none is configured
			panic(fmt.Sprintf("lexers: %s pass: %v", p.kind, err))
		}
	}
	return tokens
}

// Classify is the pure highlighter entry point: a full rescan of text.
func Classify(text string) []Token {
	return NewPawnLexer(text).Tokens()
}
