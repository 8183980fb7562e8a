package lexers

import "fmt"

type Kind uint8

const (
	Keyword Kind = iota + 1
	String
	Comment
	Number
	Preprocessor
	FunctionCall

	// word lexer classes
	Word
	Symbol
	Whitespace
)

func (k Kind) String() string {
	switch k {
	case Keyword:
		return "keyword"
	case String:
		return "string"
	case Comment:
		return "comment"
	case Number:
		return "number"
	case Preprocessor:
		return "preprocessor"
	case FunctionCall:
		return "function"
	case Word:
		return "word"
	case Symbol:
		return "symbol"
	case Whitespace:
		return "whitespace"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Token is the basic data type of lexer.
// Start and End are rune offsets into the lexed text: text[Start:End).
type Token struct {
	Start int
	End   int
	Kind  Kind
}

func (t Token) Len() int { return t.End - t.Start }

// Lexer produces tokens for the whole text it was created with.
// Lexers hold no state across texts, a new one is made per pass.
type Lexer interface {
	Tokens() []Token
}
