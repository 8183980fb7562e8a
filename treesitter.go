package pawnpad

import (
	"context"
	"log"
	"sort"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/amirrezaask/pawnpad/lexers"
)

var captureKinds = map[string]lexers.Kind{
	"keyword":      lexers.Keyword,
	"string":       lexers.String,
	"comment":      lexers.Comment,
	"number":       lexers.Number,
	"preprocessor": lexers.Preprocessor,
	"function":     lexers.FunctionCall,
}

// TSHighlights parses code with lang and returns one token per capture of
// queryString whose name is a token kind. Offsets are in runes, like the
// regex classifier's.
func TSHighlights(lang *sitter.Language, queryString []byte, code []byte) ([]lexers.Token, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(context.Background(), nil, code)
	if err != nil {
		return nil, err
	}
	query, err := sitter.NewQuery(queryString, lang)
	if err != nil {
		return nil, err
	}

	runeAt := runeOffsets(code)
	var tokens []lexers.Token
	qc := sitter.NewQueryCursor()
	qc.Exec(query, tree.RootNode())
	for {
		qm, exists := qc.NextMatch()
		if !exists {
			break
		}
		for _, capture := range qm.Captures {
			kind, ok := captureKinds[query.CaptureNameForId(capture.Index)]
			if !ok {
				continue
			}
			start, end := runeAt[capture.Node.StartByte()], runeAt[capture.Node.EndByte()]
			if start == end {
				continue
			}
			tokens = append(tokens, lexers.Token{Start: start, End: end, Kind: kind})
		}
	}

	sort.SliceStable(tokens, func(i, j int) bool {
		if tokens[i].Start != tokens[j].Start {
			return tokens[i].Start < tokens[j].Start
		}
		return tokens[i].End < tokens[j].End
	})
	return tokens, nil
}

// runeOffsets maps every byte offset of code, len(code) included, to the
// index of the rune it falls in.
func runeOffsets(code []byte) []int {
	out := make([]int, len(code)+1)
	r := 0
	for i := 0; i < len(code); {
		_, size := utf8.DecodeRune(code[i:])
		for j := 0; j < size; j++ {
			out[i+j] = r
		}
		i += size
		r++
	}
	out[len(code)] = r
	return out
}

// TreeSitterClassifier highlights with ft's grammar and falls back to the
// regex classifier when parsing or the query fails.
func TreeSitterClassifier(ft FileType) Classifier {
	if ft.TSLanguage == nil || len(ft.TSHighlightQuery) == 0 {
		return lexers.Classify
	}
	return func(text string) []lexers.Token {
		tokens, err := TSHighlights(ft.TSLanguage, ft.TSHighlightQuery, []byte(text))
		if err != nil {
			log.Printf("treesitter: %s: %v, using regex classifier", ft.Name, err)
			return lexers.Classify(text)
		}
		return tokens
	}
}
