package pawnpad

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
)

// FileType describes how a language is indented and highlighted. Pawn has no
// tree-sitter grammar of its own; its C-like syntax is parsed with the C one.
type FileType struct {
	Name             string
	TabSize          int
	Extensions       []string
	TSLanguage       *sitter.Language
	TSHighlightQuery []byte
}

/*
   Treesitter captures, named like lexers.Kind:
   - keyword
   - string
   - comment
   - number
   - preprocessor
   - function
*/

var cHighlightQuery = []byte(`
[
  "break"
  "case"
  "const"
  "continue"
  "default"
  "do"
  "else"
  "enum"
  "for"
  "if"
  "return"
  "sizeof"
  "static"
  "struct"
  "switch"
  "while"
] @keyword

[(string_literal) (char_literal)] @string
(comment) @comment
(number_literal) @number
[
  "#define"
  "#include"
  (preproc_directive)
] @preprocessor
(call_expression function: (identifier) @function)
`)

var SourcePawnFileType = FileType{
	Name:             "SourcePawn",
	TabSize:          4,
	Extensions:       []string{".sp", ".inc"},
	TSLanguage:       c.GetLanguage(),
	TSHighlightQuery: cHighlightQuery,
}

var PawnFileType = FileType{
	Name:             "Pawn",
	TabSize:          4,
	Extensions:       []string{".pwn", ".sma", ".p"},
	TSLanguage:       c.GetLanguage(),
	TSHighlightQuery: cHighlightQuery,
}

var CFileType = FileType{
	Name:             "C",
	TabSize:          4,
	Extensions:       []string{".c", ".h"},
	TSLanguage:       c.GetLanguage(),
	TSHighlightQuery: cHighlightQuery,
}

var FileTypes = []FileType{SourcePawnFileType, PawnFileType, CFileType}

// DetectFileType picks the file type by the language enry detects, then by
// extension, and defaults to SourcePawn.
func DetectFileType(filename string, content []byte) FileType {
	if filename == "" {
		return SourcePawnFileType
	}
	lang := enry.GetLanguage(filepath.Base(filename), content)
	for _, ft := range FileTypes {
		if strings.EqualFold(ft.Name, lang) {
			return ft
		}
	}
	ext := strings.ToLower(filepath.Ext(filename))
	for _, ft := range FileTypes {
		for _, e := range ft.Extensions {
			if e == ext {
				return ft
			}
		}
	}
	return SourcePawnFileType
}
