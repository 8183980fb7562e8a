package pawnpad

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/mattn/go-runewidth"

	"github.com/amirrezaask/pawnpad/lexers"
)

var chromaTypes = map[lexers.Kind]chroma.TokenType{
	lexers.Keyword:      chroma.Keyword,
	lexers.String:       chroma.LiteralString,
	lexers.Comment:      chroma.Comment,
	lexers.Number:       chroma.LiteralNumber,
	lexers.Preprocessor: chroma.CommentPreproc,
	lexers.FunctionCall: chroma.NameFunction,
}

// ThemeStyle turns a theme into a chroma style with the same colors.
func ThemeStyle(theme Theme) (*chroma.Style, error) {
	entries := chroma.StyleEntries{
		chroma.Background:  fmt.Sprintf("bg:%s %s", theme.Colors.Background.Hex(), theme.Colors.Foreground.Hex()),
		chroma.LineNumbers: theme.Colors.LineNumbersForeground.Hex(),
	}
	for kind, typ := range chromaTypes {
		if c, ok := theme.Colors.SyntaxColors[kind.String()]; ok {
			entries[typ] = c.Hex()
		}
	}
	return chroma.NewStyle(theme.Name, entries)
}

func (c *Config) chromaStyle() (*chroma.Style, error) {
	if c.Style != "" {
		return styles.Get(c.Style), nil
	}
	for _, t := range c.Themes {
		if t.Name == c.CurrentTheme {
			return ThemeStyle(t)
		}
	}
	return ThemeStyle(c.Themes[0])
}

// chromaTokens flattens spans into one token per run of equally classified
// runes. Where spans overlap the one that comes last wins.
func chromaTokens(text string, spans []lexers.Token) []chroma.Token {
	runes := []rune(text)
	kinds := make([]lexers.Kind, len(runes))
	for _, s := range spans {
		for i := max(s.Start, 0); i < s.End && i < len(runes); i++ {
			kinds[i] = s.Kind
		}
	}

	var out []chroma.Token
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i < len(runes) && kinds[i] == kinds[start] {
			continue
		}
		typ, ok := chromaTypes[kinds[start]]
		if !ok {
			typ = chroma.Text
		}
		out = append(out, chroma.Token{Type: typ, Value: string(runes[start:i])})
		start = i
	}
	return out
}

// Render writes text line by line, each line prefixed by its gutter label
// when line numbers are on, colored by spans through the named chroma
// formatter.
func Render(w io.Writer, text string, spans []lexers.Token, cfg *Config, formatterName string) error {
	style, err := cfg.chromaStyle()
	if err != nil {
		return err
	}
	formatter := formatters.Get(formatterName)

	lines := chroma.SplitTokensIntoLines(chromaTokens(text, spans))
	labels := LineLabels(strings.Count(text, "\n") + 1)
	for len(lines) < len(labels) {
		lines = append(lines, nil)
	}

	width := cfg.GutterWidth
	for _, l := range labels {
		width = max(width, runewidth.StringWidth(l))
	}

	for i, line := range lines {
		if cfg.LineNumbers {
			if _, err := io.WriteString(w, runewidth.FillLeft(strings.TrimSpace(labels[i]), width)+" "); err != nil {
				return err
			}
		}
		if len(line) > 0 {
			if err := formatter.Format(w, style, chroma.Literator(line...)); err != nil {
				return err
			}
		}
		if len(line) == 0 || !strings.HasSuffix(line[len(line)-1].Value, "\n") {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}
