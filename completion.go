package pawnpad

import (
	"sort"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/amirrezaask/pawnpad/lexers"
)

type Completion struct {
	Text     string
	Distance int
}

// Complete ranks candidates that fuzzily contain prefix, closest first.
func Complete(prefix string, candidates []string, limit int) []Completion {
	if prefix == "" {
		return nil
	}
	ranks := fuzzy.RankFindNormalizedFold(prefix, candidates)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].Target < ranks[j].Target
	})

	var out []Completion
	for _, r := range ranks {
		if r.Target == prefix {
			continue
		}
		out = append(out, Completion{Text: r.Target, Distance: r.Distance})
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// identifiers returns the keyword table plus every distinct identifier in
// text, in first-seen order.
func identifiers(text string) []string {
	seen := map[string]bool{}
	var out []string
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, kw := range lexers.Keywords {
		add(kw)
	}
	runes := []rune(text)
	for _, tok := range lexers.NewWordLexer(text).Tokens() {
		if tok.Kind != lexers.Word || unicode.IsDigit(runes[tok.Start]) {
			continue
		}
		add(string(runes[tok.Start:tok.End]))
	}
	return out
}

// wordBeforeCursor returns the word that ends at the cursor, if any.
func wordBeforeCursor(b *TextBuffer) (string, Position, bool) {
	cur := b.Cursor()
	before, err := b.Get(Position{Line: cur.Line, Column: 0}, cur)
	if err != nil {
		return "", cur, false
	}
	tok, ok := lexers.LastWord(before)
	if !ok || tok.Kind != lexers.Word {
		return "", cur, false
	}
	runes := []rune(before)
	return string(runes[tok.Start:tok.End]), Position{Line: cur.Line, Column: tok.Start}, true
}
