package pawnpad

import (
	"github.com/amirrezaask/pawnpad/lexers"
)

const highlightIdleKey = "highlight"

// Classifier turns the full document text into token spans.
type Classifier func(text string) []lexers.Token

// Highlighter runs the classifier on the loop's idle phase. Requests made
// while a pass is pending collapse into that pass, and a pass never runs
// twice for the same buffer generation.
type Highlighter struct {
	loop     *Loop
	source   func() string
	classify Classifier

	generation uint64 // bumped by every Request
	applied    uint64 // generation of tokens

	tokens    []lexers.Token
	observers []func([]lexers.Token)
	passes    int
}

func NewHighlighter(loop *Loop, source func() string, classify Classifier) *Highlighter {
	if classify == nil {
		classify = lexers.Classify
	}
	return &Highlighter{loop: loop, source: source, classify: classify}
}

func (h *Highlighter) OnHighlight(fn func([]lexers.Token)) {
	h.observers = append(h.observers, fn)
}

// Request marks the current tokens stale and schedules a pass.
func (h *Highlighter) Request() {
	h.generation++
	h.loop.Idle(highlightIdleKey, h.pass)
}

func (h *Highlighter) pass() {
	gen := h.generation
	if gen == h.applied {
		return
	}
	tokens := h.classify(h.source())
	if gen != h.generation {
		// content moved on while classifying, redo against the newer text
		h.loop.Idle(highlightIdleKey, h.pass)
		return
	}
	h.tokens = tokens
	h.applied = gen
	h.passes++
	for _, fn := range h.observers {
		fn(tokens)
	}
}

// Tokens is the result of the last completed pass. The slice is replaced,
// never modified, by later passes.
func (h *Highlighter) Tokens() []lexers.Token { return h.tokens }

// Stale reports whether a requested pass has not completed yet.
func (h *Highlighter) Stale() bool { return h.applied != h.generation }

// Passes is the number of completed passes.
func (h *Highlighter) Passes() int { return h.passes }
