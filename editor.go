package pawnpad

import (
	"github.com/amirrezaask/pawnpad/components"
	"github.com/amirrezaask/pawnpad/lexers"
)

// Editor ties a TextBuffer to the highlighter, the gutter and the input
// policy. All of its methods must be called on the loop's goroutine.
type Editor struct {
	cfg         *Config
	buffer      *TextBuffer
	highlighter *Highlighter
	views       ViewSync
	content     ScrollView
	loop        *Loop

	keymap           Keymap
	completionKeymap Keymap
	clipboard        Clipboard
	completions      components.ListComponent[Completion]
	completionOpen   bool
	completionStart  Position

	fileType FileType
	filename string
}

type Option func(*Editor)

func WithLoop(l *Loop) Option {
	return func(e *Editor) { e.loop = l }
}

func WithClipboard(cb Clipboard) Option {
	return func(e *Editor) { e.clipboard = cb }
}

// WithKeymap adds bindings on top of DefaultKeymap.
func WithKeymap(km Keymap) Option {
	return func(e *Editor) { e.keymap = MergeKeymaps(e.keymap, km) }
}

// WithFilename selects the file type the way DetectFileType does.
func WithFilename(name string) Option {
	return func(e *Editor) { e.filename = name }
}

func New(cfg *Config, opts ...Option) *Editor {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	e := &Editor{
		cfg:              cfg,
		buffer:           NewTextBuffer("", cfg.HistoryLimit),
		keymap:           DefaultKeymap,
		completionKeymap: CompletionKeymap,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.loop == nil {
		e.loop = NewLoop()
	}
	if e.clipboard == nil {
		if cfg.SystemClipboard {
			e.clipboard = SystemClipboard{}
		} else {
			e.clipboard = &MemoryClipboard{}
		}
	}
	e.fileType = DetectFileType(e.filename, nil)

	classify := lexers.Classify
	if cfg.Highlighter == "treesitter" {
		classify = TreeSitterClassifier(e.fileType)
	}
	e.highlighter = NewHighlighter(e.loop, e.buffer.Text, classify)

	e.buffer.OnContentChanged(e.contentChanged)
	e.buffer.OnCursorMoved(func(Position) {
		e.CloseCompletions()
		e.views.Sync()
	})
	e.loop.State = e
	return e
}

func (e *Editor) contentChanged(Change) {
	// the list was computed for the old text
	e.CloseCompletions()
	lines := e.buffer.LineCount()
	if counter, ok := e.content.(interface{ SetLineCount(int) }); ok {
		counter.SetLineCount(lines)
	}
	e.views.UpdateLabels(lines)
	if e.cfg.EnableSyntaxHighlighting {
		e.highlighter.Request()
	}
}

func (e *Editor) Buffer() *TextBuffer { return e.buffer }

func (e *Editor) Loop() *Loop { return e.loop }

func (e *Editor) Highlighter() *Highlighter { return e.highlighter }

func (e *Editor) FileType() FileType { return e.fileType }

func (e *Editor) Text() string { return e.buffer.Text() }

// SetText replaces the document. Loading a file also re-detects its type
// from the content.
func (e *Editor) SetText(text string) {
	if e.filename != "" {
		ft := DetectFileType(e.filename, []byte(text))
		if ft.Name != e.fileType.Name {
			e.fileType = ft
			if e.cfg.Highlighter == "treesitter" {
				e.highlighter.classify = TreeSitterClassifier(ft)
			}
		}
	}
	e.CloseCompletions()
	e.buffer.SetText(text)
}

// InsertText types text at the cursor, the way the rendering layer inserts
// keys the keymap leaves to it.
func (e *Editor) InsertText(text string) error {
	_, err := e.buffer.Insert(e.buffer.Cursor(), text)
	return err
}

func (e *Editor) OnContentChanged(fn func(Change)) {
	e.buffer.OnContentChanged(fn)
}

// OnHighlight registers fn to receive the spans of every completed pass.
func (e *Editor) OnHighlight(fn func([]lexers.Token)) {
	e.highlighter.OnHighlight(fn)
}

// HandleKey runs the command bound to k. It reports false when nothing is
// bound or the command declined, leaving the key to the rendering layer.
// While completions are open their keymap goes first; keys it does not bind
// or declines close the list and go to the default keymap.
func (e *Editor) HandleKey(k Key) (bool, error) {
	if e.completionOpen {
		if cmd := e.completionKeymap[k]; cmd != nil {
			handled, err := cmd(e)
			if handled || err != nil {
				return handled, err
			}
		}
		e.CloseCompletions()
	}
	cmd := e.keymap[k]
	if cmd == nil {
		return false, nil
	}
	return cmd(e)
}

// Spans is the result of the last highlight pass.
func (e *Editor) Spans() []lexers.Token {
	if !e.cfg.EnableSyntaxHighlighting {
		return nil
	}
	return e.highlighter.Tokens()
}

func (e *Editor) Labels() []string {
	return LineLabels(e.buffer.LineCount())
}

// AttachViews connects the content view and the gutter. Until both are
// realized, label and scroll updates are skipped; attaching realized views
// synchronizes them immediately.
func (e *Editor) AttachViews(content ScrollView, gutter Gutter) {
	e.content = content
	e.views.Attach(content, gutter)
	if counter, ok := content.(interface{ SetLineCount(int) }); ok {
		counter.SetLineCount(e.buffer.LineCount())
	}
	e.views.UpdateLabels(e.buffer.LineCount())
}

// OnContentScroll forwards the content view's scroll callback to the gutter.
func (e *Editor) OnContentScroll(top float64) {
	e.views.OnContentScroll(top)
}

func (e *Editor) Scroll(units int) error {
	return e.views.ScrollUnits(units)
}

// OpenCompletions lists candidates for the word before the cursor. The list
// stays closed when there is no word or nothing matches.
func (e *Editor) OpenCompletions() {
	word, start, ok := wordBeforeCursor(e.buffer)
	if !ok {
		e.CloseCompletions()
		return
	}
	items := Complete(word, identifiers(e.buffer.Text()), 0)
	if len(items) == 0 {
		e.CloseCompletions()
		return
	}
	e.completions.SetItems(items)
	e.completionStart = start
	e.completionOpen = true
}

func (e *Editor) CloseCompletions() {
	e.completionOpen = false
	e.completions.SetItems(nil)
}

func (e *Editor) CompletionsOpen() bool { return e.completionOpen }

// Completions returns the visible part of the open list, limit <= 0 means
// all of it.
func (e *Editor) Completions(limit int) []Completion {
	if !e.completionOpen {
		return nil
	}
	if limit <= 0 {
		return e.completions.Items
	}
	return e.completions.VisibleView(limit)
}

func (e *Editor) SelectedCompletion() (Completion, bool) {
	if !e.completionOpen {
		return Completion{}, false
	}
	return e.completions.Selected()
}

// AcceptCompletion replaces the word before the cursor with the selected
// candidate and closes the list. It reports false, leaving the list closed,
// when the cursor is no longer right after the word the list was opened for.
func (e *Editor) AcceptCompletion() (bool, error) {
	item, ok := e.SelectedCompletion()
	start := e.completionStart
	e.CloseCompletions()
	if !ok {
		return false, nil
	}
	cur := e.buffer.Cursor()
	if cur.Line != start.Line || cur.Column <= start.Column {
		return false, nil
	}
	word, err := e.buffer.Get(start, cur)
	if err != nil {
		return false, nil
	}
	if tokens := lexers.NewWordLexer(word).Tokens(); len(tokens) != 1 || tokens[0].Kind != lexers.Word {
		return false, nil
	}
	_, err = e.buffer.Replace(start, cur, item.Text)
	return err == nil, err
}
