package pawnpad

// DefaultKeymap binds the structural keys of the input policy. Keys it does
// not bind, plain characters among them, are left to the rendering layer.
var DefaultKeymap = Keymap{
	Key{K: "<tab>"}: MakeCommand(func(e *Editor) error {
		return InsertTab(e.buffer, e.cfg.TabSize)
	}),
	Key{K: "<enter>"}: MakeCommand(func(e *Editor) error {
		return InsertNewline(e.buffer, e.cfg.TabSize)
	}),
	Key{K: "<backspace>"}: func(e *Editor) (bool, error) {
		return DeleteSoftTab(e.buffer, e.cfg.TabSize)
	},
	Key{K: "<backspace>", Control: true}: MakeCommand(func(e *Editor) error {
		return DeleteWordBackward(e.buffer)
	}),
	Key{K: "c", Control: true}: MakeCommand(func(e *Editor) error {
		return Copy(e.buffer, e.clipboard)
	}),
	Key{K: "x", Control: true}: MakeCommand(func(e *Editor) error {
		return Cut(e.buffer, e.clipboard)
	}),
	Key{K: "v", Control: true}: MakeCommand(func(e *Editor) error {
		return Paste(e.buffer, e.clipboard)
	}),
	Key{K: "z", Control: true}: MakeCommand(func(e *Editor) error {
		return e.buffer.Undo()
	}),
	Key{K: "<space>", Control: true}: MakeCommand(func(e *Editor) error {
		e.OpenCompletions()
		return nil
	}),
	Key{K: "<mouse-wheel-up>"}: MakeCommand(func(e *Editor) error {
		return e.Scroll(-1)
	}),
	Key{K: "<mouse-wheel-down>"}: MakeCommand(func(e *Editor) error {
		return e.Scroll(1)
	}),
}

// CompletionKeymap is active while the completion list is open.
var CompletionKeymap = Keymap{
	Key{K: "<enter>"}: func(e *Editor) (bool, error) {
		return e.AcceptCompletion()
	},
	Key{K: "<tab>"}: func(e *Editor) (bool, error) {
		return e.AcceptCompletion()
	},
	Key{K: "<down>"}: MakeCommand(func(e *Editor) error {
		e.completions.NextItem()
		return nil
	}),
	Key{K: "n", Control: true}: MakeCommand(func(e *Editor) error {
		e.completions.NextItem()
		return nil
	}),
	Key{K: "<up>"}: MakeCommand(func(e *Editor) error {
		e.completions.PrevItem()
		return nil
	}),
	Key{K: "p", Control: true}: MakeCommand(func(e *Editor) error {
		e.completions.PrevItem()
		return nil
	}),
	Key{K: "<esc>"}: MakeCommand(func(e *Editor) error {
		e.CloseCompletions()
		return nil
	}),
}
