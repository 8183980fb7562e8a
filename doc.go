// Package pawnpad is the text-editing core of a SourcePawn/Pawn editor: a
// TextBuffer with undo, a regex or tree-sitter syntax classifier run on an
// idle loop, a line-number gutter kept in lockstep with the content view,
// and the indentation-aware input policy bound to keys. Windows, dialogs and
// process launching live outside and talk to the core through Editor.
package pawnpad
