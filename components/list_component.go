package components

// ListComponent is a selectable list with a scrolling window of visible
// items, used for popups such as completion suggestions.
type ListComponent[T any] struct {
	VisibleStart int
	Items        []T
	Selection    int
}

// SetItems replaces the items and resets selection and scroll.
func (l *ListComponent[T]) SetItems(items []T) {
	l.Items = items
	l.Selection = 0
	l.VisibleStart = 0
}

// Selected returns the selected item, false when the list is empty.
func (l *ListComponent[T]) Selected() (T, bool) {
	if l.Selection < 0 || l.Selection >= len(l.Items) {
		return *new(T), false
	}
	return l.Items[l.Selection], true
}

// NextItem moves the selection down, wrapping to the first item.
func (l *ListComponent[T]) NextItem() {
	if len(l.Items) == 0 {
		return
	}
	l.Selection++
	if l.Selection >= len(l.Items) {
		l.Selection = 0
	}
}

// PrevItem moves the selection up, wrapping to the last item.
func (l *ListComponent[T]) PrevItem() {
	if len(l.Items) == 0 {
		return
	}
	l.Selection--
	if l.Selection < 0 {
		l.Selection = len(l.Items) - 1
	}
}

// VisibleView returns at most maxLine items, scrolled so that the selection
// is among them.
func (l *ListComponent[T]) VisibleView(maxLine int) []T {
	if maxLine <= 0 {
		return nil
	}
	if l.Selection < l.VisibleStart {
		l.VisibleStart = l.Selection
	}
	if l.Selection >= l.VisibleStart+maxLine {
		l.VisibleStart = l.Selection - maxLine + 1
	}
	if l.VisibleStart < 0 {
		l.VisibleStart = 0
	}
	if l.VisibleStart > len(l.Items) {
		l.VisibleStart = len(l.Items)
	}

	if len(l.Items) > l.VisibleStart+maxLine {
		return l.Items[l.VisibleStart : l.VisibleStart+maxLine]
	}
	return l.Items[l.VisibleStart:]
}
