package pawnpad

import (
	"fmt"
	"math"
)

// ScrollView is a vertically scrolling surface owned by the rendering layer.
type ScrollView interface {
	// Realized is false until the view exists on screen.
	Realized() bool
	// YView returns the visible part of the document as top and bottom
	// fractions in [0, 1].
	YView() (top, bottom float64)
	YViewMoveTo(fraction float64)
	YViewScroll(units int)
}

// Gutter is the line-number column next to the content view.
type Gutter interface {
	ScrollView
	SetLabels(labels []string)
}

// LineLabels returns the gutter labels "  1".."  n", at least one.
func LineLabels(lineCount int) []string {
	if lineCount < 1 {
		lineCount = 1
	}
	labels := make([]string, lineCount)
	for i := range labels {
		labels[i] = fmt.Sprintf("%3d", i+1)
	}
	return labels
}

// MirrorScroll is the gutter's scroll fraction for a content fraction.
func MirrorScroll(fraction float64) float64 {
	switch {
	case math.IsNaN(fraction), fraction < 0:
		return 0
	case fraction > 1:
		return 1
	}
	return fraction
}

// WheelDelta converts a mouse wheel event into scroll units. Windows reports
// multiples of 120 in delta, X11 reports button 4 (up) or 5 (down).
func WheelDelta(delta int, button int) int {
	if delta != 0 {
		return -delta / 120
	}
	switch button {
	case 4:
		return -1
	case 5:
		return 1
	}
	return 0
}

// ViewSync keeps the gutter's labels and scroll offset in lockstep with the
// content view. The content view is the only source of the scroll offset.
type ViewSync struct {
	content ScrollView
	gutter  Gutter
}

func (v *ViewSync) Attach(content ScrollView, gutter Gutter) {
	v.content = content
	v.gutter = gutter
}

func (v *ViewSync) realized() bool {
	return v.content != nil && v.gutter != nil && v.content.Realized() && v.gutter.Realized()
}

// UpdateLabels renumbers the gutter and re-mirrors the scroll offset.
func (v *ViewSync) UpdateLabels(lineCount int) {
	if !v.realized() {
		return
	}
	v.gutter.SetLabels(LineLabels(lineCount))
	v.Sync()
}

// OnContentScroll is the content view's scroll callback.
func (v *ViewSync) OnContentScroll(top float64) {
	if !v.realized() {
		return
	}
	v.gutter.YViewMoveTo(MirrorScroll(top))
}

// Sync copies the content view's current offset to the gutter.
func (v *ViewSync) Sync() {
	if !v.realized() {
		return
	}
	top, _ := v.content.YView()
	v.gutter.YViewMoveTo(MirrorScroll(top))
}

// ScrollUnits scrolls the content view and mirrors the result before
// returning.
func (v *ViewSync) ScrollUnits(units int) error {
	if !v.realized() {
		return ErrInvalidState
	}
	v.content.YViewScroll(units)
	v.Sync()
	return nil
}
