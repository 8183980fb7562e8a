package pawnpad

import "math"

// VirtualView is a headless ScrollView and Gutter: a window of rows visible
// lines over a document of some number of lines. Tests and the CLI use it in
// place of real widgets.
type VirtualView struct {
	lines    int
	rows     int
	top      int
	realized bool
	labels   []string
}

func NewVirtualView(rows int) *VirtualView {
	if rows < 1 {
		rows = 1
	}
	return &VirtualView{lines: 1, rows: rows}
}

// Realize makes the view usable, like a widget being mapped on screen.
func (v *VirtualView) Realize() { v.realized = true }

func (v *VirtualView) Realized() bool { return v.realized }

func (v *VirtualView) SetLineCount(n int) {
	if n < 1 {
		n = 1
	}
	v.lines = n
	v.clampTop()
}

func (v *VirtualView) SetLabels(labels []string) {
	v.labels = labels
	v.SetLineCount(len(labels))
}

func (v *VirtualView) Labels() []string { return v.labels }

// TopLine is the 0-based index of the first visible line.
func (v *VirtualView) TopLine() int { return v.top }

func (v *VirtualView) YView() (float64, float64) {
	top := float64(v.top) / float64(v.lines)
	bottom := math.Min(1, float64(v.top+v.rows)/float64(v.lines))
	return top, bottom
}

func (v *VirtualView) YViewMoveTo(fraction float64) {
	v.top = int(math.Round(MirrorScroll(fraction) * float64(v.lines)))
	v.clampTop()
}

func (v *VirtualView) YViewScroll(units int) {
	v.top += units
	v.clampTop()
}

func (v *VirtualView) clampTop() {
	last := v.lines - v.rows
	if last < 0 {
		last = 0
	}
	if v.top > last {
		v.top = last
	}
	if v.top < 0 {
		v.top = 0
	}
}
