package pawnpad

type Point struct{ X, Y int }

type Size struct{ Width, Height int }

type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Bottom() int { return r.Y + r.Height }

func (r Rect) Right() int { return r.X + r.Width }

const menuMargin = 5

// ComputeMenuPosition places a dropdown of size menu under anchor, left
// aligned with it. A menu that does not fit below the anchor opens above it;
// the result is then clamped so the menu stays inside screen.
func ComputeMenuPosition(anchor, screen Rect, menu Size) Point {
	p := Point{X: anchor.X, Y: anchor.Bottom() + menuMargin}

	if p.Y+menu.Height > screen.Bottom()-menuMargin {
		if above := anchor.Y - menuMargin - menu.Height; above >= screen.Y+menuMargin {
			p.Y = above
		}
	}

	p.X = clampInt(p.X, screen.X+menuMargin, screen.Right()-menuMargin-menu.Width)
	p.Y = clampInt(p.Y, screen.Y+menuMargin, screen.Bottom()-menuMargin-menu.Height)
	return p
}

// clampInt prefers lo when the range is empty.
func clampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
