package pawnpad

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineLabels(t *testing.T) {
	assert.Equal(t, []string{"  1"}, LineLabels(0))
	assert.Equal(t, []string{"  1", "  2", "  3"}, LineLabels(3))

	labels := LineLabels(1200)
	assert.Len(t, labels, 1200)
	assert.Equal(t, " 99", labels[98])
	assert.Equal(t, "1200", labels[1199])
}

func TestMirrorScroll(t *testing.T) {
	assert.Equal(t, 0.25, MirrorScroll(0.25))
	assert.Equal(t, 0.0, MirrorScroll(-1))
	assert.Equal(t, 1.0, MirrorScroll(3))
	assert.Equal(t, 0.0, MirrorScroll(math.NaN()))
}

func TestWheelDelta(t *testing.T) {
	assert.Equal(t, -1, WheelDelta(120, 0))
	assert.Equal(t, 2, WheelDelta(-240, 0))
	assert.Equal(t, -1, WheelDelta(0, 4))
	assert.Equal(t, 1, WheelDelta(0, 5))
	assert.Equal(t, 0, WheelDelta(0, 1))
}

func TestVirtualView(t *testing.T) {
	v := NewVirtualView(10)
	v.SetLineCount(100)

	top, bottom := v.YView()
	assert.Equal(t, 0.0, top)
	assert.Equal(t, 0.1, bottom)

	v.YViewScroll(5)
	assert.Equal(t, 5, v.TopLine())
	v.YViewScroll(1000)
	assert.Equal(t, 90, v.TopLine())
	v.YViewScroll(-1000)
	assert.Equal(t, 0, v.TopLine())

	v.YViewMoveTo(0.5)
	assert.Equal(t, 50, v.TopLine())

	v.SetLineCount(20)
	assert.Equal(t, 10, v.TopLine(), "shrinking clamps the top line")
}

func realizedViews(rows, lines int) (*VirtualView, *VirtualView) {
	content, gutter := NewVirtualView(rows), NewVirtualView(rows)
	content.SetLineCount(lines)
	content.Realize()
	gutter.Realize()
	return content, gutter
}

func TestViewSyncUnrealizedIsNoop(t *testing.T) {
	var vs ViewSync
	vs.UpdateLabels(5)
	vs.OnContentScroll(0.5)
	vs.Sync()
	assert.ErrorIs(t, vs.ScrollUnits(1), ErrInvalidState)

	content, gutter := NewVirtualView(10), NewVirtualView(10)
	vs.Attach(content, gutter)
	vs.UpdateLabels(5)
	assert.Empty(t, gutter.Labels())
	assert.ErrorIs(t, vs.ScrollUnits(1), ErrInvalidState)
}

func TestViewSyncKeepsGutterAligned(t *testing.T) {
	content, gutter := realizedViews(10, 100)
	var vs ViewSync
	vs.Attach(content, gutter)
	vs.UpdateLabels(100)
	require.Len(t, gutter.Labels(), 100)

	for _, units := range []int{3, 7, 50, -20, 1000, -1000, 12} {
		require.NoError(t, vs.ScrollUnits(units))
		assert.Equal(t, content.TopLine(), gutter.TopLine(), fmt.Sprintf("after scrolling %d", units))
	}

	content.YViewMoveTo(0.42)
	top, _ := content.YView()
	vs.OnContentScroll(top)
	assert.Equal(t, content.TopLine(), gutter.TopLine())
}

func TestViewSyncRelabelsOnLineCountChange(t *testing.T) {
	content, gutter := realizedViews(10, 30)
	var vs ViewSync
	vs.Attach(content, gutter)
	vs.UpdateLabels(30)
	require.NoError(t, vs.ScrollUnits(20))

	content.SetLineCount(15)
	vs.UpdateLabels(15)
	assert.Len(t, gutter.Labels(), 15)
	assert.Equal(t, content.TopLine(), gutter.TopLine())
}

func TestMirrorScrollIsIdempotent(t *testing.T) {
	for _, f := range []float64{-0.5, 0, 0.3, 1, 1.7, math.Inf(1), math.Inf(-1)} {
		once := MirrorScroll(f)
		assert.Equal(t, once, MirrorScroll(once))
		assert.True(t, once >= 0 && once <= 1)
	}
	assert.Equal(t, 0.0, MirrorScroll(-0.5))
	assert.Equal(t, 1.0, MirrorScroll(1.7))
}
