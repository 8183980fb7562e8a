package pawnpad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMenuPosition(t *testing.T) {
	screen := Rect{X: 0, Y: 0, Width: 800, Height: 600}
	menu := Size{Width: 200, Height: 300}

	tests := []struct {
		name   string
		anchor Rect
		want   Point
	}{
		{"below anchor", Rect{X: 10, Y: 10, Width: 60, Height: 20}, Point{X: 10, Y: 35}},
		{"flipped above", Rect{X: 100, Y: 500, Width: 60, Height: 20}, Point{X: 100, Y: 195}},
		{"clamped right", Rect{X: 700, Y: 10, Width: 60, Height: 20}, Point{X: 595, Y: 35}},
		{"clamped left", Rect{X: -50, Y: 10, Width: 60, Height: 20}, Point{X: 5, Y: 35}},
		{"fits nowhere, clamped bottom", Rect{X: 10, Y: 250, Width: 60, Height: 100}, Point{X: 10, Y: 295}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeMenuPosition(tt.anchor, screen, menu))
		})
	}
}

func TestComputeMenuPositionLargerThanScreen(t *testing.T) {
	p := ComputeMenuPosition(Rect{X: 10, Y: 10, Width: 10, Height: 10}, Rect{Width: 100, Height: 100}, Size{Width: 500, Height: 500})
	assert.Equal(t, Point{X: 5, Y: 5}, p)
}
