package ui

import (
	"testing"

	"rtlife/internal/core"
)

func TestAdjustClampsToBounds(t *testing.T) {
	ctrl := core.ParameterControl{Key: "hz", Step: 1, Min: 1, Max: 60}
	cases := []struct {
		current, dir, want int
		changed            bool
	}{
		{10, 1, 11, true},
		{10, -1, 9, true},
		{60, 1, 60, false},
		{1, -1, 1, false},
	}
	for _, tc := range cases {
		got, changed := adjust(ctrl, tc.current, tc.dir)
		if got != tc.want || changed != tc.changed {
			t.Fatalf("adjust(%d, %d) = %d,%v, want %d,%v", tc.current, tc.dir, got, changed, tc.want, tc.changed)
		}
	}

	if got, _ := adjust(core.ParameterControl{Min: 1}, 5, 1); got != 6 {
		t.Fatalf("zero step should default to 1, got %d", got)
	}
}

func TestControlRectsDoNotOverlap(t *testing.T) {
	top, minus, plus := controlRects(200, 1)
	if top != controlsTop+lineHeight {
		t.Fatalf("top = %d, want %d", top, controlsTop+lineHeight)
	}
	if minus.Overlaps(plus) {
		t.Fatalf("minus %v overlaps plus %v", minus, plus)
	}
	if plus.Max.X != 200-panelPadding {
		t.Fatalf("plus button right edge = %d, want %d", plus.Max.X, 200-panelPadding)
	}
	if !pointInRect(plus.Min.X, plus.Min.Y, plus) || pointInRect(plus.Max.X, plus.Max.Y, plus) {
		t.Fatal("pointInRect must include Min and exclude Max")
	}
}

func TestHoveredCell(t *testing.T) {
	if _, _, ok := hoveredCell(-3, 4, 8, 10); ok {
		t.Fatal("negative cursor mapped to a cell")
	}
	if _, _, ok := hoveredCell(80, 5, 8, 10); ok {
		t.Fatal("cursor past the board mapped to a cell")
	}
	row, col, ok := hoveredCell(79, 15, 8, 10)
	if !ok || row != 1 || col != 7 {
		t.Fatalf("hoveredCell(79,15) = %d,%d,%v, want 1,7,true", row, col, ok)
	}
}
