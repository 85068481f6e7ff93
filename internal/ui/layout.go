package ui

import (
	"image"

	"rtlife/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	infoHeight     = 18
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + 14

	// MinHUDHeight is the smallest panel height that fits the key help.
	MinHUDHeight = 360
)

var keyHelp = []string{
	"Up/Down  rate",
	"Space    pause",
	"C        clear",
	"R / S    reseed",
	"G        grid lines",
	"LMB/RMB  paint/flip",
	"Q        quit",
}

// adjust returns the value one step from current in direction dir, clamped to
// the control's bounds, and whether it differs from current.
func adjust(ctrl core.ParameterControl, current, dir int) (int, bool) {
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := current + dir*step
	if target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.Max > ctrl.Min && target > ctrl.Max {
		target = ctrl.Max
	}
	return target, target != current
}

// controlRects lays out the minus and plus buttons of control row i on a panel
// of the given width.
func controlRects(width, i int) (top int, minus, plus image.Rectangle) {
	top = controlsTop + i*lineHeight
	buttonY := top + (lineHeight-buttonSize)/2
	plus = image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
	minus = image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
	return top, minus, plus
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// hoveredCell maps a cursor position to a cell of an n×n board drawn at scale.
func hoveredCell(x, y, n, scale int) (row, col int, ok bool) {
	if scale <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/scale, x/scale
	if row >= n || col >= n {
		return 0, 0, false
	}
	return row, col, true
}
