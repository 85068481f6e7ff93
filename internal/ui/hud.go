//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"rtlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
)

// HUD renders the parameter panel to the right of the board.
type HUD struct {
	src      core.ParameterProvider
	setter   core.IntParameterSetter
	title    string
	width    int
	panel    *ebiten.Image
	pixel    *ebiten.Image
	snapshot core.ParameterSnapshot
	controls []hudControlState
	offsetX  int
}

type hudControlState struct {
	control  core.ParameterControl
	value    int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD reading from src. When src also implements
// core.ParameterControlsProvider and core.IntParameterSetter its controls get
// clickable -/+ buttons.
func NewHUD(src core.ParameterProvider, title string, width int) *HUD {
	h := &HUD{src: src, title: title, width: width}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	if setter, ok := src.(core.IntParameterSetter); ok {
		h.setter = setter
	}
	if provider, ok := src.(core.ParameterControlsProvider); ok {
		for i, ctrl := range provider.ParameterControls() {
			top, minus, plus := controlRects(width, i)
			h.controls = append(h.controls, hudControlState{control: ctrl, top: top, minusRect: minus, plusRect: plus})
		}
	}
	return h
}

// Update refreshes the snapshot and handles clicks on the panel, which starts
// at panelOffsetX in screen coordinates.
func (h *HUD) Update(panelOffsetX int) {
	h.offsetX = panelOffsetX
	h.snapshot = h.src.Parameters()
	for i := range h.controls {
		state := &h.controls[i]
		p, ok := h.snapshot.Lookup(state.control.Key)
		state.hasValue = false
		if !ok {
			continue
		}
		if v, err := strconv.Atoi(p.Value); err == nil {
			state.value = v
			state.hasValue = true
		}
	}

	if h.setter == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.offsetX
	if px < 0 {
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		dir := 0
		switch {
		case pointInRect(px, my, state.minusRect):
			dir = -1
		case pointInRect(px, my, state.plusRect):
			dir = 1
		default:
			continue
		}
		if target, ok := adjust(state.control, state.value, dir); ok && h.setter.SetIntParameter(state.control.Key, target) {
			state.value = target
		}
		return
	}
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	height := screen.Bounds().Dy()
	if h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)

	for i := range h.controls {
		state := &h.controls[i]
		y := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, y, labelColor)
		value := "--"
		if state.hasValue {
			value = strconv.Itoa(state.value)
		}
		w := text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, state.minusRect.Min.X-buttonGap-w, y, labelColor)
		_, canDown := adjust(state.control, state.value, -1)
		_, canUp := adjust(state.control, state.value, 1)
		h.drawButton(state.minusRect, "-", state.hasValue && canDown)
		h.drawButton(state.plusRect, "+", state.hasValue && canUp)
	}

	y := controlsTop + len(h.controls)*lineHeight + infoHeight
	for _, p := range h.snapshot.Params {
		if h.isControl(p.Key) {
			continue
		}
		text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding, y, labelColor)
		y += infoHeight
	}
	y += infoHeight
	for _, line := range keyHelp {
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
		y += infoHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) isControl(key string) bool {
	for i := range h.controls {
		if h.controls[i].control.Key == key {
			return true
		}
	}
	return false
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
