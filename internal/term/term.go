// Package term is the terminal front end: it draws the board with tcell and
// maps key and mouse events onto board edits and rate changes.
package term

import (
	"context"
	"fmt"
	"time"

	"rtlife/internal/core"
	"rtlife/internal/rate"

	"github.com/gdamore/tcell/v2"
)

// Board is the surface the terminal needs from a running session.
type Board interface {
	Size() int
	Frame(dst []uint32) []uint32
	Rate() rate.Rate
	Generation() uint64

	Faster() bool
	Slower() bool
	TogglePause() bool
	Clear()
	Paint(row, col int)
	Flip(row, col int)
	Reseed()
	Reset(seed int64)
}

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Term renders a Board onto a tcell screen, two columns per cell.
type Term struct {
	screen  tcell.Screen
	board   Board
	refresh time.Duration
	frame   []uint32
	buttons tcell.ButtonMask
}

// New returns a Term redrawing tps times per second. screen must already be
// initialised.
func New(screen tcell.Screen, board Board, tps int) *Term {
	return &Term{screen: screen, board: board, refresh: core.Interval(tps)}
}

// Run handles events and redraws until the user quits (nil) or ctx is done.
func (t *Term) Run(ctx context.Context) error {
	t.screen.EnableMouse()
	t.screen.HideCursor()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go t.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(t.refresh)
	defer ticker.Stop()

	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if t.Handle(ev) {
				return nil
			}
		case <-ticker.C:
			t.Draw()
		}
	}
}

// Handle applies one event and reports whether the user asked to quit.
func (t *Term) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev)
	case *tcell.EventMouse:
		t.handleMouse(ev)
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return false
}

func (t *Term) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		t.board.Faster()
		return false
	case tcell.KeyDown:
		t.board.Slower()
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return true
	case '+', '=':
		t.board.Faster()
	case '-', '_':
		t.board.Slower()
	case ' ', 'p':
		t.board.TogglePause()
	case 'c', 'C':
		t.board.Clear()
	case 'r', 'R':
		t.board.Reseed()
	case 's', 'S':
		t.board.Reset(time.Now().UnixNano())
	}
	return false
}

func (t *Term) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons &^ t.buttons
	t.buttons = buttons

	x, y := ev.Position()
	row, col := y, x/2
	if row >= t.board.Size() || col >= t.board.Size() {
		return
	}
	if buttons&tcell.Button1 != 0 {
		t.board.Paint(row, col)
	}
	if pressed&tcell.Button2 != 0 {
		t.board.Flip(row, col)
	}
}

// Draw renders the current frame and a status line.
func (t *Term) Draw() {
	n := t.board.Size()
	t.frame = t.board.Frame(t.frame)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			style := deadStyle
			if t.frame[row*n+col] != core.Dead {
				style = aliveStyle
			}
			t.screen.SetContent(col*2, row, ' ', nil, style)
			t.screen.SetContent(col*2+1, row, ' ', nil, style)
		}
	}

	r := t.board.Rate()
	status := fmt.Sprintf("gen %d  %d Hz", t.board.Generation(), r.Hz)
	if r.Paused {
		status += "  paused"
	}
	status += "  [space] pause [up/down] rate [c] clear [r/s] reseed [q] quit"
	w, _ := t.screen.Size()
	for x := 0; x < w; x++ {
		ch := ' '
		if x < len(status) {
			ch = rune(status[x])
		}
		t.screen.SetContent(x, n, ch, nil, statusStyle)
	}
	t.screen.Show()
}
