package platform

import (
	"testing"

	"CalcPong/core"

	"github.com/gdamore/tcell"
)

func newSimTerminal(t *testing.T, cols, rows, holdTicks int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	return NewTerminalOnScreen(screen, holdTicks), screen
}

func cellAt(screen tcell.SimulationScreen, x, y int) rune {
	cells, width, _ := screen.GetContents()
	c := cells[y*width+x]
	if len(c.Runes) == 0 {
		return cellEmpty
	}
	return c.Runes[0]
}

func TestPresentUsesHalfBlocks(t *testing.T) {
	term, screen := newSimTerminal(t, 80, 30, DefaultHoldTicks)
	fb := NewFramebuffer(core.ScreenWidth, core.ScreenHeight)

	// 80x30 cells over 320x240 pixels: each half cell is 4x4 pixels.
	fb.FillRect(0, 0, 4, 4)
	fb.FillRect(4, 4, 4, 4)
	fb.FillRect(8, 0, 4, 8)
	fb.Swap()
	term.Present(fb)

	tests := []struct {
		x, y int
		want rune
	}{
		{0, 0, cellTop},
		{1, 0, cellBottom},
		{2, 0, cellFull},
		{3, 0, cellEmpty},
		{0, 1, cellEmpty},
	}
	for _, tt := range tests {
		if got := cellAt(screen, tt.x, tt.y); got != tt.want {
			t.Errorf("cell (%d,%d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPresentAsSwapHook(t *testing.T) {
	term, screen := newSimTerminal(t, 80, 30, DefaultHoldTicks)
	fb := NewFramebuffer(core.ScreenWidth, core.ScreenHeight)
	fb.OnSwap(term.Present)

	fb.FillRect(core.AiCol, 0, core.PaddleWidth, core.PaddleHeight)
	fb.Swap()

	if got := cellAt(screen, core.AiCol/4, 0); got != cellFull {
		t.Errorf("AI paddle cell = %q, want %q", got, cellFull)
	}
}

func TestScanHoldsKeys(t *testing.T) {
	term, _ := newSimTerminal(t, 80, 30, 2)

	term.events <- tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
	term.events <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)

	for i := 0; i < 2; i++ {
		keys := term.Scan()
		if !keys.Up || !keys.Clear {
			t.Fatalf("scan %d: keys = %+v, want Up and Clear held", i, keys)
		}
		if keys.Down || keys.Enter {
			t.Errorf("scan %d: unexpected keys %+v", i, keys)
		}
	}

	if keys := term.Scan(); keys != (core.Keys{}) {
		t.Errorf("keys still held after hold expired: %+v", keys)
	}
}

func TestKeyMapping(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want core.Keys
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.Keys{Up: true}},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), core.Keys{Down: true}},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), core.Keys{Up: true}},
		{"s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), core.Keys{Down: true}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), core.Keys{Enter: true}},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), core.Keys{Enter: true}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.Keys{Clear: true}},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), core.Keys{Clear: true}},
		{"other", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), core.Keys{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, _ := newSimTerminal(t, 80, 30, 1)
			term.events <- tt.ev
			if got := term.Scan(); got != tt.want {
				t.Errorf("keys = %+v, want %+v", got, tt.want)
			}
		})
	}
}
