package platform

import (
	"fmt"

	"CalcPong/core"

	"github.com/gdamore/tcell"
)

// Half block characters let one terminal cell show two stacked pixels.
const (
	cellEmpty  = ' '
	cellTop    = '▀'
	cellBottom = '▄'
	cellFull   = '█'
)

// Terminals only report key presses, so a key counts as held for
// DefaultHoldTicks ticks after its last press or autorepeat.
const DefaultHoldTicks = 6

// Terminal is the tcell backed keypad and presenter.
type Terminal struct {
	screen    tcell.Screen
	events    chan tcell.Event
	holdTicks int
	held      map[key]int
}

type key int

const (
	keyUp key = iota
	keyDown
	keyEnter
	keyClear
)

func NewTerminal(holdTicks int) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	return NewTerminalOnScreen(screen, holdTicks), nil
}

// NewTerminalOnScreen wraps an already initialized screen.
func NewTerminalOnScreen(screen tcell.Screen, holdTicks int) *Terminal {
	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
	screen.HideCursor()

	return &Terminal{
		screen:    screen,
		events:    make(chan tcell.Event, 64),
		holdTicks: holdTicks,
		held:      make(map[key]int),
	}
}

// Listen starts the goroutine that polls terminal events into the channel
// drained by Scan.
func (t *Terminal) Listen() {
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			t.events <- ev
		}
	}()
}

// Scan drains pending events without blocking and returns the held keys.
func (t *Terminal) Scan() core.Keys {
	for k := range t.held {
		t.held[k]--
		if t.held[k] <= 0 {
			delete(t.held, k)
		}
	}

drain:
	for {
		select {
		case ev := <-t.events:
			t.handle(ev)
		default:
			break drain
		}
	}

	return core.Keys{
		Up:    t.held[keyUp] > 0,
		Down:  t.held[keyDown] > 0,
		Enter: t.held[keyEnter] > 0,
		Clear: t.held[keyClear] > 0,
	}
}

func (t *Terminal) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		if k, ok := mapKey(ev); ok {
			t.held[k] = t.holdTicks
		}
	}
}

func mapKey(ev *tcell.EventKey) (key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return keyUp, true
	case tcell.KeyDown:
		return keyDown, true
	case tcell.KeyEnter:
		return keyEnter, true
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete, tcell.KeyCtrlC:
		return keyClear, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return keyUp, true
		case 's', 'S':
			return keyDown, true
		case ' ':
			return keyEnter, true
		case 'q', 'Q':
			return keyClear, true
		}
	}
	return 0, false
}

// Present scales the front buffer down onto the terminal. Each cell covers a
// block of pixels and lights its upper or lower half when any pixel in that
// half is lit.
func (t *Terminal) Present(fb *Framebuffer) {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	width, height := fb.Size()
	scaleX := ceilDiv(width, cols)
	scaleY := ceilDiv(height, rows*2)

	t.screen.Clear()
	for row := 0; row < rows; row++ {
		top := row * 2 * scaleY
		if top >= height {
			break
		}
		for col := 0; col < cols; col++ {
			left := col * scaleX
			if left >= width {
				break
			}
			upper := anyLit(fb, left, top, scaleX, scaleY)
			lower := anyLit(fb, left, top+scaleY, scaleX, scaleY)
			t.screen.SetContent(col, row, halfBlock(upper, lower), nil, tcell.StyleDefault)
		}
	}
	t.screen.Show()
}

func (t *Terminal) Close() {
	t.screen.Fini()
}

func anyLit(fb *Framebuffer, x, y, width, height int) bool {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			if fb.Lit(col, row) {
				return true
			}
		}
	}
	return false
}

func halfBlock(upper, lower bool) rune {
	switch {
	case upper && lower:
		return cellFull
	case upper:
		return cellTop
	case lower:
		return cellBottom
	}
	return cellEmpty
}

func ceilDiv(a, b int) int {
	n := (a + b - 1) / b
	if n < 1 {
		return 1
	}
	return n
}
