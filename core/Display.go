package core

// Text cell size of the display font.
const (
	CharWidth  = 8
	CharHeight = 8
)

// Display is the monochrome draw surface. Drawing goes to a back buffer
// that becomes visible on Swap.
type Display interface {
	ZeroScreen()
	FillRect(x, y, width, height int)
	// PrintUInt prints value zero-padded to digits characters.
	PrintUInt(x, y int, value uint, digits int)
	PrintString(x, y int, s string)
	Swap()
}

// Keys is one snapshot of the keypad.
type Keys struct {
	Up, Down     bool
	Enter, Clear bool
}

type Keypad interface {
	Scan() Keys
}

// Sound receives the physics events of each played frame.
type Sound interface {
	Play(ev Events)
}

type NopSound struct{}

func (NopSound) Play(Events) {}
