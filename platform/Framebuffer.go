package platform

import (
	"fmt"

	"CalcPong/core"
)

// Framebuffer is a two color, double buffered pixel surface. Drawing goes to
// the back buffer; Swap exchanges the buffers and hands the new front buffer
// to the presenter.
type Framebuffer struct {
	width, height int
	back, front   []bool
	present       func(*Framebuffer)
}

func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		back:   make([]bool, width*height),
		front:  make([]bool, width*height),
	}
}

// OnSwap registers the function that shows the front buffer.
func (f *Framebuffer) OnSwap(present func(*Framebuffer)) {
	f.present = present
}

func (f *Framebuffer) Size() (int, int) {
	return f.width, f.height
}

// Lit reports whether a front buffer pixel is white. Out of range is dark.
func (f *Framebuffer) Lit(x, y int) bool {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return false
	}
	return f.front[y*f.width+x]
}

func (f *Framebuffer) ZeroScreen() {
	for i := range f.back {
		f.back[i] = false
	}
}

// FillRect lights a rectangle, clipped to the screen.
func (f *Framebuffer) FillRect(x, y, width, height int) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+width, f.width), min(y+height, f.height)
	for row := y0; row < y1; row++ {
		line := f.back[row*f.width : (row+1)*f.width]
		for col := x0; col < x1; col++ {
			line[col] = true
		}
	}
}

func (f *Framebuffer) PrintUInt(x, y int, value uint, digits int) {
	f.PrintString(x, y, fmt.Sprintf("%0*d", digits, value))
}

func (f *Framebuffer) PrintString(x, y int, s string) {
	for i, ch := range []rune(s) {
		offsetX := x + i*core.CharWidth
		for _, cell := range GetCellsFromChar(ch) {
			f.FillRect(offsetX+cell[0], y+cell[1], 1, 1)
		}
	}
}

func (f *Framebuffer) Swap() {
	f.back, f.front = f.front, f.back
	if f.present != nil {
		f.present(f)
	}
}
