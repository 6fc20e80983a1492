//go:build window

package platform

import (
	"CalcPong/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// 調色盤：黑、白
var palette = [2][4]byte{
	{0x00, 0x00, 0x00, 0xff},
	{0xff, 0xff, 0xff, 0xff},
}

type window struct {
	fb     *Framebuffer
	step   func(core.Keys) bool
	pixels []byte
}

// RunWindow opens a pixel window and calls step once per tick until it
// returns false or the window is closed.
func RunWindow(title string, scale, tickRate int, fb *Framebuffer, step func(core.Keys) bool) error {
	width, height := fb.Size()
	ebiten.SetWindowSize(width*scale, height*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(tickRate)

	w := &window{
		fb:     fb,
		step:   step,
		pixels: make([]byte, width*height*4),
	}
	err := ebiten.RunGame(w)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

func (w *window) Update() error {
	if !w.step(scanWindowKeys()) {
		return ebiten.Termination
	}
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	width, height := w.fb.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			color := palette[0]
			if w.fb.Lit(x, y) {
				color = palette[1]
			}
			copy(w.pixels[(y*width+x)*4:], color[:])
		}
	}
	screen.WritePixels(w.pixels)
}

func (w *window) Layout(_, _ int) (int, int) {
	return w.fb.Size()
}

func scanWindowKeys() core.Keys {
	return core.Keys{
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Enter: ebiten.IsKeyPressed(ebiten.KeyEnter) || ebiten.IsKeyPressed(ebiten.KeySpace),
		Clear: ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyBackspace) ||
			ebiten.IsKeyPressed(ebiten.KeyQ),
	}
}
