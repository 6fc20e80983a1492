//go:build !window

package platform

import "CalcPong/core"

func RunWindow(title string, scale, tickRate int, fb *Framebuffer, step func(core.Keys) bool) error {
	return ErrWindowUnavailable
}
