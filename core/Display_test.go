package core

import (
	"fmt"
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

// recordDisplay logs every draw call as a line of text.
type recordDisplay struct {
	ops []string
}

func (r *recordDisplay) ZeroScreen() {
	r.ops = append(r.ops, "zero")
}

func (r *recordDisplay) FillRect(x, y, width, height int) {
	r.ops = append(r.ops, fmt.Sprintf("rect %d %d %d %d", x, y, width, height))
}

func (r *recordDisplay) PrintUInt(x, y int, value uint, digits int) {
	r.ops = append(r.ops, fmt.Sprintf("uint %d %d %0*d", x, y, digits, value))
}

func (r *recordDisplay) PrintString(x, y int, s string) {
	r.ops = append(r.ops, fmt.Sprintf("text %d %d %s", x, y, s))
}

func (r *recordDisplay) Swap() {
	r.ops = append(r.ops, "swap")
}

func (r *recordDisplay) has(op string) bool {
	for _, o := range r.ops {
		if o == op {
			return true
		}
	}
	return false
}

func newTestState(seed uint64) *GameState {
	return NewGameState(rand.New(rand.NewSource(seed)))
}

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}
