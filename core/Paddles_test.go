package core

import (
	"strconv"
	"testing"

	"golang.org/x/exp/rand"
)

func TestPaddlesStayOnScreen(t *testing.T) {
	s := newTestState(3)
	input := rand.New(rand.NewSource(99))
	d := &recordDisplay{}

	for frame := 0; frame < 5000; frame++ {
		keys := Keys{Up: input.Intn(3) == 0, Down: input.Intn(2) == 0}
		MovePlayer(s, keys, d)
		MoveBall(s, d)
		MoveAi(s, d)

		for _, p := range []Paddle{s.Player, s.Ai} {
			if p.Pos < 0 || p.Pos > MaxPaddlePos {
				t.Fatalf("frame %d: paddle at %d outside [0,%d]", frame, p.Pos, MaxPaddlePos)
			}
		}
	}
}

func TestMovePlayer(t *testing.T) {
	tests := []struct {
		name  string
		start int
		keys  Keys
		want  int
	}{
		{"idle", 100, Keys{}, 100},
		{"up", 100, Keys{Up: true}, 98},
		{"down", 100, Keys{Down: true}, 102},
		{"both", 100, Keys{Up: true, Down: true}, 100},
		{"top edge", 0, Keys{Up: true}, 0},
		{"bottom edge", MaxPaddlePos, Keys{Down: true}, MaxPaddlePos},
		{"near top", 1, Keys{Up: true}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(1)
			s.Player.Pos = tt.start
			d := &recordDisplay{}

			MovePlayer(s, tt.keys, d)

			if s.Player.Pos != tt.want {
				t.Errorf("Pos = %d, want %d", s.Player.Pos, tt.want)
			}
			if len(d.ops) != 1 {
				t.Fatalf("expected one draw, got %v", d.ops)
			}
		})
	}
}

func TestMoveAiFollowsBall(t *testing.T) {
	tests := []struct {
		name  string
		start int
		ballY float64
		want  int
	}{
		{"ball above", 100, 50, 98},
		{"ball below", 100, 200, 102},
		{"ball level", 100, 124, 100},
		{"pinned top", 0, 5, 0},
		{"pinned bottom", MaxPaddlePos, 239, MaxPaddlePos},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(1)
			s.Ai.Pos = tt.start
			s.Ball.Y = tt.ballY
			d := &recordDisplay{}

			MoveAi(s, d)

			if s.Ai.Pos != tt.want {
				t.Errorf("Pos = %d, want %d", s.Ai.Pos, tt.want)
			}
			if !d.has("rect 312 " + strconv.Itoa(tt.want) + " 4 48") {
				t.Errorf("AI paddle not drawn at %d: %v", tt.want, d.ops)
			}
		})
	}
}
