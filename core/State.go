package core

import (
	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

const (
	BallSpeed = 3.0
	// 垂直速度的量化格數
	VelocitySteps = 32
)

// GameState is everything one match mutates. It is owned by Game and
// passed by reference to every update routine.
type GameState struct {
	Player  Paddle
	Ai      Paddle
	Ball    Ball
	Score   Score
	MatchId string

	rng *rand.Rand
}

func NewGameState(rng *rand.Rand) *GameState {
	s := &GameState{
		Player:  Paddle{Col: PlayerCol},
		Ai:      Paddle{Col: AiCol},
		MatchId: uuid.NewString(),
		rng:     rng,
	}
	s.ResetBall()
	return s
}

// ResetBall puts the ball back at screen center with a fresh launch velocity.
func (s *GameState) ResetBall() {
	s.Ball.X = ScreenWidth / 2
	s.Ball.Y = ScreenHeight / 2
	s.Ball.VelX, s.Ball.VelY = RandomVelocity(s.rng)
}

// RandomVelocity picks a horizontal direction at a fixed speed and a shallow
// vertical component quantized to VelocitySteps.
func RandomVelocity(rng *rand.Rand) (float64, float64) {
	bit := float64(rng.Intn(2))
	step := float64(rng.Intn(VelocitySteps))
	velX := (bit - 0.5) * BallSpeed
	velY := (step/VelocitySteps - 0.5) * BallSpeed
	return velX, velY
}
