package core

// Events reports what happened to the ball during one frame.
type Events uint8

const (
	WallBounce Events = 1 << iota
	PlayerHit
	AiHit
	PlayerScored
	AiScored
)

func (e Events) Has(flag Events) bool {
	return e&flag != 0
}

const (
	// PlayerReach enlarges the player's hit band on both ends. The AI band
	// is the paddle's exact height.
	PlayerReach = 4
	HitBias     = 0.2
	SpinDivisor = 16.0
)

// MoveBall advances the ball one frame: move, bounce off the top and bottom,
// deflect off paddles, then score and relaunch if it left the court.
func MoveBall(s *GameState, d Display) Events {
	b := &s.Ball
	b.Move()

	var ev Events

	//上下牆壁
	if isCollidesWithWall(b) {
		b.VelY = -b.VelY
		ev |= WallBounce
	}

	ev |= BallCollide(s)

	if isBallOutside(b) {
		if b.X-BallRadius <= 0 {
			s.Score.AiPoint()
			ev |= AiScored
		} else {
			s.Score.PlayerPoint()
			ev |= PlayerScored
		}
		s.ResetBall()
	}

	b.Draw(d)
	return ev
}

// BallCollide runs the player test then the AI test. Both may fire in the
// same frame and their effects compound.
func BallCollide(s *GameState) Events {
	b := &s.Ball
	var ev Events

	top, bottom := PlayerBand(s.Player)
	if b.X-BallRadius <= float64(s.Player.Col+PaddleWidth) && b.Y >= top && b.Y <= bottom {
		b.VelX = -b.VelX + HitBias
		b.VelY += spin(b, s.Player)
		ev |= PlayerHit
	}

	top, bottom = AiBand(s.Ai)
	if b.X+BallRadius >= float64(s.Ai.Col) && b.Y >= top && b.Y <= bottom {
		b.VelX = -b.VelX - HitBias
		b.VelY += spin(b, s.Ai)
		ev |= AiHit
	}

	return ev
}

// PlayerBand is the vertical range, inclusive, in which the player paddle
// returns the ball.
func PlayerBand(p Paddle) (float64, float64) {
	return float64(p.Pos - PlayerReach), float64(p.Pos + PaddleHeight + PlayerReach)
}

// AiBand is the AI paddle's exact vertical extent, inclusive.
func AiBand(p Paddle) (float64, float64) {
	return float64(p.Pos), float64(p.Pos + PaddleHeight)
}

func spin(b *Ball, p Paddle) float64 {
	return (b.Y - float64(p.Center())) / SpinDivisor
}

func isCollidesWithWall(b *Ball) bool {
	return b.Y-BallRadius <= 0 || b.Y+BallRadius >= ScreenHeight
}

func isBallOutside(b *Ball) bool {
	return b.X-BallRadius <= 0 || b.X+BallRadius >= ScreenWidth
}
