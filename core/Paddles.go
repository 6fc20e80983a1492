package core

// MovePlayer applies the held direction keys to the player paddle and draws
// it. Down is applied before up, so holding both leaves it in place.
func MovePlayer(s *GameState, keys Keys, d Display) {
	if keys.Down {
		s.Player.MoveDown()
	}
	if keys.Up {
		s.Player.MoveUp()
	}
	s.Player.Draw(d)
}

// MoveAi steps the AI paddle toward the ball's height and draws it.
func MoveAi(s *GameState, d Display) {
	center := float64(s.Ai.Center())
	if s.Ball.Y < center {
		s.Ai.MoveUp()
	} else if s.Ball.Y > center {
		s.Ai.MoveDown()
	}
	s.Ai.Draw(d)
}
