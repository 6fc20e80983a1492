package core

// MaxScore is the largest value the three digit score field shows. Counters
// saturate there instead of wrapping.
const MaxScore = 999

const ScoreDigits = 3

// Score positions on screen.
const (
	PlayerScoreX = 16
	AiScoreX     = ScreenWidth - 48
	ScoreY       = 4
)

type Score struct {
	Player uint16
	Ai     uint16
}

func (s *Score) PlayerPoint() {
	s.Player = addPoint(s.Player)
}

func (s *Score) AiPoint() {
	s.Ai = addPoint(s.Ai)
}

func addPoint(v uint16) uint16 {
	if v >= MaxScore {
		return MaxScore
	}
	return v + 1
}

func DrawScore(d Display, s Score) {
	d.PrintUInt(PlayerScoreX, ScoreY, uint(s.Player), ScoreDigits)
	d.PrintUInt(AiScoreX, ScoreY, uint(s.Ai), ScoreDigits)
}
