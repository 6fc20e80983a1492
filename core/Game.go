package core

import (
	"fmt"

	"CalcPong/logger"

	"golang.org/x/exp/rand"
)

type Phase int

const (
	WaitingForStart Phase = iota
	Countdown
	Playing
	GameOver
	Exit
)

func (p Phase) String() string {
	switch p {
	case WaitingForStart:
		return "WaitingForStart"
	case Countdown:
		return "Countdown"
	case Playing:
		return "Playing"
	case GameOver:
		return "GameOver"
	case Exit:
		return "Exit"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

const CountdownFrom = 3

const (
	TitleText    = "PONG"
	PromptText   = "ENTER=PLAY CLEAR=QUIT"
	GameOverText = "GAME OVER"
)

// Game is the per-tick state machine wrapped around the match. The bare
// variant starts in Playing and exits on quit; the menu variant adds the
// title screen, countdown and game over screen.
type Game struct {
	State *GameState

	variant  Variant
	tickRate int
	phase    Phase

	count int // countdown number on screen
	timer int // ticks left before the timed phase moves on
	prev  Keys

	rng   *rand.Rand
	sound Sound
}

func NewGame(variant Variant, tickRate int, rng *rand.Rand, sound Sound) *Game {
	if sound == nil {
		sound = NopSound{}
	}
	g := &Game{
		State:    NewGameState(rng),
		variant:  variant,
		tickRate: tickRate,
		phase:    WaitingForStart,
		rng:      rng,
		sound:    sound,
	}
	if variant == VariantBare {
		g.phase = Playing
		logger.Log.WithMatch(g.State.MatchId).Info(logger.MatchStartMsg)
	}
	return g
}

func (g *Game) Phase() Phase {
	return g.phase
}

// Step advances one tick and draws it. It returns false once the game has
// reached Exit, in which case nothing is drawn.
func (g *Game) Step(keys Keys, d Display) bool {
	pressed := Keys{
		Up:    keys.Up && !g.prev.Up,
		Down:  keys.Down && !g.prev.Down,
		Enter: keys.Enter && !g.prev.Enter,
		Clear: keys.Clear && !g.prev.Clear,
	}
	g.prev = keys

	switch g.phase {
	case WaitingForStart:
		if pressed.Clear {
			g.enter(Exit)
		} else if pressed.Enter {
			g.enter(Countdown)
		}

	case Countdown:
		g.timer--
		if g.timer <= 0 {
			g.count--
			if g.count == 0 {
				g.enter(Playing)
			} else {
				g.timer = g.tickRate
			}
		}

	case Playing:
		if keys.Clear {
			if g.variant == VariantBare {
				g.enter(Exit)
			} else {
				g.enter(GameOver)
			}
		}

	case GameOver:
		if g.timer > 0 {
			g.timer--
		} else if pressed.Enter || pressed.Clear {
			g.enter(Exit)
		}
	}

	if g.phase == Exit {
		return false
	}
	g.draw(keys, d)
	return true
}

func (g *Game) enter(next Phase) {
	logger.Log.Debug(fmt.Sprintf(logger.PhaseMsg, g.phase, next))

	switch next {
	case Countdown:
		g.count = CountdownFrom
		g.timer = g.tickRate

	case Playing:
		g.State = NewGameState(g.rng)
		logger.Log.WithMatch(g.State.MatchId).Info(logger.MatchStartMsg)

	case GameOver:
		g.timer = g.tickRate
		score := g.State.Score
		logger.Log.WithMatch(g.State.MatchId).Info(fmt.Sprintf(logger.GameOverMsg, score.Player, score.Ai))

	case Exit:
		logger.Log.Info(logger.ExitMsg)
	}

	g.phase = next
}

func (g *Game) draw(keys Keys, d Display) {
	switch g.phase {
	case WaitingForStart:
		d.ZeroScreen()
		printCentered(d, ScreenHeight/2-CharHeight*2, TitleText)
		printCentered(d, ScreenHeight/2+CharHeight, PromptText)
		d.Swap()

	case Countdown:
		d.ZeroScreen()
		d.PrintUInt((ScreenWidth-CharWidth)/2, (ScreenHeight-CharHeight)/2, uint(g.count), 1)
		d.Swap()

	case Playing:
		ev := RunFrame(g.State, keys, d)
		g.sound.Play(ev)
		g.logPoints(ev)

	case GameOver:
		d.ZeroScreen()
		DrawScore(d, g.State.Score)
		printCentered(d, (ScreenHeight-CharHeight)/2, GameOverText)
		d.Swap()
	}
}

func (g *Game) logPoints(ev Events) {
	if !ev.Has(PlayerScored) && !ev.Has(AiScored) {
		return
	}
	who := "AI"
	if ev.Has(PlayerScored) {
		who = "Player"
	}
	score := g.State.Score
	logger.Log.WithMatch(g.State.MatchId).Info(fmt.Sprintf(logger.PointMsg, who, score.Player, score.Ai))
}

// RunFrame is one frame of play: input, ball, AI, score, present.
func RunFrame(s *GameState, keys Keys, d Display) Events {
	d.ZeroScreen()
	MovePlayer(s, keys, d)
	ev := MoveBall(s, d)
	MoveAi(s, d)
	DrawScore(d, s.Score)
	d.Swap()
	return ev
}

func printCentered(d Display, y int, s string) {
	d.PrintString((ScreenWidth-len(s)*CharWidth)/2, y, s)
}
