package main

import (
	"fmt"
	"time"

	"CalcPong/core"
	"CalcPong/logger"
	"CalcPong/platform"

	"golang.org/x/exp/rand"
)

const WindowTitle = "Pong"
const WindowScale = 2

func start(settings core.Settings) error {
	logger.Log.Info(fmt.Sprintf(logger.StartupMsg, settings.Env, settings.Variant,
		settings.Backend, settings.TickRate, settings.Seed, settings.Sound))

	seed := settings.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	var sound core.Sound = core.NopSound{}
	if settings.Sound {
		sp, err := platform.NewSpeaker()
		if err != nil {
			logger.Log.Warn(fmt.Sprintf(logger.SoundInitFailedMsg, err))
		} else {
			defer sp.Close()
			sound = sp
		}
	}

	fb := platform.NewFramebuffer(core.ScreenWidth, core.ScreenHeight)
	game := core.NewGame(settings.Variant, settings.TickRate, rng, sound)

	logger.Log.Info(fmt.Sprintf(logger.BackendMsg, settings.Backend))
	if settings.Backend == core.BackendWindow {
		return platform.RunWindow(WindowTitle, WindowScale, settings.TickRate, fb, func(keys core.Keys) bool {
			return game.Step(keys, fb)
		})
	}

	term, err := platform.NewTerminal(platform.DefaultHoldTicks)
	if err != nil {
		return err
	}
	defer term.Close()
	fb.OnSwap(term.Present)
	term.Listen()

	startGameLoop(game, term, fb, settings.TickRate)
	return nil
}

// startGameLoop runs one Step per tick until the game exits.
func startGameLoop(game *core.Game, keypad core.Keypad, display core.Display, tickRate int) {
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	for range ticker.C {
		if !game.Step(keypad.Scan(), display) {
			return
		}
	}
}
