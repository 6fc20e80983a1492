package platform

import (
	"fmt"
	"time"

	"CalcPong/core"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq     float64
	duration time.Duration
}

// 各事件的提示音
var tones = []struct {
	event core.Events
	tone  tone
}{
	{core.WallBounce, tone{220, 20 * time.Millisecond}},
	{core.PlayerHit, tone{440, 30 * time.Millisecond}},
	{core.AiHit, tone{330, 30 * time.Millisecond}},
	{core.PlayerScored, tone{880, 120 * time.Millisecond}},
	{core.AiScored, tone{110, 120 * time.Millisecond}},
}

// Speaker plays a short sine blip for each ball event.
type Speaker struct{}

func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Speaker{}, nil
}

func (s *Speaker) Play(ev core.Events) {
	for _, t := range tonesFor(ev) {
		streamer, err := blip(t)
		if err != nil {
			continue
		}
		speaker.Play(streamer)
	}
}

func (s *Speaker) Close() {
	speaker.Close()
}

func tonesFor(ev core.Events) []tone {
	var out []tone
	for _, t := range tones {
		if ev.Has(t.event) {
			out = append(out, t.tone)
		}
	}
	return out
}

func blip(t tone) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(t.duration), sine), nil
}
