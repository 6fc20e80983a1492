package core

import (
	"errors"
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Variant string

const (
	VariantMenu Variant = "menu"
	VariantBare Variant = "bare"
)

const (
	BackendTerminal = "terminal"
	BackendWindow   = "window"
)

const DefaultEnv = "local"

var (
	ErrUnknownVariant = errors.New("unknown variant")
	ErrUnknownBackend = errors.New("unknown backend")
	ErrBadTickRate    = errors.New("tick rate must be positive")
)

type Settings struct {
	Env      string
	Variant  Variant
	Backend  string
	TickRate int
	// Seed 0 seeds the ball launcher from the clock.
	Seed  uint64
	Sound bool
}

// NewFlagSet declares the command line overrides. None are required.
func NewFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.String("env", "", "properties file under ./properties to load (default $PONG_ENV or local)")
	flags.String("variant", string(VariantMenu), "menu or bare")
	flags.String("backend", BackendTerminal, "terminal or window")
	flags.Int("tick-rate", 30, "frames per second")
	flags.Uint64("seed", 0, "ball launch seed, 0 for clock")
	flags.Bool("sound", false, "play sound effects")
	return flags
}

// ReadSettings loads dir/<env>.properties, then applies flags that were set
// on the command line. A missing file leaves the defaults in place.
func ReadSettings(dir, env string, flags *pflag.FlagSet) (Settings, error) {
	if env == "" {
		env = DefaultEnv
	}

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("properties")
	v.AddConfigPath(dir)

	v.SetDefault("variant", string(VariantMenu))
	v.SetDefault("backend", BackendTerminal)
	v.SetDefault("tickRate", 30)
	v.SetDefault("seed", 0)
	v.SetDefault("sound", false)

	if flags != nil {
		binds := map[string]string{
			"variant":  "variant",
			"backend":  "backend",
			"tickRate": "tick-rate",
			"seed":     "seed",
			"sound":    "sound",
		}
		for key, name := range binds {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Settings{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read %s properties: %w", env, err)
		}
	}

	tickRate, err := cast.ToIntE(v.Get("tickRate"))
	if err != nil {
		return Settings{}, fmt.Errorf("tickRate: %w", err)
	}
	seed, err := cast.ToUint64E(v.Get("seed"))
	if err != nil {
		return Settings{}, fmt.Errorf("seed: %w", err)
	}
	sound, err := cast.ToBoolE(v.Get("sound"))
	if err != nil {
		return Settings{}, fmt.Errorf("sound: %w", err)
	}

	s := Settings{
		Env:      env,
		Variant:  Variant(cast.ToString(v.Get("variant"))),
		Backend:  cast.ToString(v.Get("backend")),
		TickRate: tickRate,
		Seed:     seed,
		Sound:    sound,
	}
	return s, s.Validate()
}

func (s Settings) Validate() error {
	switch s.Variant {
	case VariantMenu, VariantBare:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownVariant, s.Variant)
	}
	switch s.Backend {
	case BackendTerminal, BackendWindow:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, s.Backend)
	}
	if s.TickRate <= 0 {
		return fmt.Errorf("%w: %d", ErrBadTickRate, s.TickRate)
	}
	return nil
}
