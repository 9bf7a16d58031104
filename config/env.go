package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment override, e.g. BOINK_SEED.
const EnvPrefix = "BOINK_"

// LoadEnv applies BOINK_* environment overrides on top of the defaults set in
// init(). Unset variables leave the defaults untouched.
func LoadEnv() error {
	opts := env.Options{Prefix: EnvPrefix}
	for _, target := range []any{&Arena, &Ball, &Combat} {
		if err := env.ParseWithOptions(target, opts); err != nil {
			return fmt.Errorf("parse env: %w", err)
		}
	}
	if Arena.FPS <= 0 {
		return fmt.Errorf("parse env: %sFPS must be positive, got %d", EnvPrefix, Arena.FPS)
	}
	log.Printf("[config] arena %dx%d map=%q fps=%d seed=%d roster=%v",
		Arena.Width, Arena.Height, Arena.Map, Arena.FPS, Arena.Seed, Ball.Roster)
	return nil
}
