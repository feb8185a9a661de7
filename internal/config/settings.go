package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Settings holds the environment-variable configuration recognized by the
// runner. The port is kept as a string so an unparseable value can fall back
// to the profile default instead of failing the whole invocation.
type Settings struct {
	// Port overrides the UI listening port (FINDER_UI_PORT).
	Port string `env:"FINDER_UI_PORT"`

	// Debug enables debug logging (FINDERCTL_DEBUG).
	Debug bool `env:"FINDERCTL_DEBUG"`
}

// FromEnv parses Settings from the process environment.
func FromEnv() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}

// ResolvePort computes the effective listening port. An unset override yields
// the default; a valid number yields that number; anything else yields the
// default with fellBack=true so the caller can warn (documented fallback,
// never a silent mismatch).
func (s Settings) ResolvePort(def int) (port int, fellBack bool) {
	raw := strings.TrimSpace(s.Port)
	if raw == "" {
		return def, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > 65535 {
		return def, true
	}
	return n, false
}
