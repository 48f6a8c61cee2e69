// Package config loads tool defaults from the environment. Command-line
// flags override anything set here.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Defaults are the environment-provided defaults for editreplay flags.
type Defaults struct {
	Output  string `env:"EDITREPLAY_OUTPUT" envDefault:"text"`
	Form    string `env:"EDITREPLAY_FORM" envDefault:"auto"`
	Threads int    `env:"EDITREPLAY_THREADS" envDefault:"0"`
	Quiet   bool   `env:"EDITREPLAY_QUIET" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns Defaults populated from the process environment.
func Load() (Defaults, error) {
	var d Defaults
	err := ParseEnv(&d)
	return d, err
}

// LoadFrom is Load over an explicit environment, as used by tests.
func LoadFrom(environ map[string]string) (Defaults, error) {
	var d Defaults
	if err := env.ParseWithOptions(&d, env.Options{Environment: environ}); err != nil {
		return d, fmt.Errorf("parse env: %w", err)
	}
	return d, nil
}
