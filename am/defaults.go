package am

import (
	"fmt"

	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Simulator defaults
	v.SetDefault("simulator.backend", "auto")   // Policy table picks by qubit count
	v.SetDefault("simulator.precision", "fp64") // complex128 amplitudes
	v.SetDefault("simulator.shots", DefaultShots)
	// simulator.seed has no default: unset means wall clock

	// Logging defaults
	v.SetDefault("logging.json", false)
	v.SetDefault("logging.verbosity", 0)
}

// BindSensitiveEnvVars explicitly binds configuration to environment variables
func BindSensitiveEnvVars(v *viper.Viper) {
	v.BindEnv("simulator.backend", "QSIM_SIMULATOR_BACKEND")
	v.BindEnv("simulator.precision", "QSIM_SIMULATOR_PRECISION")
	v.BindEnv("simulator.seed", "QSIM_SIMULATOR_SEED")
}

// GetShots returns the configured default shot count
func (c *Config) GetShots() int {
	if c.Simulator.Shots <= 0 {
		return DefaultShots
	}
	return c.Simulator.Shots
}

// String returns a string representation of the config
func (c *Config) String() string {
	seed := "wall-clock"
	if c.Simulator.Seed != nil {
		seed = fmt.Sprintf("%d", *c.Simulator.Seed)
	}
	return fmt.Sprintf("Config{Simulator: {Backend: %s, Precision: %s, Seed: %s, Shots: %d}}",
		c.Simulator.Backend, c.Simulator.Precision, seed, c.Simulator.Shots)
}
