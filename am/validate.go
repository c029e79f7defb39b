package am

import "github.com/teranos/qsim/errors"

// Validate checks that the configuration is valid. Backend and precision
// names are left to the simulator, which owns the accepted sets.
func (c *Config) Validate() error {
	// Shots: 0 = use default, negative = invalid
	if c.Simulator.Shots < 0 {
		return errors.NewConfigurationError("simulator.shots must be >= 0, got %d", c.Simulator.Shots)
	}

	// Seed: nil = wall clock, negative = invalid
	if c.Simulator.Seed != nil && *c.Simulator.Seed < 0 {
		return errors.NewConfigurationError("simulator.seed must be >= 0, got %d (omit for wall clock)", *c.Simulator.Seed)
	}

	if c.Logging.Verbosity < 0 || c.Logging.Verbosity > 3 {
		return errors.NewConfigurationError("logging.verbosity must be in [0,3], got %d", c.Logging.Verbosity)
	}

	return nil
}
