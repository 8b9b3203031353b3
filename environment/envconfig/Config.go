// Package envconfig provides configuration structs for configuring
// reward sources with default parameters. Reward source configurations
// in this package are JSON serializable.
package envconfig

import (
	"fmt"

	env "github.com/kbandits/kbandits/environment"
	"github.com/kbandits/kbandits/environment/bandit"
)

// SourceName stores the name of reward sources that can be configured
// with this package
type SourceName string

// Reward sources available for configuration
const (
	Stationary    SourceName = "Stationary"
	NonStationary SourceName = "NonStationary"
)

// Config implements a specific configuration of a specific reward
// source. The drift parameters are only used by non-stationary reward
// sources.
type Config struct {
	Source    SourceName
	Actions   int
	DriftMean float64
	DriftStd  float64
}

// NewConfig returns a new reward source Config with the default number
// of actions and default drift parameters
func NewConfig(source SourceName) Config {
	return Config{
		Source:    source,
		Actions:   env.DefaultActions,
		DriftMean: bandit.DefaultDriftMean,
		DriftStd:  bandit.DefaultDriftStd,
	}
}

// Validate returns an error describing whether or not the
// configuration is valid
func (c Config) Validate() error {
	if c.Actions < 1 {
		return fmt.Errorf("validate: actions must be positive but got %v",
			c.Actions)
	}

	switch c.Source {
	case Stationary:
		return nil

	case NonStationary:
		if c.DriftStd < 0 {
			return fmt.Errorf("validate: drift std must be non-negative "+
				"but got %v", c.DriftStd)
		}
		return nil
	}

	return fmt.Errorf("validate: no such reward source %q", c.Source)
}

// Create returns the reward source described by the Config
func (c Config) Create(seed uint64) (env.RewardSource, error) {
	var (
		source env.RewardSource
		err    error
	)

	switch c.Source {
	case Stationary:
		source, err = bandit.NewStationary(c.Actions, seed)

	case NonStationary:
		source, err = bandit.NewNonStationary(c.Actions, c.DriftMean,
			c.DriftStd, seed)

	default:
		return nil, fmt.Errorf("create: cannot create reward source %q, "+
			"no such reward source", c.Source)
	}

	if err != nil {
		return nil, fmt.Errorf("create: %w", err)
	}
	return source, nil
}
