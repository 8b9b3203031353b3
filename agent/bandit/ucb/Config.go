package ucb

import (
	"fmt"
	"math"
	"reflect"

	"github.com/kbandits/kbandits/agent"
	"github.com/kbandits/kbandits/agent/bandit/policy"
	"github.com/kbandits/kbandits/utils/floatutils"
)

func init() {
	// Register ConfigList type so that it can be typed using
	// agent.TypedConfigList to help with serialization/deserialization.
	agent.Register(agent.UCBEGreedy, ConfigList{})
}

// ConfigList stores a number of Configs as the combinations of its
// field values. Every field, including ResetSteps, must hold at least
// one value.
type ConfigList struct {
	Epsilon    []float64
	C          []float64
	ResetSteps []bool
}

// NewConfigList returns a new ConfigList as an agent.TypedConfigList
func NewConfigList(ɛ, c []float64, resetSteps []bool) agent.TypedConfigList {
	config := ConfigList{Epsilon: ɛ, C: c, ResetSteps: resetSteps}
	return agent.NewTypedConfigList(config)
}

// Config returns an empty Config that is of the type stored by
// ConfigList
func (c ConfigList) Config() agent.Config {
	return Config{}
}

// Type returns the type of agent that can be constructed by Configs
// stored by the list
func (c ConfigList) Type() agent.Type {
	return c.Config().Type()
}

// NumFields returns the number of settable fields for the ConfigList
func (c ConfigList) NumFields() int {
	return reflect.ValueOf(c).NumField()
}

// Len returns the number of Configs stored by the list
func (c ConfigList) Len() int {
	return agent.Len(len(c.Epsilon), len(c.C), len(c.ResetSteps))
}

// Config represents a configuration for the UCB Learner
type Config struct {
	Epsilon    float64
	C          float64
	ResetSteps bool
}

// CreateAgent creates the Learner from the Config
func (c Config) CreateAgent(actions int, seed uint64) (agent.Learner,
	error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	l, err := New(actions, c.Epsilon, c.C, c.ResetSteps, seed)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// ValidAgent returns whether the argument Learner is a valid Learner
// for construction with the Config
func (c Config) ValidAgent(a agent.Learner) bool {
	_, ok := a.(*UCB)
	return ok
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if !floatutils.InInterval(c.Epsilon, policy.Probability) {
		return fmt.Errorf("validate: epsilon must be in [0, 1] but got "+
			"%v: %w", c.Epsilon, agent.ErrInvalidParameter)
	}
	if c.C < 0 || math.IsNaN(c.C) {
		return fmt.Errorf("validate: c must be non-negative but got %v: %w",
			c.C, agent.ErrInvalidParameter)
	}
	return nil
}

// Type returns the type of the Learner constructed by the Config
func (c Config) Type() agent.Type {
	return agent.UCBEGreedy
}
