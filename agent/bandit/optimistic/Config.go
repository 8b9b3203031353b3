package optimistic

import (
	"fmt"
	"reflect"

	"github.com/kbandits/kbandits/agent"
	"github.com/kbandits/kbandits/agent/bandit/policy"
	"github.com/kbandits/kbandits/utils/floatutils"
)

func init() {
	// Register ConfigList type so that it can be typed using
	// agent.TypedConfigList to help with serialization/deserialization.
	agent.Register(agent.OptimisticEGreedy, ConfigList{})
}

// ConfigList stores a number of Configs as the combinations of its
// field values
type ConfigList struct {
	Epsilon []float64
	Bias    []float64
}

// NewConfigList returns a new ConfigList as an agent.TypedConfigList
func NewConfigList(ɛ, bias []float64) agent.TypedConfigList {
	config := ConfigList{Epsilon: ɛ, Bias: bias}
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
	return agent.Len(len(c.Epsilon), len(c.Bias))
}

// Config represents a configuration for the Optimistic Learner
type Config struct {
	Epsilon float64
	Bias    float64
}

// CreateAgent creates the Learner from the Config
func (c Config) CreateAgent(actions int, seed uint64) (agent.Learner,
	error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	l, err := New(actions, c.Epsilon, c.Bias, seed)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// ValidAgent returns whether the argument Learner is a valid Learner
// for construction with the Config
func (c Config) ValidAgent(a agent.Learner) bool {
	_, ok := a.(*Optimistic)
	return ok
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if !floatutils.InInterval(c.Epsilon, policy.Probability) {
		return fmt.Errorf("validate: epsilon must be in [0, 1] but got "+
			"%v: %w", c.Epsilon, agent.ErrInvalidParameter)
	}
	if err := validateBias(c.Bias); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	return nil
}

// Type returns the type of the Learner constructed by the Config
func (c Config) Type() agent.Type {
	return agent.OptimisticEGreedy
}
