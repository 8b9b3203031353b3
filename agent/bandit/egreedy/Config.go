package egreedy

import (
	"fmt"
	"reflect"

	"github.com/kbandits/kbandits/agent"
	"github.com/kbandits/kbandits/agent/bandit/policy"
	"github.com/kbandits/kbandits/utils/floatutils"
)

func init() {
	// Register ConfigList types so that they can be typed using
	// agent.TypedConfigList to help with serialization/deserialization.
	agent.Register(agent.EGreedySampleAverage, ConfigList{})
	agent.Register(agent.EGreedyConstantStep, ConstantStepConfigList{})
}

// ConfigList implements functionality for storing a number of Configs
// in a simple manner. Instead of storing a slice of Configs, the
// ConfigList stores each field's values and constructs the list by
// every combination of field values.
type ConfigList struct {
	Epsilon []float64
}

// NewConfigList returns a new ConfigList as an agent.TypedConfigList
// so that it can easily be JSON serialized/deserialized without
// knowing the underlying concrete type.
func NewConfigList(ɛ []float64) agent.TypedConfigList {
	return agent.NewTypedConfigList(ConfigList{Epsilon: ɛ})
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
	return agent.Len(len(c.Epsilon))
}

// Config represents a configuration for the sample average EGreedy
// Learner
type Config struct {
	Epsilon float64
}

// CreateAgent creates the Learner from the Config
func (c Config) CreateAgent(actions int, seed uint64) (agent.Learner,
	error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	l, err := New(actions, c.Epsilon, seed)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// ValidAgent returns whether the argument Learner is a valid Learner
// for construction with the Config
func (c Config) ValidAgent(a agent.Learner) bool {
	_, ok := a.(*EGreedy)
	return ok
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if !floatutils.InInterval(c.Epsilon, policy.Probability) {
		return fmt.Errorf("validate: epsilon must be in [0, 1] but got "+
			"%v: %w", c.Epsilon, agent.ErrInvalidParameter)
	}
	return nil
}

// Type returns the type of the Learner constructed by the Config
func (c Config) Type() agent.Type {
	return agent.EGreedySampleAverage
}

// ConstantStepConfigList stores a number of ConstantStepConfigs as the
// combinations of its field values
type ConstantStepConfigList struct {
	Epsilon  []float64
	StepSize []float64
}

// NewConstantStepConfigList returns a new ConstantStepConfigList as an
// agent.TypedConfigList
func NewConstantStepConfigList(ɛ, stepSize []float64) agent.TypedConfigList {
	config := ConstantStepConfigList{Epsilon: ɛ, StepSize: stepSize}
	return agent.NewTypedConfigList(config)
}

// Config returns an empty ConstantStepConfig
func (c ConstantStepConfigList) Config() agent.Config {
	return ConstantStepConfig{}
}

// Type returns the type of agent that can be constructed by Configs
// stored by the list
func (c ConstantStepConfigList) Type() agent.Type {
	return c.Config().Type()
}

// NumFields returns the number of settable fields for the list
func (c ConstantStepConfigList) NumFields() int {
	return reflect.ValueOf(c).NumField()
}

// Len returns the number of Configs stored by the list
func (c ConstantStepConfigList) Len() int {
	return agent.Len(len(c.Epsilon), len(c.StepSize))
}

// ConstantStepConfig represents a configuration for the ConstantStep
// Learner
type ConstantStepConfig struct {
	Epsilon  float64
	StepSize float64
}

// CreateAgent creates the Learner from the Config
func (c ConstantStepConfig) CreateAgent(actions int,
	seed uint64) (agent.Learner, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	l, err := NewConstantStep(actions, c.Epsilon, c.StepSize, seed)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// ValidAgent returns whether the argument Learner is a valid Learner
// for construction with the Config
func (c ConstantStepConfig) ValidAgent(a agent.Learner) bool {
	_, ok := a.(*ConstantStep)
	return ok
}

// Validate ensures that the Config is valid
func (c ConstantStepConfig) Validate() error {
	if !floatutils.InInterval(c.Epsilon, policy.Probability) {
		return fmt.Errorf("validate: epsilon must be in [0, 1] but got "+
			"%v: %w", c.Epsilon, agent.ErrInvalidParameter)
	}
	if !floatutils.InHalfOpen(c.StepSize, StepSizes) {
		return fmt.Errorf("validate: step size must be in (0, 1] but got "+
			"%v: %w", c.StepSize, agent.ErrInvalidParameter)
	}
	return nil
}

// Type returns the type of the Learner constructed by the Config
func (c ConstantStepConfig) Type() agent.Type {
	return agent.EGreedyConstantStep
}
