package experiment

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/kbandits/kbandits/agent"
	"github.com/kbandits/kbandits/environment/envconfig"
)

// Type determines how the trials of an experiment are run
type Type string

const (
	SequentialExp Type = "Sequential"
	ParallelExp   Type = "Parallel"
)

// Config represents a configuration of an experiment. The AgentConf
// may hold any number of agent configurations; CreateExp creates the
// experiment for one of them.
type Config struct {
	Type
	Runs       int
	Steps      int
	Logging    bool
	Workers    int
	Seed       uint64
	SourceConf envconfig.Config
	AgentConf  agent.TypedConfigList
}

// NewConfig returns a new sequential experiment Config with the default
// number of runs and steps
func NewConfig(agentConf agent.TypedConfigList,
	sourceConf envconfig.Config) Config {
	return Config{
		Type:       SequentialExp,
		Runs:       DefaultRuns,
		Steps:      DefaultSteps,
		SourceConf: sourceConf,
		AgentConf:  agentConf,
	}
}

// Validate returns an error describing whether or not the configuration
// is valid
func (c Config) Validate() error {
	if c.Type != SequentialExp && c.Type != ParallelExp {
		return fmt.Errorf("validate: no such experiment type %q", c.Type)
	}
	if err := validateLength(c.Runs, c.Steps); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	if err := c.SourceConf.Validate(); err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	if c.AgentConf.ConfigList == nil || c.AgentConf.Len() < 1 {
		return fmt.Errorf("validate: no agent configurations")
	}
	for i := 0; i < c.AgentConf.Len(); i++ {
		if err := c.AgentConf.At(i).Validate(); err != nil {
			return fmt.Errorf("validate: agent configuration %v: %w", i,
				err)
		}
	}
	return nil
}

// NumExps returns the number of experiments the Config describes, one
// for each agent configuration
func (c Config) NumExps() int {
	if c.AgentConf.ConfigList == nil {
		return 0
	}
	return c.AgentConf.Len()
}

// CreateExp creates the experiment for the agent configuration at index
// i. The Learner is constructed with seed c.Seed and the RewardSource
// with seed c.Seed+1.
func (c Config) CreateExp(i int) (Experiment, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("createExp: %w", err)
	}
	agentConf := c.AgentConf.At(i)

	switch c.Type {
	case SequentialExp:
		learner, err := agentConf.CreateAgent(c.SourceConf.Actions, c.Seed)
		if err != nil {
			return nil, fmt.Errorf("createExp: could not create agent: %w",
				err)
		}
		source, err := c.SourceConf.Create(c.Seed + 1)
		if err != nil {
			return nil, fmt.Errorf("createExp: could not create reward "+
				"source: %w", err)
		}

		exp, err := NewSequential(learner, source, c.Runs, c.Steps,
			c.Logging)
		if err != nil {
			return nil, fmt.Errorf("createExp: %w", err)
		}
		return exp, nil

	case ParallelExp:
		exp, err := NewParallel(agentConf, c.SourceConf, c.Runs, c.Steps,
			c.Workers, c.Seed, c.Logging)
		if err != nil {
			return nil, fmt.Errorf("createExp: %w", err)
		}
		return exp, nil
	}

	return nil, fmt.Errorf("createExp: no such experiment type %q", c.Type)
}

// LoadConfig reads an experiment Config from a YAML or JSON file.
// Fields missing from the file keep the values of a Config returned by
// NewConfig on a Stationary reward source.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("loadConfig: failed to read %q: %w",
			path, err)
	}

	return ParseConfig(data)
}

// ParseConfig parses an experiment Config from YAML or JSON data.
// Fields missing from data keep the values of a Config returned by
// NewConfig on a Stationary reward source.
func ParseConfig(data []byte) (Config, error) {
	conf := NewConfig(agent.TypedConfigList{},
		envconfig.NewConfig(envconfig.Stationary))

	if err := yaml.Unmarshal(data, &conf); err != nil {
		return Config{}, fmt.Errorf("parseConfig: failed to parse: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return Config{}, fmt.Errorf("parseConfig: %w", err)
	}
	return conf, nil
}
