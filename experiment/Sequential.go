package experiment

import (
	"fmt"
	"log"

	"github.com/kbandits/kbandits/agent"
	env "github.com/kbandits/kbandits/environment"
)

// Sequential is an Experiment that runs all trials one after another
// with a single Learner and a single RewardSource, which are reset at
// the start of each trial.
//
// All random draws come from the streams owned by the Learner and the
// RewardSource, so a Sequential experiment is reproducible given the
// seeds used to construct them.
type Sequential struct {
	learner agent.Learner
	source  env.RewardSource
	runs    int
	steps   int
	logging bool
	logger  *log.Logger
}

// NewSequential creates and returns a new sequential experiment which
// runs runs trials of steps steps each of learner acting on source. If
// logging is true, a progress message is logged every LogEvery
// completed trials.
//
// NewSequential panics if learner and source do not have the same
// number of actions.
func NewSequential(learner agent.Learner, source env.RewardSource, runs,
	steps int, logging bool) (*Sequential, error) {
	if err := validateLength(runs, steps); err != nil {
		return nil, fmt.Errorf("newSequential: %w", err)
	}
	checkActions(learner, source)

	return &Sequential{
		learner: learner,
		source:  source,
		runs:    runs,
		steps:   steps,
		logging: logging,
		logger:  log.Default(),
	}, nil
}

// SetLogger sets the logger progress messages are written to
func (s *Sequential) SetLogger(logger *log.Logger) {
	s.logger = logger
}

// RunTrial resets the Learner and RewardSource and runs a single trial
func (s *Sequential) RunTrial() TrialResult {
	s.learner.Reset()
	s.source.Reset()

	return runTrial(s.learner, s.source, s.steps)
}

// Run runs all trials of the experiment and returns the per-step
// averages across trials
func (s *Sequential) Run() (Result, error) {
	acc := newAccumulator(s.steps)

	for i := 0; i < s.runs; i++ {
		acc.add(s.RunTrial())

		if s.logging && (i+1)%LogEvery == 0 {
			s.logger.Printf("Completed run %d of %d.", i+1, s.runs)
		}
	}

	return acc.result(), nil
}
