// Package experiment implements functionality for running k-armed
// bandit experiments.
//
// An experiment runs a number of independent trials of a Learner acting
// on a RewardSource for a fixed number of steps. At the start of each
// trial both the Learner and the RewardSource are reset. On each step
// the Learner selects an action, the RewardSource returns a reward for
// that action, the Learner learns from the reward, and the experiment
// records the reward and whether the action was the RewardSource's
// optimal action. The per-step data of all trials is averaged to
// produce learning curves.
package experiment

import (
	"fmt"
	"log"

	"github.com/kbandits/kbandits/agent"
	env "github.com/kbandits/kbandits/environment"
)

const (
	// DefaultRuns is the default number of trials in an experiment
	DefaultRuns int = 2000

	// DefaultSteps is the default number of steps in each trial
	DefaultSteps int = 1000

	// LogEvery is the number of completed trials between progress
	// messages when logging is enabled
	LogEvery int = 100
)

// Experiment outlines structs that can run experiments. The Run()
// method runs all trials of the experiment and returns the per-step
// averages across trials.
type Experiment interface {
	Run() (Result, error)

	// SetLogger sets the logger progress messages are written to
	SetLogger(*log.Logger)
}

// runTrial runs a single trial of steps steps. The Learner and
// RewardSource should be reset before calling runTrial.
//
// The optimal action is queried after the reward is computed, so for
// non-stationary reward sources it reflects the true values after the
// random walk step taken for that reward.
func runTrial(learner agent.Learner, source env.RewardSource,
	steps int) TrialResult {
	t := newTrialResult(steps)

	for i := 0; i < steps; i++ {
		action := learner.MakeMove()
		t.Reward[i] = source.Reward(action)
		learner.GiveReward(action, t.Reward[i])

		if action == source.OptimalAction() {
			t.Optimal[i] = 1
		}
	}

	return t
}

// checkActions panics if the Learner and RewardSource disagree on the
// number of actions
func checkActions(learner agent.Learner, source env.RewardSource) {
	if learner.Actions() != source.Actions() {
		panic(fmt.Sprintf("learner has %v actions but reward source has %v",
			learner.Actions(), source.Actions()))
	}
}

// validateLength returns an error if runs or steps is not positive
func validateLength(runs, steps int) error {
	if runs < 1 {
		return fmt.Errorf("runs must be positive but got %v", runs)
	}
	if steps < 1 {
		return fmt.Errorf("steps must be positive but got %v", steps)
	}
	return nil
}
