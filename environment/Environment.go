// Package environment outlines the interfaces and structs needed to
// implement reward sources for the k-armed bandit problem
package environment

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// DefaultActions is the number of actions in a bandit problem when not
// otherwise specified
const DefaultActions = 10

// ErrInvalidParameter is returned when a reward source is constructed
// with an invalid parameter
var ErrInvalidParameter = errors.New("invalid parameter")

// Starter implements a distribution of starting true-value vectors and
// samples the true action values of a reward source at the start of
// a trial
type Starter interface {
	Start() mat.Vector
	Seed(seed uint64)
}

// RewardSource implements a (possibly non-stationary) distribution
// of rewards over a fixed set of actions. Actions are integers in
// [0, Actions()).
//
// Each reward source owns its true action values exclusively. Calling
// Reward with an action outside [0, Actions()) panics.
type RewardSource interface {
	// Reward returns a stochastic reward for taking action
	Reward(action int) float64

	// OptimalAction returns the action with the currently highest true
	// value, breaking ties towards the lowest action
	OptimalAction() int

	// Reset prepares the reward source for a new trial
	Reset()

	// Actions returns the number of actions the reward source has
	Actions() int

	// Seed reseeds the random number stream of the reward source. The
	// true action values are not changed until the next call to Reset
	// or Reward.
	Seed(seed uint64)
}
