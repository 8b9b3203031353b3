// Package agent defines the interface of k-armed bandit learners and the
// configurations used to construct them
package agent

import "github.com/kbandits/kbandits/environment"

// ErrInvalidParameter is returned when a Learner is constructed with
// an invalid hyperparameter
var ErrInvalidParameter = environment.ErrInvalidParameter

// Learner implements a learning algorithm for the k-armed bandit
// problem. A Learner both selects actions and learns action value
// estimates from the rewards of the actions it selected.
//
// A Learner is either fresh or trained. Reset makes a Learner fresh,
// and GiveReward makes a Learner trained. Learners can be reused
// across any number of trials by calling Reset between trials.
type Learner interface {
	// MakeMove selects an action in [0, Actions())
	MakeMove() int

	// GiveReward updates the value estimate of action given that
	// taking action resulted in reward. The action should have been
	// returned by the most recent call to MakeMove.
	GiveReward(action int, reward float64)

	// Reset restores the Learner to its initial state
	Reset()

	// Actions returns the number of actions the Learner selects from
	Actions() int

	// Seed reseeds the random number stream of the Learner
	Seed(seed uint64)
}
