// Package egreedy implements ε-greedy Learners for the k-armed bandit
// problem.
//
// EGreedy estimates action values with sample averages, which is
// appropriate for stationary reward sources. ConstantStep estimates
// action values with an exponential recency-weighted average, which
// tracks non-stationary reward sources.
package egreedy

import (
	"fmt"

	"github.com/kbandits/kbandits/agent/bandit/policy"
)

// EGreedy implements an ε-greedy Learner with sample average action
// value estimates. The step size used to update the estimate of an
// action is one over the number of times that action has been selected.
type EGreedy struct {
	policy *policy.EGreedy
	values []float64
	counts []float64
}

// New creates a new EGreedy Learner selecting between actions actions,
// where e=epsilon is the probability of selecting a random action.
// All action value estimates start at zero.
func New(actions int, e float64, seed uint64) (*EGreedy, error) {
	p, err := policy.NewEGreedy(e, actions, seed)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	return &EGreedy{
		policy: p,
		values: make([]float64, actions),
		counts: make([]float64, actions),
	}, nil
}

// MakeMove selects an action from the ε-greedy policy and records that
// the action was selected
func (e *EGreedy) MakeMove() int {
	action := e.policy.SelectAction(e.values)
	e.Record(action)
	return action
}

// GiveReward updates the sample average estimate of action. The action
// must have been selected at least once.
func (e *EGreedy) GiveReward(action int, reward float64) {
	e.values[action] += (reward - e.values[action]) / e.counts[action]
}

// Reset sets all action value estimates and selection counts to zero
func (e *EGreedy) Reset() {
	e.Fill(0)
	for i := range e.counts {
		e.counts[i] = 0
	}
}

// Actions returns the number of actions
func (e *EGreedy) Actions() int {
	return len(e.values)
}

// Seed reseeds the random stream of the Learner
func (e *EGreedy) Seed(seed uint64) {
	e.policy.Seed(seed)
}

// Record records that action was selected
func (e *EGreedy) Record(action int) {
	e.counts[action]++
}

// Fill sets all action value estimates to value
func (e *EGreedy) Fill(value float64) {
	for i := range e.values {
		e.values[i] = value
	}
}

// Values returns the action value estimates. The returned slice shares
// its backing array with the Learner, so that wrapping Learners see
// every update, and should not be modified.
func (e *EGreedy) Values() []float64 {
	return e.values
}

// Counts returns the number of times each action has been selected
// since the last Reset. The returned slice shares its backing array with
// the Learner and should not be modified.
func (e *EGreedy) Counts() []float64 {
	return e.counts
}

// Policy returns the ε-greedy policy used to select actions
func (e *EGreedy) Policy() *policy.EGreedy {
	return e.policy
}
