// Package optimistic implements an ε-greedy Learner with optimistic
// initial action value estimates.
//
// Starting every estimate above any plausible reward makes a greedy
// Learner try each action early on, since every reward it observes is
// disappointing compared to the estimates of the untried actions.
package optimistic

import (
	"fmt"
	"math"

	"github.com/kbandits/kbandits/agent"
	"github.com/kbandits/kbandits/agent/bandit/egreedy"
)

// Optimistic implements a sample average ε-greedy Learner whose action
// value estimates start at a fixed bias rather than zero
type Optimistic struct {
	*egreedy.EGreedy
	bias float64
}

// New creates a new Optimistic Learner selecting between actions actions,
// where e=epsilon is the probability of selecting a random action and
// every action value estimate starts at bias
func New(actions int, e, bias float64, seed uint64) (*Optimistic, error) {
	if err := validateBias(bias); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	learner, err := egreedy.New(actions, e, seed)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	learner.Fill(bias)

	return &Optimistic{learner, bias}, nil
}

// validateBias returns an error if bias is not finite
func validateBias(bias float64) error {
	if math.IsNaN(bias) || math.IsInf(bias, 0) {
		return fmt.Errorf("bias must be finite but got %v: %w", bias,
			agent.ErrInvalidParameter)
	}
	return nil
}

// Reset sets all selection counts to zero and all action value
// estimates to the bias
func (o *Optimistic) Reset() {
	o.EGreedy.Reset()
	o.Fill(o.bias)
}

// Bias returns the initial action value estimate
func (o *Optimistic) Bias() float64 {
	return o.bias
}
