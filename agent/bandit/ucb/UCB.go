// Package ucb implements an ε-greedy Learner that explores using upper
// confidence bounds.
//
// Instead of exploring uniformly at random, UCB explores the action with
// the highest upper confidence bound on its value that is not the greedy
// action. The upper confidence bound of action a after t steps is
//
//	Q(a) + c * sqrt(ln(t) / N(a))
//
// where N(a) is the number of times a has been selected. Until every
// action has been selected at least once, UCB explores the least
// selected action instead.
package ucb

import (
	"fmt"
	"math"

	"github.com/kbandits/kbandits/agent"
	"github.com/kbandits/kbandits/agent/bandit/egreedy"
	"github.com/kbandits/kbandits/utils/floatutils"
)

// UCB implements an ε-greedy Learner with upper confidence bound
// exploration and sample average action value estimates
type UCB struct {
	learner *egreedy.EGreedy
	c       float64
	bounds  []float64

	// steps counts the calls to MakeMove, starting at 1. By default,
	// Reset does not reset steps, so the confidence bounds of later
	// trials use the total number of steps across all trials.
	steps      float64
	resetSteps bool
}

// New creates a new UCB Learner selecting between actions actions,
// where e=epsilon is the probability of exploring and c >= 0 scales the
// uncertainty bonus of the upper confidence bounds. If resetSteps is
// true, the step counter used in the confidence bounds is reset on each
// call to Reset.
func New(actions int, e, c float64, resetSteps bool,
	seed uint64) (*UCB, error) {
	if c < 0 || math.IsNaN(c) {
		return nil, fmt.Errorf("new: c must be non-negative but got %v: %w",
			c, agent.ErrInvalidParameter)
	}

	learner, err := egreedy.New(actions, e, seed)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	return &UCB{
		learner:    learner,
		c:          c,
		bounds:     make([]float64, actions),
		steps:      1,
		resetSteps: resetSteps,
	}, nil
}

// MakeMove selects the greedy action with probability 1 - ε. Otherwise,
// MakeMove selects the least selected action if some action has never
// been selected, or else the non-greedy action with the highest upper
// confidence bound.
func (u *UCB) MakeMove() int {
	values := u.learner.Values()
	counts := u.learner.Counts()
	p := u.learner.Policy()

	explore := p.Explore()
	greedy := p.Greedy(values)
	action := greedy

	if explore {
		leastSelected := floatutils.Argmin(counts)
		if counts[leastSelected] == 0 {
			action = leastSelected
		} else {
			first, second := floatutils.TopTwo(u.Bounds())
			action = first
			if first == greedy {
				action = second
			}
		}
	}

	u.learner.Record(action)
	u.steps++
	return action
}

// Bounds returns the upper confidence bound of each action. Bounds
// should only be called once each action has been selected at least
// once. The returned slice is reused by subsequent calls.
func (u *UCB) Bounds() []float64 {
	values := u.learner.Values()
	counts := u.learner.Counts()
	logSteps := math.Log(u.steps)

	for a := range u.bounds {
		u.bounds[a] = values[a] + u.c*math.Sqrt(logSteps/counts[a])
	}
	return u.bounds
}

// GiveReward updates the sample average estimate of action
func (u *UCB) GiveReward(action int, reward float64) {
	u.learner.GiveReward(action, reward)
}

// Reset sets all action value estimates and selection counts to zero.
// The step counter is reset only if the UCB was constructed with
// resetSteps set.
func (u *UCB) Reset() {
	u.learner.Reset()
	if u.resetSteps {
		u.steps = 1
	}
}

// StartTrial sets the step counter to the value it holds at the start
// of trial trial when trials of steps steps each are run in order on a
// single UCB. StartTrial should be called after Reset.
func (u *UCB) StartTrial(trial, steps int) {
	if u.resetSteps {
		u.steps = 1
		return
	}
	u.steps = 1 + float64(trial)*float64(steps)
}

// Actions returns the number of actions
func (u *UCB) Actions() int {
	return u.learner.Actions()
}

// Seed reseeds the random stream of the Learner
func (u *UCB) Seed(seed uint64) {
	u.learner.Seed(seed)
}

// Steps returns the step counter used in the confidence bounds
func (u *UCB) Steps() float64 {
	return u.steps
}

// Values returns the action value estimates. The returned slice should
// not be modified.
func (u *UCB) Values() []float64 {
	return u.learner.Values()
}

// Counts returns the number of times each action has been selected
// since the last Reset. The returned slice should not be modified.
func (u *UCB) Counts() []float64 {
	return u.learner.Counts()
}
