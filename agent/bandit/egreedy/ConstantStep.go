package egreedy

import (
	"fmt"

	"github.com/kbandits/kbandits/agent"
	"github.com/kbandits/kbandits/agent/bandit/policy"
	"github.com/kbandits/kbandits/utils/floatutils"
	"gonum.org/v1/gonum/spatial/r1"
)

// StepSizes is the interval of valid constant step sizes, (0, 1]
var StepSizes = r1.Interval{Min: 0, Max: 1}

// ConstantStep implements an ε-greedy Learner with constant step size
// action value updates:
//
//	Q(a) <- Q(a) + α * (R - Q(a))
//
// Recent rewards are weighted more heavily than old rewards, so the
// estimates follow true action values that drift over time.
//
// Unlike EGreedy, ConstantStep keeps no selection counts.
type ConstantStep struct {
	policy   *policy.EGreedy
	values   []float64
	stepSize float64
}

// NewConstantStep creates a new ConstantStep Learner selecting between
// actions actions, where e=epsilon is the probability of selecting a
// random action and stepSize=α is the constant step size, in (0, 1].
func NewConstantStep(actions int, e, stepSize float64,
	seed uint64) (*ConstantStep, error) {
	if !floatutils.InHalfOpen(stepSize, StepSizes) {
		return nil, fmt.Errorf("newConstantStep: step size must be in "+
			"(0, 1] but got %v: %w", stepSize, agent.ErrInvalidParameter)
	}

	p, err := policy.NewEGreedy(e, actions, seed)
	if err != nil {
		return nil, fmt.Errorf("newConstantStep: %w", err)
	}

	return &ConstantStep{
		policy:   p,
		values:   make([]float64, actions),
		stepSize: stepSize,
	}, nil
}

// MakeMove selects an action from the ε-greedy policy
func (c *ConstantStep) MakeMove() int {
	return c.policy.SelectAction(c.values)
}

// GiveReward moves the estimate of action a constant fraction of the
// way towards reward
func (c *ConstantStep) GiveReward(action int, reward float64) {
	c.values[action] += c.stepSize * (reward - c.values[action])
}

// Reset sets all action value estimates to zero
func (c *ConstantStep) Reset() {
	for i := range c.values {
		c.values[i] = 0
	}
}

// Actions returns the number of actions
func (c *ConstantStep) Actions() int {
	return len(c.values)
}

// Seed reseeds the random stream of the Learner
func (c *ConstantStep) Seed(seed uint64) {
	c.policy.Seed(seed)
}

// Values returns the action value estimates. The returned slice should
// not be modified.
func (c *ConstantStep) Values() []float64 {
	return c.values
}
