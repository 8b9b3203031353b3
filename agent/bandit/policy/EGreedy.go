// Package policy implements action selection policies over tabular
// action value estimates
package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/kbandits/kbandits/agent"
	"github.com/kbandits/kbandits/utils/floatutils"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distuv"
)

// Probability is the interval of valid ε values
var Probability = r1.Interval{Min: 0, Max: 1}

// EGreedy implements an ε-greedy policy over action value estimates.
// With probability ε, a uniform random action is selected. Otherwise,
// the greedy action is selected, breaking ties towards the lowest
// action.
//
// EGreedy owns the random stream used for exploration, so a Learner
// that uses an EGreedy policy can be reseeded through the policy.
type EGreedy struct {
	epsilon float64
	actions int
	source  rand.Source
	rng     *rand.Rand
	roll    distuv.Uniform
}

// NewEGreedy constructs a new EGreedy policy, where e=epsilon is the
// probability with which a random action is selected and actions is the
// number of actions in the bandit problem
func NewEGreedy(e float64, actions int, seed uint64) (*EGreedy, error) {
	if !floatutils.InInterval(e, Probability) {
		return nil, fmt.Errorf("newEGreedy: epsilon must be in [0, 1] but "+
			"got %v: %w", e, agent.ErrInvalidParameter)
	}
	if actions < 1 {
		return nil, fmt.Errorf("newEGreedy: actions must be positive but "+
			"got %v: %w", actions, agent.ErrInvalidParameter)
	}

	source := rand.NewSource(seed)
	return &EGreedy{
		epsilon: e,
		actions: actions,
		source:  source,
		rng:     rand.New(source),
		roll:    distuv.Uniform{Min: 0, Max: 1, Src: source},
	}, nil
}

// Explore rolls for exploration and returns true with probability ε.
// When ε = 0, Explore never returns true and when ε = 1, Explore always
// returns true.
func (p *EGreedy) Explore() bool {
	return p.roll.Rand() < p.epsilon
}

// Greedy returns the greedy action with respect to values, breaking
// ties towards the lowest action
func (p *EGreedy) Greedy(values []float64) int {
	return floatutils.Argmax(values)
}

// Random returns an action selected uniformly at random
func (p *EGreedy) Random() int {
	return p.rng.Intn(p.actions)
}

// SelectAction selects an action from an ε-greedy policy over values
func (p *EGreedy) SelectAction(values []float64) int {
	if p.Explore() {
		return p.Random()
	}
	return p.Greedy(values)
}

// Epsilon returns the probability of selecting a random action
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// Actions returns the number of actions the policy selects from
func (p *EGreedy) Actions() int {
	return p.actions
}

// Seed reseeds the random stream of the policy
func (p *EGreedy) Seed(seed uint64) {
	p.source.Seed(seed)
}
