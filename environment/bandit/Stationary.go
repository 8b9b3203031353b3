// Package bandit implements reward sources for the k-armed bandit
// problem.
//
// Each reward source keeps a true value for each action. Taking an
// action returns a reward sampled from a unit-variance normal
// distribution centred at the true value of that action.
package bandit

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/kbandits/kbandits/environment"
	"github.com/kbandits/kbandits/utils/matutils"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Stationary implements a stationary reward source. The true action
// values are sampled from a standard normal distribution at construction
// and on each Reset, and do not change between Reset calls.
type Stationary struct {
	source  rand.Source
	starter *environment.NormalStarter
	noise   distuv.Normal

	value   *mat.VecDense
	optimal int
}

// NewStationary returns a new Stationary reward source with the argument
// number of actions. All random draws of the reward source come from a
// single stream seeded with seed.
func NewStationary(actions int, seed uint64) (*Stationary, error) {
	source := rand.NewSource(seed)
	starter, err := environment.NewStandardNormalStarter(actions, source)
	if err != nil {
		return nil, fmt.Errorf("newStationary: %w", err)
	}

	s := &Stationary{
		source:  source,
		starter: starter,
		noise:   distuv.Normal{Mu: 0, Sigma: 1, Src: source},
		value:   mat.NewVecDense(actions, nil),
	}
	s.Reset()

	return s, nil
}

// Reward returns a reward for taking action, sampled from a normal
// distribution with unit variance centred at the true value of action
func (s *Stationary) Reward(action int) float64 {
	return s.value.AtVec(action) + s.noise.Rand()
}

// OptimalAction returns the action with the highest true value
func (s *Stationary) OptimalAction() int {
	return s.optimal
}

// Reset samples new true action values
func (s *Stationary) Reset() {
	s.value.CopyVec(s.starter.Start())
	s.optimal = matutils.MaxVec(s.value)
}

// Actions returns the number of actions
func (s *Stationary) Actions() int {
	return s.value.Len()
}

// Seed reseeds the random stream of the reward source
func (s *Stationary) Seed(seed uint64) {
	s.source.Seed(seed)
}

// Values returns a copy of the current true action values
func (s *Stationary) Values() *mat.VecDense {
	return mat.VecDenseCopyOf(s.value)
}
