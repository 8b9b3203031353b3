package bandit

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/kbandits/kbandits/environment"
	"github.com/kbandits/kbandits/utils/matutils"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// DefaultDriftMean is the default mean of the random walk taken by
	// the true action values of a NonStationary reward source
	DefaultDriftMean float64 = 0.0

	// DefaultDriftStd is the default standard deviation of the random
	// walk taken by the true action values of a NonStationary reward
	// source
	DefaultDriftStd float64 = 0.01
)

// NonStationary implements a non-stationary reward source. The true
// action values are sampled from a standard normal distribution once at
// construction. Before each reward is computed, every true action value
// takes an independent normal random walk step, so the best action may
// change during a trial.
//
// Reset restores the true action values sampled at construction; it does
// not sample new values. Every trial therefore starts from the same
// true action values.
type NonStationary struct {
	source rand.Source
	noise  distuv.Normal
	drift  distuv.Normal

	value    *mat.VecDense
	original *mat.VecDense
	step     *mat.VecDense
}

// NewNonStationary returns a new NonStationary reward source with the
// argument number of actions. Each random walk step is sampled from
// N(driftMean, driftStd²). All random draws of the reward source come
// from a single stream seeded with seed.
func NewNonStationary(actions int, driftMean, driftStd float64,
	seed uint64) (*NonStationary, error) {
	if driftStd < 0 {
		return nil, fmt.Errorf("newNonStationary: drift std must be "+
			"non-negative but got %v: %w", driftStd,
			environment.ErrInvalidParameter)
	}

	source := rand.NewSource(seed)
	starter, err := environment.NewStandardNormalStarter(actions, source)
	if err != nil {
		return nil, fmt.Errorf("newNonStationary: %w", err)
	}

	original := mat.VecDenseCopyOf(starter.Start())

	return &NonStationary{
		source:   source,
		noise:    distuv.Normal{Mu: 0, Sigma: 1, Src: source},
		drift:    distuv.Normal{Mu: driftMean, Sigma: driftStd, Src: source},
		value:    mat.VecDenseCopyOf(original),
		original: original,
		step:     mat.NewVecDense(actions, nil),
	}, nil
}

// Reward first moves each true action value a single random walk step
// and then returns a reward for taking action, sampled from a normal
// distribution with unit variance centred at the new true value of
// action.
func (n *NonStationary) Reward(action int) float64 {
	for i := 0; i < n.step.Len(); i++ {
		n.step.SetVec(i, n.drift.Rand())
	}
	n.value.AddVec(n.value, n.step)

	return n.value.AtVec(action) + n.noise.Rand()
}

// OptimalAction returns the action with the highest true value after
// the latest random walk step
func (n *NonStationary) OptimalAction() int {
	return matutils.MaxVec(n.value)
}

// Reset restores the true action values sampled at construction
func (n *NonStationary) Reset() {
	n.value.CopyVec(n.original)
}

// Actions returns the number of actions
func (n *NonStationary) Actions() int {
	return n.value.Len()
}

// Seed reseeds the random stream of the reward source
func (n *NonStationary) Seed(seed uint64) {
	n.source.Seed(seed)
}

// Values returns a copy of the current true action values
func (n *NonStationary) Values() *mat.VecDense {
	return mat.VecDenseCopyOf(n.value)
}

// Original returns a copy of the true action values sampled at
// construction
func (n *NonStationary) Original() *mat.VecDense {
	return mat.VecDenseCopyOf(n.original)
}
