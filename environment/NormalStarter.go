package environment

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// NormalStarter returns starting true-value vectors with each component
// sampled independently from a normal distribution
type NormalStarter struct {
	features int
	source   rand.Source
	rand     distuv.Normal
}

// NewNormalStarter returns a new NormalStarter sampling vectors of size
// features with each component drawn from N(mean, std²). The returned
// NormalStarter draws from source, which may be shared with other
// distributions to form a single random stream.
func NewNormalStarter(features int, mean, std float64,
	source rand.Source) (*NormalStarter, error) {
	if features < 1 {
		return nil, fmt.Errorf("newNormalStarter: features must be "+
			"positive but got %v: %w", features, ErrInvalidParameter)
	}
	if std < 0 {
		return nil, fmt.Errorf("newNormalStarter: std must be "+
			"non-negative but got %v: %w", std, ErrInvalidParameter)
	}

	rand := distuv.Normal{Mu: mean, Sigma: std, Src: source}
	return &NormalStarter{features, source, rand}, nil
}

// NewStandardNormalStarter returns a new NormalStarter sampling each
// component from N(0, 1)
func NewStandardNormalStarter(features int,
	source rand.Source) (*NormalStarter, error) {
	return NewNormalStarter(features, 0, 1, source)
}

// Start returns a newly sampled starting vector
func (n *NormalStarter) Start() mat.Vector {
	start := make([]float64, n.features)
	for i := range start {
		start[i] = n.rand.Rand()
	}

	return mat.NewVecDense(n.features, start)
}

// Seed reseeds the underlying random source
func (n *NormalStarter) Seed(seed uint64) {
	n.source.Seed(seed)
}
