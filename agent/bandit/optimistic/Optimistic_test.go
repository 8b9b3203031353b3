package optimistic

import (
	"errors"
	"math"
	"testing"

	"github.com/kbandits/kbandits/agent"
)

func filled(n int, value float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = value
	}
	return values
}

func equal(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBias(t *testing.T) {
	const bias = 5.0
	o, err := New(10, 0, bias, 1)
	if err != nil {
		t.Fatal(err)
	}

	if !equal(o.Values(), filled(10, bias)) {
		t.Errorf("expected all estimates %v after construction, got %v",
			bias, o.Values())
	}

	for i := 0; i < 30; i++ {
		a := o.MakeMove()
		o.GiveReward(a, 0)
	}

	o.Reset()
	if !equal(o.Values(), filled(10, bias)) {
		t.Errorf("expected all estimates %v after reset, got %v", bias,
			o.Values())
	}
	if !equal(o.Counts(), filled(10, 0)) {
		t.Errorf("expected zero counts after reset, got %v", o.Counts())
	}
}

func TestNonFiniteBias(t *testing.T) {
	for _, bias := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := New(10, 0.1, bias, 1); !errors.Is(err,
			agent.ErrInvalidParameter) {
			t.Errorf("new: bias %v: expected invalid parameter, got %v",
				bias, err)
		}
		if err := (Config{Epsilon: 0.1, Bias: bias}).Validate(); !errors.Is(
			err, agent.ErrInvalidParameter) {
			t.Errorf("validate: bias %v: expected invalid parameter, got %v",
				bias, err)
		}
	}
}

func TestOptimismExplores(t *testing.T) {
	// A greedy learner with optimistic estimates and rewards well below
	// the bias tries every action once in the first k moves
	const actions = 10
	o, err := New(actions, 0, 5, 1)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < actions; i++ {
		a := o.MakeMove()
		if a != i {
			t.Fatalf("move %v: expected action %v, got %v", i, i, a)
		}
		o.GiveReward(a, 0)
	}
}

func TestConfig(t *testing.T) {
	list := NewConfigList([]float64{0}, []float64{0, 5})
	c := list.At(1)

	l, err := c.CreateAgent(10, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !c.ValidAgent(l) {
		t.Error("created agent should be valid for its config")
	}
	if l.(*Optimistic).Bias() != 5 {
		t.Errorf("expected bias 5, got %v", l.(*Optimistic).Bias())
	}

	if _, err := (Config{Epsilon: 2}).CreateAgent(10, 1); !errors.Is(err,
		agent.ErrInvalidParameter) {
		t.Errorf("expected invalid parameter, got %v", err)
	}
}
