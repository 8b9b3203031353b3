package egreedy

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kbandits/kbandits/agent"
)

func TestNewEpsilon(t *testing.T) {
	for _, e := range []float64{0, 0.01, 0.1, 0.9, 1} {
		if _, err := New(10, e, 1); err != nil {
			t.Errorf("epsilon %v: %v", e, err)
		}
		if _, err := NewConstantStep(10, e, 0.1, 1); err != nil {
			t.Errorf("epsilon %v: %v", e, err)
		}
	}

	for _, e := range []float64{-0.5, -1e-9, 1 + 1e-9, 2} {
		if _, err := New(10, e, 1); !errors.Is(err,
			agent.ErrInvalidParameter) {
			t.Errorf("epsilon %v: expected invalid parameter, got %v", e,
				err)
		}
		if _, err := NewConstantStep(10, e, 0.1, 1); !errors.Is(err,
			agent.ErrInvalidParameter) {
			t.Errorf("epsilon %v: expected invalid parameter, got %v", e,
				err)
		}
	}
}

func TestNewConstantStepStepSize(t *testing.T) {
	for _, alpha := range []float64{0, -0.1, 1.5} {
		if _, err := NewConstantStep(10, 0.1, alpha, 1); !errors.Is(err,
			agent.ErrInvalidParameter) {
			t.Errorf("step size %v: expected invalid parameter, got %v",
				alpha, err)
		}
	}
	if _, err := NewConstantStep(10, 0.1, 1, 1); err != nil {
		t.Errorf("step size 1: %v", err)
	}
}

func TestSampleAverage(t *testing.T) {
	e, err := New(10, 0, 1)
	if err != nil {
		t.Fatal(err)
	}

	// The first move of a greedy learner with zero estimates is action 0
	const reward = 2.5
	action := e.MakeMove()
	if action != 0 {
		t.Fatalf("expected first greedy action 0, got %v", action)
	}
	e.GiveReward(action, reward)
	if e.Values()[action] != reward {
		t.Errorf("expected estimate %v after one reward, got %v", reward,
			e.Values()[action])
	}

	// Repeated identical rewards keep the estimate at the reward
	for i := 0; i < 50; i++ {
		action = e.MakeMove()
		if action != 0 {
			t.Fatalf("step %v: expected greedy action 0, got %v", i, action)
		}
		e.GiveReward(action, reward)
		if math.Abs(e.Values()[action]-reward) > 1e-12 {
			t.Fatalf("step %v: expected estimate %v, got %v", i, reward,
				e.Values()[action])
		}
	}
	if e.Counts()[0] != 51 {
		t.Errorf("expected 51 selections of action 0, got %v",
			e.Counts()[0])
	}
}

func TestSampleAverageIsMean(t *testing.T) {
	e, err := New(3, 0, 1)
	if err != nil {
		t.Fatal(err)
	}

	rewards := []float64{1, 2, 3, 4}
	for _, r := range rewards {
		e.Record(2)
		e.GiveReward(2, r)
	}

	if got := e.Values()[2]; math.Abs(got-2.5) > 1e-12 {
		t.Errorf("expected sample average 2.5, got %v", got)
	}
}

func TestEGreedyReset(t *testing.T) {
	e, err := New(4, 0.5, 1)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 20; i++ {
		a := e.MakeMove()
		e.GiveReward(a, float64(i))
	}

	e.Reset()
	zero := make([]float64, 4)
	if diff := cmp.Diff(zero, e.Values()); diff != "" {
		t.Errorf("values not reset (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(zero, e.Counts()); diff != "" {
		t.Errorf("counts not reset (-want +got):\n%s", diff)
	}
}

func TestConstantStep(t *testing.T) {
	const alpha = 0.1
	c, err := NewConstantStep(10, 0, alpha, 1)
	if err != nil {
		t.Fatal(err)
	}

	const reward = 3.0
	action := c.MakeMove()
	c.GiveReward(action, reward)
	if got := c.Values()[action]; math.Abs(got-alpha*reward) > 1e-12 {
		t.Errorf("expected estimate %v, got %v", alpha*reward, got)
	}

	// Two updates: Q = α r + α (r - α r)
	c.GiveReward(action, reward)
	want := alpha*reward + alpha*(reward-alpha*reward)
	if got := c.Values()[action]; math.Abs(got-want) > 1e-12 {
		t.Errorf("expected estimate %v, got %v", want, got)
	}

	c.Reset()
	if diff := cmp.Diff(make([]float64, 10), c.Values()); diff != "" {
		t.Errorf("values not reset (-want +got):\n%s", diff)
	}
}

func TestConfigs(t *testing.T) {
	list := NewConfigList([]float64{0, 0.1})
	if list.Len() != 2 || list.Type != agent.EGreedySampleAverage {
		t.Fatalf("unexpected config list %+v", list)
	}

	l, err := list.At(1).CreateAgent(10, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !list.At(1).ValidAgent(l) {
		t.Error("created agent should be valid for its config")
	}
	if l.(*EGreedy).Policy().Epsilon() != 0.1 {
		t.Error("created agent has wrong epsilon")
	}

	csList := NewConstantStepConfigList([]float64{0.1}, []float64{0.1, 0.5})
	c := csList.At(1).(ConstantStepConfig)
	if c != (ConstantStepConfig{Epsilon: 0.1, StepSize: 0.5}) {
		t.Errorf("unexpected config %+v", c)
	}
	if _, err := c.CreateAgent(10, 1); err != nil {
		t.Error(err)
	}

	invalid := ConstantStepConfig{Epsilon: 0.1, StepSize: 0}
	if _, err := invalid.CreateAgent(10, 1); !errors.Is(err,
		agent.ErrInvalidParameter) {
		t.Errorf("expected invalid parameter, got %v", err)
	}
	if _, err := (Config{Epsilon: 0.1}).CreateAgent(0, 1); err == nil {
		t.Error("expected error creating agent with no actions")
	}
}

func BenchmarkEGreedyStep(b *testing.B) {
	e, err := New(10, 0.1, 1)
	if err != nil {
		b.Fatal(err)
	}

	for i := 0; i < b.N; i++ {
		a := e.MakeMove()
		e.GiveReward(a, 1.0)
	}
}
