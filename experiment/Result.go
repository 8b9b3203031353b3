package experiment

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// TrialResult stores the data generated by a single trial: the reward
// received on each step and whether the action taken on each step was
// optimal (1) or not (0)
type TrialResult struct {
	Reward  []float64
	Optimal []float64
}

// newTrialResult returns a zeroed TrialResult for a trial of steps steps
func newTrialResult(steps int) TrialResult {
	return TrialResult{
		Reward:  make([]float64, steps),
		Optimal: make([]float64, steps),
	}
}

// Len returns the number of steps in the trial
func (t TrialResult) Len() int {
	return len(t.Reward)
}

// Result stores the per-step averages of an experiment across all its
// trials. Index i of each slice holds the average for step i.
//
// AvgReward holds the average reward received on each step.
// PercentOptimal holds the fraction of trials in which the optimal
// action was taken on each step, in [0, 1].
type Result struct {
	AvgReward      []float64 `json:"avg_reward"`
	PercentOptimal []float64 `json:"percent_optimal"`
}

// Len returns the number of steps in the Result
func (r Result) Len() int {
	return len(r.AvgReward)
}

// Summary returns the mean of the average reward and the mean fraction
// of optimal actions over the last window steps. If window is not in
// [1, r.Len()], the means are taken over all steps.
func (r Result) Summary(window int) (reward, optimal float64) {
	if window < 1 || window > r.Len() {
		window = r.Len()
	}
	start := r.Len() - window

	reward = stat.Mean(r.AvgReward[start:], nil)
	optimal = stat.Mean(r.PercentOptimal[start:], nil)
	return reward, optimal
}

// accumulator sums TrialResults elementwise
type accumulator struct {
	reward  []float64
	optimal []float64
	trials  int
}

func newAccumulator(steps int) *accumulator {
	return &accumulator{
		reward:  make([]float64, steps),
		optimal: make([]float64, steps),
	}
}

// add adds a single trial to the accumulator
func (a *accumulator) add(t TrialResult) {
	floats.Add(a.reward, t.Reward)
	floats.Add(a.optimal, t.Optimal)
	a.trials++
}

// merge adds all trials accumulated by other to the accumulator
func (a *accumulator) merge(other *accumulator) {
	floats.Add(a.reward, other.reward)
	floats.Add(a.optimal, other.optimal)
	a.trials += other.trials
}

// result returns the per-step averages over all accumulated trials
func (a *accumulator) result() Result {
	r := Result{
		AvgReward:      append([]float64(nil), a.reward...),
		PercentOptimal: append([]float64(nil), a.optimal...),
	}

	if a.trials > 0 {
		floats.Scale(1/float64(a.trials), r.AvgReward)
		floats.Scale(1/float64(a.trials), r.PercentOptimal)
	}
	return r
}
