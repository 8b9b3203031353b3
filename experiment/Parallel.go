package experiment

import (
	"fmt"
	"log"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/kbandits/kbandits/agent"
	"github.com/kbandits/kbandits/environment/envconfig"
)

// trialStarter is implemented by Learners that keep state across Reset
// which depends on how many trials were run before. StartTrial sets that
// state to what it would be at the start of trial trial had all earlier
// trials been run in order on the same Learner.
type trialStarter interface {
	StartTrial(trial, steps int)
}

// Parallel is an Experiment that runs its trials concurrently on a
// number of workers. Each worker creates its own Learner and
// RewardSource from the experiment's configurations, so no state is
// shared between workers. Each worker accumulates its trials in its own
// buffers, and the buffers are summed once all trials have finished.
//
// Before each trial, the Learner and RewardSource are reseeded with
// seeds derived from the experiment seed and the trial index (see
// TrialSeeds), so the random draws of a trial do not depend on which
// worker runs it. Learners that carry state across Reset, such as a
// ucb.UCB whose step counter is not reset, are moved to the state of
// the trial they are about to run. The Result is then the same for any
// number of workers up to floating point summation order.
//
// All workers construct their RewardSource with the same seed. Reward
// sources that restore their construction-time values on Reset, such
// as bandit.NonStationary, therefore start every trial from the same
// true values, as in a Sequential experiment.
type Parallel struct {
	agentConf  agent.Config
	sourceConf envconfig.Config
	runs       int
	steps      int
	workers    int
	seed       uint64
	logging    bool
	logger     *log.Logger
}

// NewParallel creates and returns a new parallel experiment which runs
// runs trials of steps steps each of the Learner described by
// agentConf acting on the RewardSource described by sourceConf. If
// workers is not positive, runtime.NumCPU() workers are used. If
// logging is true, a progress message is logged every LogEvery
// completed trials.
func NewParallel(agentConf agent.Config, sourceConf envconfig.Config, runs,
	steps, workers int, seed uint64, logging bool) (*Parallel, error) {
	if err := validateLength(runs, steps); err != nil {
		return nil, fmt.Errorf("newParallel: %w", err)
	}
	if err := agentConf.Validate(); err != nil {
		return nil, fmt.Errorf("newParallel: %w", err)
	}
	if err := sourceConf.Validate(); err != nil {
		return nil, fmt.Errorf("newParallel: %w", err)
	}

	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > runs {
		workers = runs
	}

	return &Parallel{
		agentConf:  agentConf,
		sourceConf: sourceConf,
		runs:       runs,
		steps:      steps,
		workers:    workers,
		seed:       seed,
		logging:    logging,
		logger:     log.Default(),
	}, nil
}

// TrialSeeds returns the seeds used for the Learner and RewardSource
// streams of trial trial in an experiment with seed seed. The seeds
// seed and seed+1 are used to construct the Learner and RewardSource,
// and are never returned.
func TrialSeeds(seed uint64, trial int) (learner, source uint64) {
	learner = seed + 2*uint64(trial+1)
	return learner, learner + 1
}

// SetLogger sets the logger progress messages are written to
func (p *Parallel) SetLogger(logger *log.Logger) {
	p.logger = logger
}

// Workers returns the number of workers running trials
func (p *Parallel) Workers() int {
	return p.workers
}

// Run runs all trials of the experiment and returns the per-step
// averages across trials. Worker w runs trials w, w + workers,
// w + 2*workers, and so on.
func (p *Parallel) Run() (Result, error) {
	accs := make([]*accumulator, p.workers)
	var completed int64

	var g errgroup.Group
	for w := 0; w < p.workers; w++ {
		w := w
		accs[w] = newAccumulator(p.steps)

		g.Go(func() error {
			learner, err := p.agentConf.CreateAgent(p.sourceConf.Actions,
				p.seed)
			if err != nil {
				return fmt.Errorf("run: could not create agent: %w", err)
			}
			source, err := p.sourceConf.Create(p.seed + 1)
			if err != nil {
				return fmt.Errorf("run: could not create reward source: %w",
					err)
			}
			checkActions(learner, source)

			for trial := w; trial < p.runs; trial += p.workers {
				learnerSeed, sourceSeed := TrialSeeds(p.seed, trial)
				learner.Seed(learnerSeed)
				source.Seed(sourceSeed)
				learner.Reset()
				source.Reset()
				if s, ok := learner.(trialStarter); ok {
					s.StartTrial(trial, p.steps)
				}

				accs[w].add(runTrial(learner, source, p.steps))

				n := atomic.AddInt64(&completed, 1)
				if p.logging && n%int64(LogEvery) == 0 {
					p.logger.Printf("Completed run %d of %d.", n, p.runs)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	total := accs[0]
	for _, acc := range accs[1:] {
		total.merge(acc)
	}
	return total.result(), nil
}
