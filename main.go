package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kbandits/kbandits/agent"
	"github.com/kbandits/kbandits/agent/bandit/egreedy"
	"github.com/kbandits/kbandits/agent/bandit/optimistic"
	"github.com/kbandits/kbandits/agent/bandit/ucb"
	"github.com/kbandits/kbandits/environment/envconfig"
	"github.com/kbandits/kbandits/experiment"
	"github.com/kbandits/kbandits/experiment/savers"
	"github.com/kbandits/kbandits/utils/progressbar"
)

// summaryWindow is the number of final steps averaged when summarizing
// an experiment
const summaryWindow = 100

// barWidth is the width of the progress bar displayed when progress is
// not logged
const barWidth = 40

// suite is a named set of experiments whose results are compared
type suite struct {
	name string
	conf experiment.Config
}

func main() {
	var (
		configPath = flag.String("config", "", "YAML or JSON experiment "+
			"config; runs the chapter 2 suite if empty")
		outDir  = flag.String("out", "", "directory to save results in")
		seed    = flag.Uint64("seed", 192382, "experiment seed")
		runs    = flag.Int("runs", experiment.DefaultRuns, "trials per experiment")
		steps   = flag.Int("steps", experiment.DefaultSteps, "steps per trial")
		workers = flag.Int("workers", 0, "parallel workers, 0 for one per CPU")
		verbose = flag.Bool("v", false, "log progress every 100 trials")
	)
	flag.Parse()

	var suites []suite
	if *configPath != "" {
		conf, err := experiment.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("could not load config: %v", err)
		}
		conf.Logging = conf.Logging || *verbose
		suites = []suite{{string(conf.AgentConf.Type), conf}}
	} else {
		suites = chapter2(*seed, *runs, *steps, *workers, *verbose)
	}

	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			log.Fatalf("could not create output directory: %v", err)
		}
	}

	total, logging := 0, false
	for _, s := range suites {
		total += s.conf.NumExps()
		logging = logging || s.conf.Logging
	}
	var bar *progressbar.ProgressBar
	if !logging {
		var err error
		if bar, err = progressbar.New(os.Stderr, barWidth, total); err != nil {
			log.Fatalf("could not create progress bar: %v", err)
		}
		bar.Display()
	}

	var summaries []string
	for _, s := range suites {
		for i := 0; i < s.conf.NumExps(); i++ {
			e, err := s.conf.CreateExp(i)
			if err != nil {
				log.Fatalf("%v: could not create experiment %v: %v", s.name,
					i, err)
			}

			result, err := e.Run()
			if err != nil {
				log.Fatalf("%v: experiment %v failed: %v", s.name, i, err)
			}

			reward, optimal := result.Summary(summaryWindow)
			summaries = append(summaries, fmt.Sprintf("%-28v %+v\n"+
				"    last %v steps: avg reward %.3f | optimal %.1f%%",
				s.name, s.conf.AgentConf.At(i), summaryWindow, reward,
				optimal*100))

			if *outDir != "" {
				filename := savers.Filename(*outDir, s.name, i)
				if err := savers.Save(filename, result); err != nil {
					log.Fatalf("could not save result: %v", err)
				}
			}

			if bar != nil {
				bar.Increment()
				bar.Display()
			}
		}
	}

	for _, summary := range summaries {
		fmt.Println(summary)
	}
}

// chapter2 returns the experiments comparing ε-greedy sample average
// methods, constant step size methods on non-stationary problems,
// optimistic initial values, and upper confidence bound exploration.
func chapter2(seed uint64, runs, steps, workers int,
	logging bool) []suite {
	stationary := envconfig.NewConfig(envconfig.Stationary)
	nonStationary := envconfig.NewConfig(envconfig.NonStationary)

	newConf := func(agentConf agent.TypedConfigList, sourceConf envconfig.Config,
		steps int) experiment.Config {
		conf := experiment.NewConfig(agentConf, sourceConf)
		conf.Type = experiment.ParallelExp
		conf.Runs = runs
		conf.Steps = steps
		conf.Workers = workers
		conf.Seed = seed
		conf.Logging = logging
		return conf
	}

	return []suite{
		{
			"stationary-egreedy",
			newConf(egreedy.NewConfigList([]float64{0.1, 0.01, 0}),
				stationary, steps),
		},
		{
			"nonstationary-sample-average",
			newConf(egreedy.NewConfigList([]float64{0.1}), nonStationary,
				5*steps),
		},
		{
			"nonstationary-constant-step",
			newConf(egreedy.NewConstantStepConfigList([]float64{0.1},
				[]float64{0.1}), nonStationary, 5*steps),
		},
		{
			"optimistic-greedy",
			newConf(optimistic.NewConfigList([]float64{0}, []float64{5}),
				stationary, steps),
		},
		{
			"ucb",
			newConf(ucb.NewConfigList([]float64{0.1}, []float64{2},
				[]bool{false}), stationary, steps),
		},
	}
}
