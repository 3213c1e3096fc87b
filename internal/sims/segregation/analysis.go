package segregation

import "sync"

// RunResult summarizes a world advanced until it stabilized or a step budget
// ran out.
type RunResult struct {
	StepsSimulated    int
	StepsToStable     int // -1 when the budget expired first
	Stable            bool
	TotalMoves        int
	Dissatisfied      int
	MeanSameKindRatio float64
}

// RunToStable builds a world from cfg, resets it with the configured seed and
// steps until no agent is dissatisfied or maxSteps have run.
func RunToStable(cfg Config, maxSteps int) (RunResult, error) {
	w, err := NewWithConfig(cfg)
	if err != nil {
		return RunResult{}, err
	}
	w.Reset(0)

	res := RunResult{StepsToStable: -1}
	steps := 0
	for steps < maxSteps && !w.Stable() {
		w.Step()
		steps++
		res.TotalMoves += w.Moves()
	}
	res.StepsSimulated = steps
	res.Stable = w.Stable()
	if res.Stable {
		res.StepsToStable = steps
	}
	res.Dissatisfied = w.FillDissatisfied(nil)
	res.MeanSameKindRatio = w.MeanSameKindRatio()
	return res, nil
}

// SweepPoint pairs a threshold with its run outcome.
type SweepPoint struct {
	Threshold float64
	Result    RunResult
}

// ThresholdSweep runs the model to fixpoint once per threshold, spreading the
// runs across workers. Every run owns a private world; grids are never shared
// between goroutines.
func ThresholdSweep(cfg Config, thresholds []float64, maxSteps, workers int) ([]SweepPoint, error) {
	if workers < 1 {
		workers = 1
	}
	points := make([]SweepPoint, len(thresholds))
	errs := make([]error, len(thresholds))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				c := cfg
				c.Threshold = thresholds[idx]
				res, err := RunToStable(c, maxSteps)
				if err != nil {
					errs[idx] = err
					continue
				}
				points[idx] = SweepPoint{Threshold: thresholds[idx], Result: res}
			}
		}()
	}
	for idx := range thresholds {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return points, nil
}
