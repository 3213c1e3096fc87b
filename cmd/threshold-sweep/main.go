package main

import (
	"flag"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/Pautrik/neighbours/internal/sims/segregation"

	log "github.com/sirupsen/logrus"
)

// kvList collects repeated -set key=value pairs.
type kvList map[string]string

func (k kvList) String() string {
	parts := make([]string, 0, len(k))
	for key, value := range k {
		parts = append(parts, key+"="+value)
	}
	return strings.Join(parts, ",")
}

func (k kvList) Set(raw string) error {
	key, value, ok := strings.Cut(raw, "=")
	if !ok {
		return fmt.Errorf("expected key=value, got %q", raw)
	}
	k[strings.TrimSpace(key)] = strings.TrimSpace(value)
	return nil
}

func main() {
	minTh := flag.Float64("min", 0.1, "lowest threshold to sweep")
	maxTh := flag.Float64("max", 0.9, "highest threshold to sweep")
	stepTh := flag.Float64("step", 0.1, "threshold increment")
	thresholdList := flag.String("thresholds", "", "comma-separated thresholds (overrides -min/-max/-step)")
	maxSteps := flag.Int("max-steps", 10000, "step budget per run")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	overrides := kvList{}
	flag.Var(overrides, "set", "override a model setting (key=value, repeatable)")
	flag.Parse()

	cfg := segregation.FromMap(overrides)
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	var thresholds []float64
	if *thresholdList != "" {
		for _, part := range strings.Split(*thresholdList, ",") {
			th, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				log.WithError(err).Fatalf("bad threshold %q", part)
			}
			thresholds = append(thresholds, th)
		}
	} else {
		if *stepTh <= 0 {
			log.Fatal("step must be positive")
		}
		for th := *minTh; th <= *maxTh+1e-9; th += *stepTh {
			thresholds = append(thresholds, th)
		}
	}
	if len(thresholds) == 0 {
		log.Fatal("empty threshold range")
	}

	fmt.Printf("Sweeping %d thresholds (%d workers, %d step budget, %d locations)\n",
		len(thresholds), *workers, *maxSteps, cfg.Locations)

	start := time.Now()
	points, err := segregation.ThresholdSweep(cfg, thresholds, *maxSteps, *workers)
	if err != nil {
		log.WithError(err).Fatal("sweep failed")
	}
	elapsed := time.Since(start)

	fmt.Printf("\n%9s  %9s  %9s  %12s  %9s\n", "threshold", "steps", "moves", "dissatisfied", "same-kind")
	for _, p := range points {
		steps := fmt.Sprintf("%d", p.Result.StepsToStable)
		if !p.Result.Stable {
			steps = fmt.Sprintf(">%d", p.Result.StepsSimulated)
		}
		fmt.Printf("%9.2f  %9s  %9d  %12d  %9.3f\n",
			p.Threshold, steps, p.Result.TotalMoves, p.Result.Dissatisfied, p.Result.MeanSameKindRatio)
	}
	fmt.Printf("\nswept %d thresholds in %s\n", len(points), elapsed.Round(time.Millisecond))
}
