package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"termlife/internal/core"
	"termlife/internal/sims/life"
)

type scenario struct {
	density float64
	seed    int64
}

type scenarioResult struct {
	scenario
	initial   int
	final     int
	peak      int
	settledAt int // generation where a repeat was first seen, 0 if never
	period    int // 1 for still lifes, 2 for period-2 oscillators
}

func (r scenarioResult) String() string {
	state := "active"
	switch r.period {
	case 1:
		state = fmt.Sprintf("still@%d", r.settledAt)
	case 2:
		state = fmt.Sprintf("p2@%d", r.settledAt)
	}
	return fmt.Sprintf("density=%.2f seed=%-4d initial=%-5d peak=%-5d final=%-5d %s",
		r.density, r.seed, r.initial, r.peak, r.final, state)
}

func main() {
	width := flag.Int("width", 40, "board width")
	height := flag.Int("height", 40, "board height")
	steps := flag.Int("steps", 500, "generations to simulate per scenario")
	seeds := flag.Int("seeds", 8, "seeds per density, numbered from 1")
	densities := flag.String("densities", "0.1,0.2,0.3,0.4", "comma-separated initial densities")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	dens, err := parseDensities(*densities)
	if err != nil {
		log.Fatalf("invalid -densities: %v", err)
	}
	if *seeds <= 0 || *steps <= 0 || *workers <= 0 {
		log.Fatal("-seeds, -steps and -workers must be positive")
	}

	base := life.DefaultConfig()
	base.Width, base.Height = *width, *height
	if err := base.Validate(); err != nil {
		log.Fatalf("invalid board: %v", err)
	}

	var sets []scenario
	for _, d := range dens {
		for s := 1; s <= *seeds; s++ {
			sets = append(sets, scenario{density: d, seed: int64(s)})
		}
	}

	fmt.Printf("Running %d scenarios on %dx%d (%d workers, %d steps)\n", len(sets), *width, *height, *workers, *steps)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(base, sc, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sortResults(all)

	for _, res := range all {
		fmt.Println(res)
	}

	fmt.Printf("\nSummary (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, line := range summarize(all) {
		fmt.Println(line)
	}
}

func parseDensities(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, err
		}
		if d < 0 || d > 1 {
			return nil, fmt.Errorf("density %v outside [0, 1]", d)
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no densities given")
	}
	return out, nil
}

// runScenario seeds a board and steps it until it repeats with period 1 or 2
// or the step budget runs out.
func runScenario(base life.Config, sc scenario, steps int) scenarioResult {
	cfg := base
	cfg.Density = sc.density
	sim := life.New(cfg)
	sim.Reset(sc.seed)
	return observe(sim, sc, steps)
}

func observe(sim *life.Life, sc scenario, steps int) scenarioResult {
	cur := sim.Current()
	res := scenarioResult{scenario: sc, initial: cur.Population(), peak: cur.Population()}

	back1 := core.CloneGrid(cur)
	back2 := core.NewGrid(cur.Width(), cur.Height())
	haveBack2 := false

	for step := 1; step <= steps; step++ {
		sim.Step()
		cur = sim.Current()
		if pop := cur.Population(); pop > res.peak {
			res.peak = pop
		}
		if cur.Equal(back1) {
			res.settledAt, res.period = step, 1
			break
		}
		if haveBack2 && cur.Equal(back2) {
			res.settledAt, res.period = step, 2
			break
		}
		back1, back2 = back2, back1
		copy(back1.Cells(), cur.Cells())
		haveBack2 = true
	}
	res.final = cur.Population()
	return res
}

func sortResults(all []scenarioResult) {
	sort.Slice(all, func(i, j int) bool {
		if all[i].density != all[j].density {
			return all[i].density < all[j].density
		}
		return all[i].seed < all[j].seed
	})
}

// summarize expects results sorted by density.
func summarize(all []scenarioResult) []string {
	var lines []string
	for i := 0; i < len(all); {
		j := i
		settled, total := 0, 0
		for j < len(all) && all[j].density == all[i].density {
			if all[j].period != 0 {
				settled++
			}
			total += all[j].final
			j++
		}
		n := j - i
		lines = append(lines, fmt.Sprintf("density=%.2f settled=%d/%d meanFinal=%.1f",
			all[i].density, settled, n, float64(total)/float64(n)))
		i = j
	}
	return lines
}
