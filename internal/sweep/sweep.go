// Package sweep runs many seeded Game of Life boards in parallel and reports
// how each one ends: extinct, settled into a still life, cycling with period
// two, or still changing when the step budget runs out.
package sweep

import (
	"context"
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"golife/internal/core"
	"golife/internal/life"
	"golife/internal/session"
)

// Outcome classifies how a board ended.
type Outcome int

const (
	// Active means the board was still changing at the step budget.
	Active Outcome = iota
	Extinct
	Still
	// Period2 covers blinkers and other two-phase oscillators.
	Period2
)

func (o Outcome) String() string {
	switch o {
	case Extinct:
		return "extinct"
	case Still:
		return "still"
	case Period2:
		return "period-2"
	default:
		return "active"
	}
}

// Config controls a sweep.
type Config struct {
	Width, Height int
	// Seeds is the number of boards; board i uses seed FirstSeed+i.
	Seeds     int
	FirstSeed int64
	Steps     int
	Workers   int
	Density   float64
}

// DefaultConfig returns a small sweep sized for a quick run.
func DefaultConfig() Config {
	return Config{
		Width:     64,
		Height:    64,
		Seeds:     32,
		FirstSeed: 1,
		Steps:     1000,
		Workers:   runtime.NumCPU(),
		Density:   0.25,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return errors.Errorf("board must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.Width > session.DefaultMaxDimension || c.Height > session.DefaultMaxDimension:
		return errors.Errorf("board sides are capped at %d, got %dx%d", session.DefaultMaxDimension, c.Width, c.Height)
	case c.Seeds < 1:
		return errors.Errorf("seeds must be positive, got %d", c.Seeds)
	case c.Steps < 0:
		return errors.Errorf("steps must not be negative, got %d", c.Steps)
	case c.Workers < 1:
		return errors.Errorf("workers must be positive, got %d", c.Workers)
	case c.Density < 0 || c.Density > 1:
		return errors.Errorf("density must be within [0,1], got %.3f", c.Density)
	}
	return nil
}

// Result describes one finished board.
type Result struct {
	Seed int64
	// Generations is the number of steps taken before the outcome was known.
	Generations int
	Initial     int
	Final       int
	Peak        int
	Outcome     Outcome
}

func (r Result) String() string {
	return fmt.Sprintf("seed=%d outcome=%s gen=%d pop=%d->%d peak=%d",
		r.Seed, r.Outcome, r.Generations, r.Initial, r.Final, r.Peak)
}

// Run simulates every seed and returns results ordered by seed. The output
// does not depend on the worker count.
func Run(ctx context.Context, cfg Config) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid sweep config")
	}

	results := make([]Result, cfg.Seeds)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := 0; i < cfg.Seeds; i++ {
		seed := cfg.FirstSeed + int64(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := runBoard(ctx, cfg, seed)
			if err != nil {
				return errors.Wrapf(err, "seed %d", seed)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// cancelCheck is how many generations run between context checks.
const cancelCheck = 64

func runBoard(ctx context.Context, cfg Config, seed int64) (Result, error) {
	g := core.NewGrid(cfg.Width, cfg.Height)
	core.NewRNG(seed).Randomize(g, cfg.Density)
	res, err := Evolve(ctx, g, cfg.Steps)
	res.Seed = seed
	return res, err
}

// Evolve steps a copy of start for up to steps generations and stops early
// once the outcome is known. start is not modified.
func Evolve(ctx context.Context, start *core.Grid, steps int) (Result, error) {
	cur := start.Clone()
	prev := core.NewGrid(cur.Width(), cur.Height())
	next := core.NewGrid(cur.Width(), cur.Height())

	pop := cur.Population()
	res := Result{Initial: pop, Final: pop, Peak: pop}
	if pop == 0 {
		res.Outcome = Extinct
		return res, nil
	}

	for gen := 1; gen <= steps; gen++ {
		if gen%cancelCheck == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		life.StepInto(next, cur)
		res.Generations = gen
		res.Final = next.Population()
		if res.Final > res.Peak {
			res.Peak = res.Final
		}
		switch {
		case res.Final == 0:
			res.Outcome = Extinct
			return res, nil
		case next.Equal(cur):
			res.Outcome = Still
			return res, nil
		case gen > 1 && next.Equal(prev):
			res.Outcome = Period2
			return res, nil
		}
		prev, cur, next = cur, next, prev
	}
	return res, nil
}

// Summary counts results by outcome.
func Summary(results []Result) map[Outcome]int {
	out := make(map[Outcome]int, 4)
	for _, r := range results {
		out[r.Outcome]++
	}
	return out
}
