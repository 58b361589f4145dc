package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"time"

	"golife/internal/sweep"
)

func main() {
	cfg := sweep.DefaultConfig()
	flag.IntVar(&cfg.Width, "width", cfg.Width, "board width in cells")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "board height in cells")
	flag.IntVar(&cfg.Seeds, "seeds", cfg.Seeds, "number of boards to simulate")
	flag.Int64Var(&cfg.FirstSeed, "seed", cfg.FirstSeed, "seed of the first board")
	flag.IntVar(&cfg.Steps, "steps", cfg.Steps, "generations to simulate per board")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of worker goroutines")
	flag.Float64Var(&cfg.Density, "density", cfg.Density, "initial live cell probability")
	top := flag.Int("top", 5, "number of longest-lived boards to print")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d boards of %dx%d (%d workers, %d steps)\n",
		cfg.Seeds, cfg.Width, cfg.Height, cfg.Workers, cfg.Steps)

	start := time.Now()
	results, err := sweep.Run(ctx, cfg)
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}
	elapsed := time.Since(start)

	counts := sweep.Summary(results)
	fmt.Printf("\nOutcomes (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for _, o := range []sweep.Outcome{sweep.Extinct, sweep.Still, sweep.Period2, sweep.Active} {
		fmt.Printf("  %-9s %d\n", o, counts[o])
	}

	sorted := append([]sweep.Result(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Generations > sorted[j].Generations })
	fmt.Printf("\nTop %d longest-lived:\n", min(*top, len(sorted)))
	for i := 0; i < len(sorted) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, sorted[i])
	}
}
