//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"golife/internal/app"
	"golife/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatalf("config: %v", err)
	}

	s := session.New(cfg.SessionOptions())
	game := app.New(s, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("golife")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	log.Printf("golife: %d tps, seed %d, interval %dms", cfg.TPS, cfg.Seed, cfg.IntervalMS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
