//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"islandfire/internal/app"
	"islandfire/internal/core"
	"islandfire/internal/sims/island"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	sim, err := newSim(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Panel, cfg.Seed)
	ebiten.SetWindowTitle("islandfire - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func newSim(cfg *app.Config, logger *slog.Logger) (core.Sim, error) {
	if cfg.Sim == island.Name {
		wc, err := island.LoadConfig(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		wc.Apply(cfg.Overrides.Map())
		w := island.NewWithConfig(wc)
		w.SetLogger(logger)
		return w, nil
	}
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", cfg.Sim)
	}
	return factory(cfg.Overrides.Map()), nil
}
