// Command worldgen generates an island headlessly, optionally burns it to
// exhaustion and writes the result as a PNG.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"islandfire/internal/app"
	"islandfire/internal/metrics"
	"islandfire/internal/render"
	"islandfire/internal/sims/island"
)

type options struct {
	configPath  string
	seed        int64
	out         string
	tiles       bool
	clouds      bool
	burn        bool
	dt          float64
	maxSteps    int
	metricsAddr string
	verbose     bool
	overrides   app.KVList
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "YAML config file (defaults to $"+island.ConfigEnv+")")
	flag.Int64Var(&opts.seed, "seed", 1337, "world seed (0 uses the clock)")
	flag.StringVar(&opts.out, "out", "island.png", "PNG output path (empty skips the image)")
	flag.BoolVar(&opts.tiles, "tiles", false, "write one pixel per tile instead of the full extent")
	flag.BoolVar(&opts.clouds, "clouds", false, "blend the cloud layer into the image")
	flag.BoolVar(&opts.burn, "burn", false, "run the fire until it is exhausted before writing")
	flag.Float64Var(&opts.dt, "dt", 1.0/30, "seconds per simulation step")
	flag.IntVar(&opts.maxSteps, "max-steps", 500000, "step limit for -burn")
	flag.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address and wait for interrupt")
	flag.BoolVar(&opts.verbose, "v", false, "debug logging")
	flag.Var(&opts.overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, logger); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, opts options, logger *slog.Logger) error {
	cfg, err := island.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	cfg.Apply(opts.overrides.Map())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	var srv *http.Server
	if opts.metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv = &http.Server{Addr: opts.metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server", "err", err)
			}
		}()
		logger.Info("serving metrics", "addr", opts.metricsAddr)
	}

	world := island.NewWithConfig(cfg)
	world.SetLogger(logger)
	world.SetRecorder(metrics.NewRecorder(reg))
	world.Reset(opts.seed)

	if opts.burn {
		start := time.Now()
		steps, done := world.Run(opts.dt, opts.maxSteps)
		if !done {
			logger.Warn("fire still burning at step limit", "steps", steps)
		}
		logger.Info("burn finished",
			"steps", steps,
			"ticks", world.Fire().Ticks(),
			"burned", fmt.Sprintf("%.2f%%", world.BurnPercentage()*100),
			"elapsed", time.Since(start).Round(time.Millisecond),
		)
	}

	if opts.out != "" {
		if err := writeImage(world, opts); err != nil {
			return err
		}
		logger.Info("wrote image", "path", opts.out)
	}

	if srv == nil {
		return nil
	}
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown metrics server: %w", err)
	}
	return nil
}

func writeImage(world *island.World, opts options) error {
	var frame render.Frame
	if opts.tiles {
		frame = render.TileFrame(world.Grid())
	} else {
		frame = render.RasterizeGrid(world.Grid())
		if opts.clouds {
			render.BlendClouds(frame, world.Clouds())
		}
	}
	var sink render.Sink = render.PNGSink{Path: opts.out}
	return sink.Present(frame)
}
