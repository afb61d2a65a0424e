package main

import (
	"bufio"
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"sparse-life/internal/app"
	_ "sparse-life/internal/patterns"
)

// setup parses flags and builds generation 0. The returned scanner is
// positioned after the initial population so it can serve as the key source.
func setup(args []string, stdin io.Reader, logger *log.Logger) (*app.Config, *app.Driver, *bufio.Scanner, error) {
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg, err := app.Parse(fs, args)
	if err != nil {
		return nil, nil, nil, err
	}
	sc := bufio.NewScanner(stdin)
	grid, err := app.Seed(cfg, sc, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	var dump io.Writer
	if cfg.Dump {
		dump = os.Stdout
	}
	return cfg, app.NewDriver(grid, cfg, dump), sc, nil
}

func runHeadless(cfg *app.Config, d *app.Driver, keys *bufio.Scanner) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.RunHeadless(ctx, d, cfg.TPS, keys)
}

func newLogger() *log.Logger {
	return log.New(os.Stderr, "life: ", log.LstdFlags)
}
