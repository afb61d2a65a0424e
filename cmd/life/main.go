//go:build ebiten

package main

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"sparse-life/internal/app"
	"sparse-life/internal/render"
)

func main() {
	logger := newLogger()
	cfg, driver, keys, err := setup(os.Args[1:], os.Stdin, logger)
	if err != nil {
		logger.Fatal(err)
	}

	if cfg.Headless {
		if err := runHeadless(cfg, driver, keys); err != nil {
			logger.Fatal(err)
		}
		return
	}

	if err := driver.Start(); err != nil {
		logger.Fatal(err)
	}
	game := app.New(driver, render.Screen{Width: cfg.Width, Height: cfg.Height, CellSize: cfg.CellSize})
	defer game.Close()

	ebiten.SetWindowTitle("sparse-life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal(err)
	}
}
