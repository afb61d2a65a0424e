//go:build !ebiten

package main

import "os"

func main() {
	logger := newLogger()
	cfg, driver, keys, err := setup(os.Args[1:], os.Stdin, logger)
	if err != nil {
		logger.Fatal(err)
	}
	if !cfg.Headless {
		logger.Print("window support requires the ebiten build tag; running headless")
		logger.Print("re-run with `go run -tags ebiten ./cmd/life` for the GUI")
	}
	if err := runHeadless(cfg, driver, keys); err != nil {
		logger.Fatal(err)
	}
}
