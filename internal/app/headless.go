package app

import (
	"bufio"
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"sparse-life/internal/core"
)

// RunHeadless drives d without a window until any line arrives on keys, ctx
// is cancelled, or the generation limit is reached. keys may be nil. tps
// paces the loop; a non-positive value runs it unpaced.
//
// Reads from keys cannot be interrupted, so a pending read outlives the call
// until its source produces a line or closes.
func RunHeadless(ctx context.Context, d *Driver, tps int, keys *bufio.Scanner) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	quit := make(chan struct{}, 1)
	if keys != nil {
		eg.Go(func() error { return watchKeys(ctx, keys, quit) })
	}
	eg.Go(func() error {
		defer cancel()
		return loop(ctx, d, core.NewFixedStep(tps), quit)
	})
	return eg.Wait()
}

func loop(ctx context.Context, d *Driver, pacer *core.FixedStep, quit <-chan struct{}) error {
	if err := d.Start(); err != nil {
		return err
	}
	for {
		terminate := false
		select {
		case <-ctx.Done():
			terminate = true
		case <-quit:
			terminate = true
		default:
		}
		if !terminate && !pacer.ShouldStep() {
			sleep(ctx, pacer.Remaining())
			continue
		}
		done, err := d.Frame(terminate)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func watchKeys(ctx context.Context, keys *bufio.Scanner, quit chan<- struct{}) error {
	scanned := make(chan bool, 1)
	go func() { scanned <- keys.Scan() }()

	select {
	case <-ctx.Done():
		return nil
	case ok := <-scanned:
		if ok {
			quit <- struct{}{}
			return nil
		}
		return errors.Wrap(keys.Err(), "[watchKeys] failed to read terminal input")
	}
}

func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
