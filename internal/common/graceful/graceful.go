package graceful

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slices"
)

type ProcessStopper func(ctx context.Context) error

// NotifyContext returns a context cancelled on SIGINT or SIGTERM.
func NotifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// StopProcess runs the stoppers last to first, each bounded by duration.
func StopProcess(duration time.Duration, ps ...ProcessStopper) error {
	ps = slices.Clone(ps)
	slices.Reverse(ps)

	var errs []error
	for _, p := range ps {
		func() {
			if p == nil {
				return
			}
			ctx, stop := context.WithTimeout(context.Background(), duration)
			defer stop()
			if err := p(ctx); err != nil {
				errs = append(errs, err)
			}
		}()
	}

	return errors.Join(errs...)
}
