package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Lifecycle runs a blocking function until it returns or the process is
// asked to stop, then calls the registered shutdown hooks.
type Lifecycle struct {
	mu      sync.Mutex
	hooks   []func(ctx context.Context) error
	timeout time.Duration
}

// NewLifecycle creates a Lifecycle whose shutdown hooks share timeout.
func NewLifecycle(timeout time.Duration) *Lifecycle {
	return &Lifecycle{timeout: timeout}
}

// AddShutdownHook registers fn. Hooks run in reverse registration order.
func (l *Lifecycle) AddShutdownHook(fn func(ctx context.Context) error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hooks = append(l.hooks, fn)
}

// Run executes run until it returns or ctx is cancelled by SIGINT/SIGTERM.
// An error returned by run before a signal is returned as-is.
func (l *Lifecycle) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		if err := run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		return l.shutdown()
	case err := <-errCh:
		return errors.Join(err, l.shutdown())
	}
}

func (l *Lifecycle) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	l.mu.Lock()
	defer l.mu.Unlock()
	var errs []error
	for i := len(l.hooks) - 1; i >= 0; i-- {
		if err := l.hooks[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	l.hooks = nil
	return errors.Join(errs...)
}
