package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"
)

// SetupSignals returns a context canceled on SIGINT or SIGTERM.
func SetupSignals(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
}

// SetupLifecycle bounds ctx by timeout and by termination signals. A
// non-positive timeout only installs the signal handling.
func SetupLifecycle(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	cancelTimeout := context.CancelFunc(func() {})
	if timeout > 0 {
		ctx, cancelTimeout = context.WithTimeout(ctx, timeout)
	}
	ctx, stopSignals := SetupSignals(ctx)
	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}
