// Package signal turns SIGINT and SIGTERM into context cancellation so an
// in-flight tool check is killed instead of left running.
package signal

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

// Handler records whether an interrupt arrived.
type Handler struct {
	sigCh       chan os.Signal
	interrupted atomic.Bool
	done        chan struct{}
}

// SetupSignalHandler registers SIGINT and SIGTERM handlers. When a signal is
// received it calls onInterrupt (if non-nil), then cancel. The listening
// goroutine exits on the first signal or when ctx is done.
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	h := signal.SetupSignalHandler(ctx, cancel, nil)
//	defer h.Stop()
func SetupSignalHandler(ctx context.Context, cancel context.CancelFunc, onInterrupt func()) *Handler {
	h := &Handler{
		sigCh: make(chan os.Signal, 1),
		done:  make(chan struct{}),
	}
	signal.Notify(h.sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer close(h.done)
		select {
		case <-h.sigCh:
			h.interrupted.Store(true)
			if onInterrupt != nil {
				onInterrupt()
			}
			cancel()
		case <-ctx.Done():
		}
	}()
	return h
}

// Interrupted reports whether a signal has been handled.
func (h *Handler) Interrupted() bool {
	return h.interrupted.Load()
}

// Stop restores default signal behavior. It does not wait for the listening
// goroutine; use Done for that.
func (h *Handler) Stop() {
	signal.Stop(h.sigCh)
}

// Done is closed once the listening goroutine has exited.
func (h *Handler) Done() <-chan struct{} {
	return h.done
}
