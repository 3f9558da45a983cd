package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// InterruptHandler turns the first SIGINT/SIGTERM during a long command into
// a context cancellation and tells the user how far it got.
type InterruptHandler struct {
	out         io.Writer
	cancel      context.CancelFunc
	status      func() string
	operation   string
	interrupted bool
	mu          sync.Mutex
}

// NewInterruptHandler creates a handler that reports to out (stdout if nil).
func NewInterruptHandler(out io.Writer) *InterruptHandler {
	if out == nil {
		out = os.Stdout
	}
	return &InterruptHandler{out: out, operation: "Operation"}
}

// Watch returns a context canceled on the first interrupt, and a stop
// function that releases the signal handler; callers defer stop. status, if
// set, is called at interrupt time to describe progress.
func (h *InterruptHandler) Watch(ctx context.Context, operation string, status func() string) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)

	h.mu.Lock()
	h.cancel = cancel
	h.status = status
	if operation != "" {
		h.operation = operation
	}
	h.mu.Unlock()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(signals)
		select {
		case <-signals:
			h.trigger()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

// trigger reports the interrupt once and cancels the watched context.
func (h *InterruptHandler) trigger() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.interrupted {
		h.interrupted = true
		_, _ = fmt.Fprint(h.out, h.message())
	}
	if h.cancel != nil {
		h.cancel()
	}
}

func (h *InterruptHandler) message() string {
	msg := "\n\n" + FormatWarning(h.operation+" interrupted!")
	if h.status != nil {
		if s := h.status(); s != "" {
			msg += "\n" + FormatInfo(s)
		}
	}
	return msg + "\n"
}

// WasInterrupted reports whether a signal canceled the watched context.
func (h *InterruptHandler) WasInterrupted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.interrupted
}
