package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// syncBuffer provides thread-safe access to a bytes.Buffer.
type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (s *syncBuffer) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestNewInterruptHandler_DefaultsToStdout(t *testing.T) {
	handler := NewInterruptHandler(nil)
	assert.NotNil(t, handler.out)
	assert.False(t, handler.WasInterrupted())
}

func TestInterruptHandler_Watch(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output)

	processed := 0
	ctx, stop := handler.Watch(context.Background(), "Import", func() string {
		return fmt.Sprintf("%d of 40 expenses imported", processed)
	})
	defer stop()

	assert.NoError(t, ctx.Err())

	processed = 12
	handler.trigger()
	<-ctx.Done()

	assert.True(t, handler.WasInterrupted())
	out := output.String()
	assert.Contains(t, out, "Import interrupted!")
	assert.Contains(t, out, "12 of 40 expenses imported")
}

func TestInterruptHandler_StopIsNotAnInterrupt(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output)

	ctx, stop := handler.Watch(context.Background(), "Import", nil)
	stop()
	<-ctx.Done()

	assert.False(t, handler.WasInterrupted())
	assert.Empty(t, output.String())
}

func TestInterruptHandler_ParentCancelIsNotAnInterrupt(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output)

	parent, cancel := context.WithCancel(context.Background())
	ctx, stop := handler.Watch(parent, "Import", nil)
	defer stop()
	cancel()
	<-ctx.Done()

	assert.False(t, handler.WasInterrupted())
}

func TestInterruptHandler_ReportsOnce(t *testing.T) {
	output := &syncBuffer{}
	handler := NewInterruptHandler(output)
	_, stop := handler.Watch(context.Background(), "", func() string { return "" })
	defer stop()

	handler.trigger()
	handler.trigger()

	out := output.String()
	assert.Equal(t, 1, strings.Count(out, "Operation interrupted!"))
	assert.NotContains(t, out, "ℹ️", "empty status adds no info line")
}
