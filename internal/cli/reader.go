package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

type lineResult struct {
	err  error
	line string
}

// LineReader reads terminal lines without blocking past a context's end.
// A single goroutine owns the underlying reader, so a line that arrives
// after a canceled ReadLine is kept for the next call.
type LineReader struct {
	src   *bufio.Reader
	lines chan lineResult
	start sync.Once
}

// NewLineReader creates a reader over in. Nothing is read until the first
// ReadLine.
func NewLineReader(in io.Reader) *LineReader {
	if in == nil {
		panic("reader cannot be nil")
	}
	return &LineReader{
		src:   bufio.NewReader(in),
		lines: make(chan lineResult, 1),
	}
}

func (r *LineReader) pump() {
	defer close(r.lines)
	for {
		line, err := r.src.ReadString('\n')
		r.lines <- lineResult{line: line, err: err}
		if err != nil {
			return
		}
	}
}

// ReadLine returns the next line with surrounding whitespace trimmed. A
// final line without a trailing newline is returned without error; after
// that, io.EOF.
func (r *LineReader) ReadLine(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ErrInputCancelled
	}
	r.start.Do(func() { go r.pump() })

	select {
	case <-ctx.Done():
		return "", ErrInputCancelled
	case res, ok := <-r.lines:
		if !ok {
			return "", io.EOF
		}
		if res.err != nil && (!errors.Is(res.err, io.EOF) || res.line == "") {
			return "", res.err
		}
		return strings.TrimSpace(res.line), nil
	}
}
