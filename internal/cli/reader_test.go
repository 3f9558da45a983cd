package cli

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReader_ReadLine(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		input   string
		want    []string
	}{
		{name: "single line", input: "Lunch\n", want: []string{"Lunch"}},
		{name: "trims whitespace", input: "  bus ticket \t\n", want: []string{"bus ticket"}},
		{name: "blank line", input: "\n", want: []string{""}},
		{name: "last line without newline", input: "groceries", want: []string{"groceries"}},
		{name: "several answers", input: "Lunch\n2500\nFood\n", want: []string{"Lunch", "2500", "Food"}},
		{name: "windows line endings", input: "Rent\r\n9000\r\n", want: []string{"Rent", "9000"}},
		{name: "empty input", input: "", wantErr: io.EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewLineReader(strings.NewReader(tt.input))
			ctx := context.Background()

			for _, want := range tt.want {
				got, err := r.ReadLine(ctx)
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}

			if tt.wantErr != nil {
				_, err := r.ReadLine(ctx)
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLineReader_ExhaustedReturnsEOF(t *testing.T) {
	r := NewLineReader(strings.NewReader("only\n"))
	ctx := context.Background()

	_, err := r.ReadLine(ctx)
	require.NoError(t, err)

	for range 2 {
		_, err = r.ReadLine(ctx)
		assert.ErrorIs(t, err, io.EOF)
	}
}

func TestLineReader_Cancellation(t *testing.T) {
	t.Run("already canceled", func(t *testing.T) {
		r := NewLineReader(strings.NewReader("ignored\n"))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := r.ReadLine(ctx)
		assert.ErrorIs(t, err, ErrInputCancelled)
	})

	t.Run("canceled while waiting", func(t *testing.T) {
		pr, pw := io.Pipe()
		defer func() { _ = pw.Close() }()

		r := NewLineReader(pr)
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := r.ReadLine(ctx)
		assert.ErrorIs(t, err, ErrInputCancelled)
	})

	t.Run("line typed after cancel is kept", func(t *testing.T) {
		pr, pw := io.Pipe()
		defer func() { _ = pw.Close() }()

		r := NewLineReader(pr)
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := r.ReadLine(ctx)
		require.ErrorIs(t, err, ErrInputCancelled)

		go func() { _, _ = io.WriteString(pw, "late answer\n") }()

		got, err := r.ReadLine(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "late answer", got)
	})
}

func TestNewLineReader_NilPanics(t *testing.T) {
	assert.Panics(t, func() { NewLineReader(nil) })
}
