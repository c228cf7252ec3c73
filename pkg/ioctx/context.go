// Package ioctx carries the command's output streams through a context so
// formatting and reporting code can be driven from tests without touching
// os.Stdout.
package ioctx

import (
	"context"
	"io"
)

type stdoutKey struct{}
type stderrKey struct{}

// StderrFromContext returns the diagnostics stream, or io.Discard.
func StderrFromContext(ctx context.Context) io.Writer {
	w := ctx.Value(stderrKey{})
	if w == nil {
		w = io.Discard
	}

	return w.(io.Writer)
}

func StderrToContext(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, stderrKey{}, w)
}

// StdoutFromContext returns the output stream, or io.Discard.
func StdoutFromContext(ctx context.Context) io.Writer {
	writer := ctx.Value(stdoutKey{})
	if writer == nil {
		writer = io.Discard
	}

	return writer.(io.Writer)
}

func StdoutToContext(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, stdoutKey{}, w)
}

// WithStdio stores both streams.
func WithStdio(ctx context.Context, stdout, stderr io.Writer) context.Context {
	return StderrToContext(StdoutToContext(ctx, stdout), stderr)
}
