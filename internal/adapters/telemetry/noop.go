// Package telemetry holds telemetry implementations that need no backend.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/mesonci/internal/core/ports"
)

// Noop is a ports.Telemetry that records nothing. It is for tests and for
// embedding the runner without a progress backend; the CLI wires progrock.
type Noop struct{}

// NewNoop creates a new Noop.
func NewNoop() *Noop {
	return &Noop{}
}

// Record returns ctx carrying a vertex that discards its output.
func (t *Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := NoopVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (t *Noop) Close() error { return nil }

// NoopVertex discards everything written to it.
type NoopVertex struct{}

// Stdout returns io.Discard.
func (NoopVertex) Stdout() io.Writer { return io.Discard }

// Stderr returns io.Discard.
func (NoopVertex) Stderr() io.Writer { return io.Discard }

// Complete does nothing.
func (NoopVertex) Complete(error) {}
