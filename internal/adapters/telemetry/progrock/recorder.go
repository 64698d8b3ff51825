// Package progrock records build steps with Progrock.
package progrock

import (
	"context"
	"os"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/mesonci/internal/core/ports"
)

// Recorder implements ports.Telemetry. Every step becomes a vertex on the tape.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a new Recorder that prints a step summary to stderr on Close.
func New() ports.Telemetry {
	return NewRecorder(NewSummary(os.Stderr))
}

// NewRecorder creates a new Recorder writing to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts a vertex for the step called name.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := &Vertex{vertex: r.rec.Vertex(digest.FromString(name), name)}
	return ports.ContextWithVertex(ctx, v), v
}

// Close flushes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
