// Package progrock provides the Progrock implementation of the tracing adapter.
package progrock

import (
	"context"
	"io"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/lein/internal/core/ports"
)

// Recorder implements ports.Tracer by recording one vertex per span.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder rendering progress lines to out.
func New(out io.Writer) *Recorder {
	return NewRecorder(NewRenderer(out))
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start records a new vertex named name.
func (r *Recorder) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Vertex{vertex: v}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
