package progrock

import (
	"fmt"

	"github.com/vito/progrock"
)

// Vertex implements ports.Span wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
	err    error
}

// Write records p on the vertex standard output stream.
func (v *Vertex) Write(p []byte) (int, error) {
	return v.vertex.Stdout().Write(p)
}

// SetAttribute records the attribute as a line on the vertex stderr stream.
func (v *Vertex) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(v.vertex.Stderr(), "%s=%v\n", key, value)
}

// RecordError remembers err; End completes the vertex with it.
func (v *Vertex) RecordError(err error) {
	v.err = err
}

// End marks the vertex as finished.
func (v *Vertex) End() {
	v.vertex.Done(v.err)
}
