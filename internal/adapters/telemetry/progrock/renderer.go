package progrock

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/vito/progrock"
)

// Renderer is a progrock.Writer printing vertex progress as plain lines.
// Vertex stdout is not echoed, it already reaches the build console.
type Renderer struct {
	mu       sync.Mutex
	out      io.Writer
	order    []string
	vertices map[string]*renderedVertex
}

type renderedVertex struct {
	name    string
	started time.Time
	done    bool
	lines   int
	partial bytes.Buffer
}

// NewRenderer creates a Renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out, vertices: make(map[string]*renderedVertex)}
}

// WriteStatus implements progrock.Writer.
func (r *Renderer) WriteStatus(update *progrock.StatusUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range update.Vertexes {
		rv, seen := r.vertices[v.Id]
		if !seen {
			rv = &renderedVertex{name: v.Name}
			if v.Started != nil {
				rv.started = v.Started.AsTime()
			}
			r.vertices[v.Id] = rv
			r.order = append(r.order, v.Id)
			r.printf("• %s\n", v.Name)
		}
		if v.Completed == nil || rv.done {
			continue
		}
		rv.done = true
		r.flushPartial(rv)
		summary := fmt.Sprintf("%d lines", rv.lines)
		if !rv.started.IsZero() {
			summary = v.Completed.AsTime().Sub(rv.started).Round(time.Millisecond).String() + ", " + summary
		}
		if v.Error != nil {
			r.printf("✗ %s (%s): %s\n", rv.name, summary, *v.Error)
		} else {
			r.printf("✓ %s (%s)\n", rv.name, summary)
		}
	}

	for _, l := range update.Logs {
		rv, ok := r.vertices[l.Vertex]
		if !ok {
			continue
		}
		switch l.Stream {
		case progrock.LogStream_STDERR:
			rv.partial.Write(l.Data)
			r.flushLines(rv)
		default:
			rv.lines += bytes.Count(l.Data, []byte{'\n'})
		}
	}
	return nil
}

// Close reports vertices that never completed.
func (r *Renderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.order {
		rv := r.vertices[id]
		if rv.done {
			continue
		}
		r.flushPartial(rv)
		r.printf("✗ %s: interrupted\n", rv.name)
		rv.done = true
	}
	return nil
}

func (r *Renderer) flushLines(rv *renderedVertex) {
	for {
		data := rv.partial.Bytes()
		idx := bytes.IndexByte(data, '\n')
		if idx < 0 {
			return
		}
		r.printf("  %s\n", data[:idx])
		rv.partial.Next(idx + 1)
	}
}

func (r *Renderer) flushPartial(rv *renderedVertex) {
	r.flushLines(rv)
	if rv.partial.Len() > 0 {
		r.printf("  %s\n", rv.partial.Bytes())
		rv.partial.Reset()
	}
}

func (r *Renderer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}
