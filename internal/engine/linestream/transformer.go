// Package linestream implements a line-buffering output filter for process output.
package linestream

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"go.trai.ch/lein/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// LineFunc receives every decoded line with its terminator stripped.
// It observes the stream; it cannot alter the bytes forwarded downstream.
type LineFunc func(line string) error

type state int

const (
	accumulating state = iota
	flushing
	closed
)

// Transformer buffers bytes until a '\n' is seen, hands each complete line to
// a LineFunc and forwards the raw bytes, terminator included, downstream.
// A partial trailing line is surfaced on ForceEOL or Close.
type Transformer struct {
	mu      sync.Mutex
	out     io.Writer
	hook    LineFunc
	decoder *encoding.Decoder
	buf     bytes.Buffer
	state   state
	hookErr error
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithEncoding decodes lines with enc before they reach the hook.
func WithEncoding(enc encoding.Encoding) Option {
	return func(t *Transformer) {
		if enc != nil {
			t.decoder = enc.NewDecoder()
		}
	}
}

// New creates a Transformer writing to out. A nil hook only forwards bytes.
// Lines are decoded as UTF-8 unless WithEncoding is given.
func New(out io.Writer, hook LineFunc, opts ...Option) *Transformer {
	t := &Transformer{
		out:     out,
		hook:    hook,
		decoder: unicode.UTF8.NewDecoder(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// LookupCharset resolves an IANA or WHATWG charset name such as "UTF-8" or
// "ISO-8859-1". An empty name resolves to UTF-8.
func LookupCharset(name string) (encoding.Encoding, error) {
	if strings.TrimSpace(name) == "" {
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "unsupported charset"), "charset", name)
	}
	return enc, nil
}

// Write implements io.Writer. It always consumes all of p unless the
// transformer is closed or downstream fails. Hook failures do not stop the
// stream; the first one is returned by Close.
func (t *Transformer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == closed {
		return 0, domain.ErrTransformerClosed
	}

	consumed := 0
	for len(p) > 0 {
		idx := bytes.IndexByte(p, '\n')
		if idx < 0 {
			t.buf.Write(p)
			consumed += len(p)
			break
		}
		t.buf.Write(p[:idx+1])
		consumed += idx + 1
		p = p[idx+1:]
		if err := t.eol(); err != nil {
			return consumed, err
		}
	}
	return consumed, nil
}

// ForceEOL surfaces a buffered partial line as if it had been terminated.
// No terminator is added to the forwarded bytes.
func (t *Transformer) ForceEOL() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == closed {
		return nil
	}
	return t.flushPartial()
}

// Close flushes a partial line and closes the downstream writer when it is
// an io.Closer. The close is attempted even if the flush fails. The first
// hook, flush or close failure is returned. Subsequent calls return nil.
func (t *Transformer) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == closed {
		return nil
	}

	first := t.flushPartial()
	if t.hookErr != nil {
		first = t.hookErr
	}
	t.state = closed

	if c, ok := t.out.(io.Closer); ok {
		if err := c.Close(); err != nil && first == nil {
			first = zerr.Wrap(err, "failed to close downstream writer")
		}
	}
	return first
}

func (t *Transformer) flushPartial() error {
	if t.buf.Len() == 0 {
		return nil
	}
	t.state = flushing
	err := t.eol()
	t.state = accumulating
	return err
}

// eol hands the buffered line to the hook and forwards its raw bytes.
// The buffer is always emptied so no byte is forwarded twice.
func (t *Transformer) eol() error {
	raw := t.buf.Bytes()
	defer t.buf.Reset()

	if t.hook != nil {
		if err := t.hook(t.decode(raw)); err != nil && t.hookErr == nil {
			t.hookErr = zerr.Wrap(err, "line hook failed")
		}
	}

	if _, err := t.out.Write(raw); err != nil {
		return zerr.Wrap(err, "failed to forward output")
	}
	return nil
}

func (t *Transformer) decode(raw []byte) string {
	line := trimEOL(raw)
	decoded, err := t.decoder.Bytes(line)
	if err != nil {
		return string(line)
	}
	return string(decoded)
}

func trimEOL(b []byte) []byte {
	b = bytes.TrimSuffix(b, []byte{'\n'})
	return bytes.TrimSuffix(b, []byte{'\r'})
}
