package linestream_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lein/internal/core/domain"
	"go.trai.ch/lein/internal/engine/linestream"
	"golang.org/x/text/encoding/charmap"
)

type recorder struct {
	lines []string
}

func (r *recorder) hook(line string) error {
	r.lines = append(r.lines, line)
	return nil
}

// closingBuffer records whether Close was called.
type closingBuffer struct {
	bytes.Buffer
	closed   int
	closeErr error
}

func (b *closingBuffer) Close() error {
	b.closed++
	return b.closeErr
}

// expectedLines splits a whole stream the way the hook should see it.
func expectedLines(stream string) []string {
	if stream == "" {
		return nil
	}
	parts := strings.SplitAfter(stream, "\n")
	var out []string
	for _, p := range parts {
		if p == "" {
			continue
		}
		p = strings.TrimSuffix(p, "\n")
		p = strings.TrimSuffix(p, "\r")
		out = append(out, p)
	}
	return out
}

func TestTransformer_AnyChunkBoundary(t *testing.T) {
	streams := []string{
		"Retrieving deps\nCompiling core\n",
		"windows line\r\nsecond\r\nunterminated tail",
		"\n\n\r\n",
		"single unterminated",
		"mixed\nterminators\r\nand cr\ronly\n",
	}

	for _, stream := range streams {
		for split1 := 0; split1 <= len(stream); split1++ {
			for split2 := split1; split2 <= len(stream); split2++ {
				rec := &recorder{}
				out := &closingBuffer{}
				tr := linestream.New(out, rec.hook)

				for _, chunk := range []string{stream[:split1], stream[split1:split2], stream[split2:]} {
					n, err := tr.Write([]byte(chunk))
					require.NoError(t, err)
					require.Equal(t, len(chunk), n)
				}
				require.NoError(t, tr.Close())

				if diff := cmp.Diff(expectedLines(stream), rec.lines); diff != "" {
					t.Fatalf("lines mismatch for %q split at %d,%d (-want +got):\n%s", stream, split1, split2, diff)
				}
				require.Equal(t, stream, out.String(), "downstream bytes must be identical")
				require.Equal(t, 1, out.closed)
			}
		}
	}
}

func TestTransformer_PartialLineBufferedUntilTerminator(t *testing.T) {
	rec := &recorder{}
	var out bytes.Buffer
	tr := linestream.New(&out, rec.hook)

	_, err := tr.Write([]byte("part1"))
	require.NoError(t, err)
	assert.Empty(t, rec.lines)
	assert.Empty(t, out.String())

	_, err = tr.Write([]byte("part2\nnext"))
	require.NoError(t, err)
	assert.Equal(t, []string{"part1part2"}, rec.lines)
	assert.Equal(t, "part1part2\n", out.String())

	require.NoError(t, tr.Close())
	assert.Equal(t, []string{"part1part2", "next"}, rec.lines)
	assert.Equal(t, "part1part2\nnext", out.String())
}

func TestTransformer_ForceEOLSurfacesOnce(t *testing.T) {
	rec := &recorder{}
	out := &closingBuffer{}
	tr := linestream.New(out, rec.hook)

	_, err := tr.Write([]byte("tail"))
	require.NoError(t, err)
	require.NoError(t, tr.ForceEOL())
	require.NoError(t, tr.ForceEOL())
	require.NoError(t, tr.Close())
	require.NoError(t, tr.Close())

	assert.Equal(t, []string{"tail"}, rec.lines)
	assert.Equal(t, "tail", out.String())
	assert.Equal(t, 1, out.closed)
}

func TestTransformer_WriteAfterClose(t *testing.T) {
	var out bytes.Buffer
	tr := linestream.New(&out, nil)
	require.NoError(t, tr.Close())

	_, err := tr.Write([]byte("late\n"))
	require.ErrorIs(t, err, domain.ErrTransformerClosed)
	assert.Empty(t, out.String())
}

func TestTransformer_HookErrorDoesNotDropBytes(t *testing.T) {
	hookErr := errors.New("annotator broke")
	out := &closingBuffer{closeErr: errors.New("close failed")}
	tr := linestream.New(out, func(string) error { return hookErr })

	_, err := tr.Write([]byte("tail"))
	require.NoError(t, err)

	err = tr.Close()
	require.ErrorIs(t, err, hookErr, "first failure must be reported")
	assert.Equal(t, "tail", out.String())
	assert.Equal(t, 1, out.closed, "downstream close is still attempted")
}

func TestTransformer_HookErrorKeepsStreaming(t *testing.T) {
	hookErr := errors.New("annotator broke")
	var out bytes.Buffer
	calls := 0
	tr := linestream.New(&out, func(string) error {
		calls++
		return hookErr
	})

	p := []byte("first\nsecond\nthird")
	n, err := tr.Write(p)
	require.NoError(t, err)
	assert.Equal(t, len(p), n)

	err = tr.Close()
	require.ErrorIs(t, err, hookErr)
	assert.Equal(t, "first\nsecond\nthird", out.String())
	assert.Equal(t, 3, calls)
}

func TestTransformer_CloseErrorReported(t *testing.T) {
	closeErr := errors.New("close failed")
	out := &closingBuffer{closeErr: closeErr}
	tr := linestream.New(out, nil)

	err := tr.Close()
	require.ErrorIs(t, err, closeErr)
}

func TestTransformer_WithEncoding(t *testing.T) {
	rec := &recorder{}
	var out bytes.Buffer
	tr := linestream.New(&out, rec.hook, linestream.WithEncoding(charmap.ISO8859_1))

	raw := []byte{'c', 'a', 'f', 0xE9, '\n'}
	_, err := tr.Write(raw)
	require.NoError(t, err)
	require.NoError(t, tr.Close())

	assert.Equal(t, []string{"café"}, rec.lines)
	assert.Equal(t, raw, out.Bytes())
}

func TestLookupCharset(t *testing.T) {
	enc, err := linestream.LookupCharset("")
	require.NoError(t, err)
	assert.NotNil(t, enc)

	enc, err = linestream.LookupCharset("ISO-8859-1")
	require.NoError(t, err)
	assert.NotNil(t, enc)

	_, err = linestream.LookupCharset("definitely-not-a-charset")
	require.Error(t, err)
}
