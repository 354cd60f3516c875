package executor

import (
	"regexp"
	"strconv"

	"go.trai.ch/lein/internal/core/ports"
)

var (
	testSummary   = regexp.MustCompile(`^Ran (\d+) tests containing (\d+) assertions\.`)
	failureCounts = regexp.MustCompile(`^(\d+) failures, (\d+) errors\.`)
)

// annotator inspects Leiningen output and records test summaries on a span.
type annotator struct {
	span  ports.Span
	lines int
}

func newAnnotator(span ports.Span) *annotator {
	return &annotator{span: span}
}

// Line implements linestream.LineFunc.
func (a *annotator) Line(line string) error {
	a.lines++
	if m := testSummary.FindStringSubmatch(line); m != nil {
		a.setInt("lein.tests", m[1])
		a.setInt("lein.assertions", m[2])
		return nil
	}
	if m := failureCounts.FindStringSubmatch(line); m != nil {
		a.setInt("lein.failures", m[1])
		a.setInt("lein.errors", m[2])
	}
	return nil
}

// Finish records the number of output lines seen.
func (a *annotator) Finish() {
	a.span.SetAttribute("lein.output_lines", a.lines)
}

func (a *annotator) setInt(key, digits string) {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return
	}
	a.span.SetAttribute(key, n)
}
