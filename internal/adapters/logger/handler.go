package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// Prefix starts every line the ConsoleHandler writes.
const Prefix = "[Lein] - "

// ConsoleHandler is a slog.Handler writing build console lines of the form
// "[Lein] - msg key=value". Warnings and errors are tagged and colored.
type ConsoleHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []string
	group string
}

// NewConsoleHandler creates a new ConsoleHandler writing to w.
// Colors are disabled when NO_COLOR is set.
func NewConsoleHandler(w io.Writer, opts *slog.HandlerOptions) *ConsoleHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &ConsoleHandler{
		out:   termenv.NewOutput(w, termenv.WithProfile(colorProfile())),
		level: level,
	}
}

// colorProfile returns plain ANSI colors, which build log viewers render, or
// no colors at all when NO_COLOR is set.
func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// Enabled reports whether the handler handles records at the given level.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	msg := r.Message
	var color termenv.Color

	switch {
	case r.Level >= slog.LevelError:
		msg = "[ERROR] " + msg
		color = h.out.Color("1")
	case r.Level >= slog.LevelWarn:
		msg = "[WARNING] " + msg
		color = h.out.Color("3")
	}

	attrParts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	attrParts = append(attrParts, h.attrs...)
	r.Attrs(func(attr slog.Attr) bool {
		attrParts = append(attrParts, formatAttr(h.group, attr)...)
		return true
	})
	if len(attrParts) > 0 {
		msg += " " + strings.Join(attrParts, " ")
	}

	line := Prefix + msg
	if color != nil {
		line = h.out.String(line).Foreground(color).String()
	}
	_, err := h.out.WriteString(line + "\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]string, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	for _, attr := range attrs {
		newAttrs = append(newAttrs, formatAttr(h.group, attr)...)
	}

	return &ConsoleHandler{
		out:   h.out,
		level: h.level,
		attrs: newAttrs,
		group: h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &ConsoleHandler{
		out:   h.out,
		level: h.level,
		attrs: h.attrs,
		group: group,
	}
}

// formatAttr formats an attribute as key=value pairs, flattening groups.
func formatAttr(group string, attr slog.Attr) []string {
	key := attr.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	v := attr.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		var parts []string
		for _, a := range v.Group() {
			parts = append(parts, formatAttr(key, a)...)
		}
		return parts
	}
	return []string{key + "=" + v.String()}
}
