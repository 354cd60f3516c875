package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/lein/internal/core/ports"
	"go.trai.ch/zerr"
)

// LogBridge implements sdktrace.SpanProcessor by logging a summary of every
// ended span.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge returns a new LogBridge.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{logger: logger}
}

// OnStart does nothing.
func (b *LogBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "build step failed"
		}
		b.logger.Error(zerr.With(zerr.New(desc), "span", s.Name()))
		return
	}

	msg := fmt.Sprintf("%s finished in %s", s.Name(), elapsed)
	for _, kv := range s.Attributes() {
		msg += fmt.Sprintf(" %s=%s", kv.Key, kv.Value.Emit())
	}
	b.logger.Info(msg)
}

// ForceFlush does nothing.
func (b *LogBridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *LogBridge) Shutdown(_ context.Context) error {
	return nil
}
