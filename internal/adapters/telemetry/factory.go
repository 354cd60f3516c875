package telemetry

import (
	"context"
	"io"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/lein/internal/adapters/telemetry/progrock"
	"go.trai.ch/lein/internal/core/domain"
	"go.trai.ch/lein/internal/core/ports"
	"go.trai.ch/zerr"
)

// Telemetry modes accepted by Factory.Tracer.
const (
	ModeNone     = "none"
	ModeOTel     = "otel"
	ModeProgress = "progress"
)

// instrumentationName names the OpenTelemetry tracer.
const instrumentationName = "go.trai.ch/lein"

// Factory implements ports.TracerFactory.
type Factory struct {
	logger   ports.Logger
	progress io.Writer
}

// NewFactory creates a Factory whose OpenTelemetry spans are summarized
// through logger and whose progress lines are written to progress.
func NewFactory(logger ports.Logger, progress io.Writer) *Factory {
	return &Factory{logger: logger, progress: progress}
}

// Tracer returns the tracer for mode and the function releasing it.
// An empty mode selects ModeNone.
func (f *Factory) Tracer(mode string) (ports.Tracer, func(context.Context) error, error) {
	switch mode {
	case "", ModeNone:
		return NewNoOpTracer(), noShutdown, nil
	case ModeOTel:
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithSpanProcessor(NewLogBridge(f.logger)),
		)
		return NewOTelTracer(tp, instrumentationName), tp.Shutdown, nil
	case ModeProgress:
		rec := progrock.New(f.progress)
		return rec, func(context.Context) error { return rec.Close() }, nil
	default:
		return nil, nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "unknown telemetry mode"), "mode", mode)
	}
}

func noShutdown(context.Context) error { return nil }
