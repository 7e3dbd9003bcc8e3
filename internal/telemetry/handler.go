package telemetry

import (
	"context"
	"fmt"
	"log/slog"

	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"
)

// OTelHandler is an slog.Handler that forwards records to the global
// OpenTelemetry logger provider.
type OTelHandler struct {
	logger otellog.Logger
	opts   *slog.HandlerOptions
	attrs  []slog.Attr
}

func NewOTelHandler(opts *slog.HandlerOptions) *OTelHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &OTelHandler{
		logger: global.GetLoggerProvider().Logger("switchboard"),
		opts:   opts,
	}
}

func (h *OTelHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

func (h *OTelHandler) Handle(ctx context.Context, record slog.Record) error {
	var out otellog.Record
	out.SetTimestamp(record.Time)
	out.SetBody(otellog.StringValue(record.Message))
	out.SetSeverity(severity(record.Level))

	for _, attr := range h.attrs {
		out.AddAttributes(otellog.String(attr.Key, attr.Value.String()))
	}
	record.Attrs(func(attr slog.Attr) bool {
		out.AddAttributes(otellog.String(attr.Key, fmt.Sprintf("%v", attr.Value.Any())))
		return true
	})

	h.logger.Emit(ctx, out)
	return nil
}

func (h *OTelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

func (h *OTelHandler) WithGroup(name string) slog.Handler {
	// Groups are flattened; the exporter keys carry no nesting.
	return h
}

func severity(level slog.Level) otellog.Severity {
	switch {
	case level >= slog.LevelError:
		return otellog.SeverityError
	case level >= slog.LevelWarn:
		return otellog.SeverityWarn
	case level >= slog.LevelInfo:
		return otellog.SeverityInfo
	default:
		return otellog.SeverityDebug
	}
}
