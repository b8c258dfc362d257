package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/wsu/internal/core/ports"
)

// OTelTracer is a concrete implementation of ports.Tracer using OpenTelemetry.
type OTelTracer struct {
	tracer trace.Tracer
}

// NewOTelTracer creates a new OTelTracer with the given instrumentation name.
func NewOTelTracer(name string) *OTelTracer {
	return &OTelTracer{
		tracer: otel.Tracer(name),
	}
}

// Start creates a new span named name. The orchestrators start one per verb
// invocation (run.<script>, build, clean, dev) and one per build batch.
func (t *OTelTracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, span := t.tracer.Start(ctx, name)

	buf := newSpanLogBuffer(DefaultSizeLimit, DefaultTimeLimit, func(data []byte) {
		span.AddEvent("log", trace.WithAttributes(attribute.String("message", string(data))))
	})

	return ctx, &OTelSpan{span: span, buf: buf}
}

// EmitPlan signals that a set of packages is planned for execution by adding
// an event to the current span.
func (t *OTelTracer) EmitPlan(ctx context.Context, packageNames []string) {
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.AddEvent("plan_emitted", trace.WithAttributes(
			attribute.StringSlice("packages", packageNames),
		))
	}
}

// OTelSpan is a concrete implementation of ports.Span using OpenTelemetry.
// Log writes are coalesced through a spanLogBuffer so one line of child
// output does not become one OTel event.
type OTelSpan struct {
	span trace.Span
	buf  *spanLogBuffer
}

// End flushes any buffered log output and completes the span.
func (s *OTelSpan) End() {
	s.buf.Flush()
	_ = s.buf.Close()
	s.span.End()
}

// RecordError marks the span as failed and attaches err.
func (s *OTelSpan) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a key-value pair to the span.
func (s *OTelSpan) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, v))
	case float64:
		s.span.SetAttributes(attribute.Float64(key, v))
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	case []string:
		s.span.SetAttributes(attribute.StringSlice(key, v))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}

// Write satisfies io.Writer by buffering a log line for the span.
func (s *OTelSpan) Write(p []byte) (n int, err error) {
	return s.buf.Write(p)
}
