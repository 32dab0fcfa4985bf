//go:build otel

package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/supplier_orders/pkg/ctxmeta"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestSpanIDs_ActiveSpan(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("dashboard").Start(context.Background(), "GET /screens/orders")
	defer span.End()

	wantTrace := span.SpanContext().TraceID().String()
	wantSpan := span.SpanContext().SpanID().String()

	if got, ok := ctxmeta.TraceIDFromContext(ctx); !ok || got != wantTrace {
		t.Fatalf("trace_id=%q ok=%v, want %q", got, ok, wantTrace)
	}
	if got, ok := ctxmeta.SpanIDFromContext(ctx); !ok || got != wantSpan {
		t.Fatalf("span_id=%q ok=%v, want %q", got, ok, wantSpan)
	}

	ctx = ctxmeta.WithScreen(ctx, "orders")
	fields := ctxmeta.Fields(ctx)
	want := []any{"screen", "orders", "trace_id", wantTrace, "span_id", wantSpan}
	if len(fields) != len(want) {
		t.Fatalf("fields=%v, want %v", fields, want)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Fatalf("fields=%v, want %v", fields, want)
		}
	}
}

func TestSpanIDs_NoSpan(t *testing.T) {
	if id, ok := ctxmeta.TraceIDFromContext(context.Background()); ok || id != "" {
		t.Fatalf("trace_id=%q ok=%v, want empty", id, ok)
	}
	if id, ok := ctxmeta.SpanIDFromContext(context.Background()); ok || id != "" {
		t.Fatalf("span_id=%q ok=%v, want empty", id, ok)
	}
}
