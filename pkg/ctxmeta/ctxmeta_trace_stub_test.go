//go:build !otel

package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/supplier_orders/pkg/ctxmeta"
)

func TestSpanIDs_WithoutOtelTag(t *testing.T) {
	ctx := ctxmeta.WithRequestID(context.Background(), "rid-1")

	if id, ok := ctxmeta.TraceIDFromContext(ctx); ok || id != "" {
		t.Fatalf("trace_id=%q ok=%v, want empty", id, ok)
	}
	if id, ok := ctxmeta.SpanIDFromContext(ctx); ok || id != "" {
		t.Fatalf("span_id=%q ok=%v, want empty", id, ok)
	}
	// без спана в полях только request_id
	if fields := ctxmeta.Fields(ctx); len(fields) != 2 || fields[0] != "request_id" || fields[1] != "rid-1" {
		t.Fatalf("fields=%v", fields)
	}
}
