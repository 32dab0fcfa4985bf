package telemetry

import (
	"context"
	"testing"
)

func TestSetupTracing_DisabledIsNoop(t *testing.T) {
	shutdown, err := SetupTracing(context.Background(), Options{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown returned %v", err)
	}
}

func TestClampRatio(t *testing.T) {
	cases := map[float64]float64{-1: 0, 0: 0, 0.25: 0.25, 1: 1, 7: 1}
	for in, want := range cases {
		if got := clampRatio(in); got != want {
			t.Fatalf("clampRatio(%v)=%v, want %v", in, got, want)
		}
	}
}

func TestEndpointOrDefault(t *testing.T) {
	if got := endpointOrDefault(""); got != defaultEndpoint {
		t.Fatalf("empty endpoint => %q, want %q", got, defaultEndpoint)
	}
	if got := endpointOrDefault("otel:4318"); got != "otel:4318" {
		t.Fatalf("explicit endpoint overwritten: %q", got)
	}
}
