package telemetry

import (
	"strings"
	"testing"
)

// SetupTracing itself needs an OTLP collector and is left to integration runs.

func TestSamplerFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rate float64
		want string
	}{
		{1, "AlwaysOnSampler"},
		{2, "AlwaysOnSampler"},
		{0, "AlwaysOffSampler"},
		{-1, "AlwaysOffSampler"},
		{0.25, "ParentBased"},
	}
	for _, tt := range tests {
		got := samplerFor(tt.rate).Description()
		if !strings.HasPrefix(got, tt.want) {
			t.Errorf("samplerFor(%v) = %q, want prefix %q", tt.rate, got, tt.want)
		}
	}
}

func TestTracerNoProvider(t *testing.T) {
	t.Parallel()

	if Tracer("forecast/test") == nil {
		t.Error("Tracer returned nil")
	}
}
