package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestNoopTracerRecordsNothing(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "test")
	defer span.End()

	if span.IsRecording() {
		t.Error("noop span should not be recording")
	}
}

func TestTracerWithoutSetup(t *testing.T) {
	_, span := Tracer("maze").Start(context.Background(), "maze.generate")
	span.End()

	if span.SpanContext().IsValid() {
		t.Error("span should be invalid before Setup registers a provider")
	}
}

func TestEnabled(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	if Enabled() {
		t.Error("Enabled() = true with no endpoint")
	}

	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	if !Enabled() {
		t.Error("Enabled() = false with endpoint set")
	}
}

func TestNewResourceCarriesRunAttributes(t *testing.T) {
	res, err := newResource(context.Background(),
		attribute.String("maze.default_method", "depth-first-1"),
		attribute.Int("maze.default_size", 5),
	)
	if err != nil {
		t.Fatalf("newResource() error = %v", err)
	}

	set := res.Set()
	if v, ok := set.Value("service.name"); !ok || v.AsString() != serviceName {
		t.Errorf("service.name = %v, want %q", v.AsString(), serviceName)
	}
	if v, ok := set.Value("maze.default_method"); !ok || v.AsString() != "depth-first-1" {
		t.Errorf("maze.default_method = %v, want depth-first-1", v.AsString())
	}
	if v, ok := set.Value("maze.default_size"); !ok || v.AsInt64() != 5 {
		t.Errorf("maze.default_size = %v, want 5", v.AsInt64())
	}
}
