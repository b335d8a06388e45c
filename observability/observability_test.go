package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStartSpanNoProvider(t *testing.T) {
	// Without an initialized provider the global tracer is a no-op; span
	// operations must still be safe.
	ctx, span := StartSpan(context.Background(), "fill.process")
	SetSpanAttribute(ctx, "fill.strategy", "merge")
	SetSpanAttribute(ctx, "keys", 3)
	SetSpanError(ctx, errors.New("boom"))
	span.End()
}

func TestRecordFillNoProvider(t *testing.T) {
	RecordFill(context.Background(), "deep", "ok", 5*time.Millisecond)
	RecordInputSize(context.Background(), "file", 1024)
}

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("myapp")
	if cfg.ServiceName != "myapp" {
		t.Errorf("expected service name, got %s", cfg.ServiceName)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected full sampling by default, got %f", cfg.SampleRate)
	}
}

func TestNewMetrics(t *testing.T) {
	m, err := NewMetrics(Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.RecordFill(context.Background(), "strict", "error", time.Millisecond)
}
