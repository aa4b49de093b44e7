package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/geocoder89/mealshare/internal/actorctx"
	"github.com/geocoder89/mealshare/internal/auth"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestObserveStore_CountsErrorsByClass(t *testing.T) {
	p := NewProm(prometheus.NewRegistry())

	if err := p.ObserveStore("meals.find", func() error { return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantErr := context.DeadlineExceeded
	if err := p.ObserveStore("meals.find", func() error { return wantErr }); !errors.Is(err, wantErr) {
		t.Fatalf("expected error to pass through, got %v", err)
	}

	if got := testutil.ToFloat64(p.StoreErrorsTotal.WithLabelValues("meals.find", "timeout")); got != 1 {
		t.Fatalf("expected 1 timeout error, got %v", got)
	}
	if got := testutil.CollectAndCount(p.StoreQueryDuration); got != 2 {
		t.Fatalf("expected ok and error series, got %d", got)
	}
}

func TestObserveStore_NilPromRunsFn(t *testing.T) {
	var p *Prom
	called := false

	_ = p.ObserveStore("x", func() error { called = true; return nil })
	p.RecordAuthDecision("access", "allow")
	p.RecordPaymentIntent("ok")

	if !called {
		t.Fatalf("expected fn to run")
	}
}

func TestClassifyStoreErr(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: mongo.ErrNoDocuments, want: "no_documents"},
		{err: context.Canceled, want: "canceled"},
		{err: errors.New("boom"), want: "unknown"},
	}

	for _, tt := range tests {
		if got := classifyStoreErr(tt.err); got != tt.want {
			t.Fatalf("classifyStoreErr(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestLogger_AddsTraceIDs(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "dev")

	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	log.InfoContext(ctx, "hello")
	span.End()

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("invalid json log line: %v (%s)", err, buf.String())
	}

	if line["trace_id"] != span.SpanContext().TraceID().String() {
		t.Fatalf("expected trace_id on log line, got %v", line)
	}
}

func TestLogger_AddsActor(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "prod")

	ctx := actorctx.WithClaims(context.Background(), auth.Claims{"email": "a@x.com"})
	log.InfoContext(ctx, "hello")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("invalid json log line: %v (%s)", err, buf.String())
	}
	if line["actor"] != "a@x.com" {
		t.Fatalf("expected actor on log line, got %v", line)
	}
}
