package otel

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"

	"account-service/internal/telemetry"
)

type recordCapture struct {
	recs []otellog.Record
}

func (r *recordCapture) Emit(ctx context.Context, rec otellog.Record) {
	r.recs = append(r.recs, rec)
}

func attrs(rec otellog.Record) map[string]string {
	out := make(map[string]string)
	rec.WalkAttributes(func(kv otellog.KeyValue) bool {
		out[kv.Key] = kv.Value.AsString()
		return true
	})
	return out
}

func TestNewEventEmitter_NilProvider(t *testing.T) {
	em := NewEventEmitter(nil)
	if err := em.Emit(context.Background(), &telemetry.Event{EventType: "x"}); err != nil {
		t.Errorf("noop Emit: %v", err)
	}
}

func TestNewEventEmitter_SDKProvider(t *testing.T) {
	provider := sdklog.NewLoggerProvider()
	defer func() { _ = provider.Shutdown(context.Background()) }()
	em := NewEventEmitter(provider)
	if err := em.Emit(context.Background(), nil); err != nil {
		t.Errorf("Emit(nil): %v", err)
	}
	if err := em.Emit(context.Background(), &telemetry.Event{EventType: "grpc_request"}); err != nil {
		t.Errorf("Emit: %v", err)
	}
}

func TestEmit_Mapping(t *testing.T) {
	cap := &recordCapture{}
	em := NewEventEmitterWithLogger(cap)
	created := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	event := &telemetry.Event{
		UserID:    "user1",
		SessionID: "sess1",
		EventType: "grpc_request",
		Source:    "grpc_interceptor",
		Metadata:  json.RawMessage(`{"status_code":"OK"}`),
		CreatedAt: created,
	}
	if err := em.Emit(context.Background(), event); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if len(cap.recs) != 1 {
		t.Fatalf("records = %d, want 1", len(cap.recs))
	}
	rec := cap.recs[0]
	if got := string(rec.Body().AsBytes()); got != `{"status_code":"OK"}` {
		t.Errorf("body = %q", got)
	}
	if !rec.Timestamp().Equal(created) {
		t.Errorf("timestamp = %v, want %v", rec.Timestamp(), created)
	}
	want := map[string]string{
		"user_id": "user1", "session_id": "sess1",
		"event_type": "grpc_request", "source": "grpc_interceptor",
	}
	got := attrs(rec)
	for k, v := range want {
		if got[k] != v {
			t.Errorf("attr %q = %q, want %q", k, got[k], v)
		}
	}
}

func TestEmit_SparseEvent(t *testing.T) {
	cap := &recordCapture{}
	fixed := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	em := &otelEmitter{logger: cap, now: func() time.Time { return fixed }}

	if err := em.Emit(context.Background(), &telemetry.Event{EventType: "ping"}); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	rec := cap.recs[0]
	if !rec.Body().Empty() {
		t.Error("body should be empty without metadata")
	}
	if !rec.Timestamp().Equal(fixed) {
		t.Errorf("timestamp = %v, want %v", rec.Timestamp(), fixed)
	}
	got := attrs(rec)
	if len(got) != 1 || got["event_type"] != "ping" {
		t.Errorf("attributes = %v, want only event_type", got)
	}
}
