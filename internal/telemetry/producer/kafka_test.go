package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"account-service/internal/telemetry"
)

var _ Producer = (*KafkaProducer)(nil)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("write without deadline")
	}
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestNewKafkaProducer_Disabled(t *testing.T) {
	if p := NewKafkaProducer(nil, "topic", nil); p != nil {
		t.Error("no brokers should disable the producer")
	}
	if p := NewKafkaProducer([]string{"localhost:9092"}, "", nil); p != nil {
		t.Error("empty topic should disable the producer")
	}
}

func TestNewKafkaProducer_Configured(t *testing.T) {
	p := NewKafkaProducer([]string{"localhost:9092"}, "account-telemetry", nil)
	if p == nil {
		t.Fatal("producer should be created")
	}
	w, ok := p.writer.(*kafka.Writer)
	if !ok {
		t.Fatalf("writer = %T, want *kafka.Writer", p.writer)
	}
	if w.Topic != "account-telemetry" {
		t.Errorf("Topic = %q", w.Topic)
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestKafkaProducer_Emit(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaProducer{writer: w, topic: "t", logger: zap.NewNop()}
	event := &telemetry.Event{
		UserID:    "user-1",
		EventType: "grpc_request",
		Source:    "grpc_interceptor",
		Metadata:  json.RawMessage(`{"full_method":"/account.v1.AccountService/GetUserInfo"}`),
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := p.Emit(context.Background(), event); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if len(w.msgs) != 1 {
		t.Fatalf("messages = %d, want 1", len(w.msgs))
	}
	if string(w.msgs[0].Key) != "user-1" {
		t.Errorf("Key = %q, want user-1", w.msgs[0].Key)
	}
	var got telemetry.Event
	if err := json.Unmarshal(w.msgs[0].Value, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.EventType != "grpc_request" || got.UserID != "user-1" {
		t.Errorf("payload = %+v", got)
	}
}

func TestKafkaProducer_EmitError(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker unavailable")}
	p := &KafkaProducer{writer: w, topic: "t", logger: zap.NewNop()}
	if err := p.Emit(context.Background(), &telemetry.Event{EventType: "x"}); err == nil {
		t.Fatal("expected error from writer")
	}
}

func TestKafkaProducer_NilSafe(t *testing.T) {
	var p *KafkaProducer
	if err := p.Emit(context.Background(), &telemetry.Event{}); err != nil {
		t.Errorf("nil Emit: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
	w := &fakeWriter{}
	p = &KafkaProducer{writer: w, logger: zap.NewNop()}
	if err := p.Emit(context.Background(), nil); err != nil {
		t.Errorf("Emit(nil event): %v", err)
	}
	if len(w.msgs) != 0 {
		t.Error("nil event should not be written")
	}
	p.Close()
	if !w.closed {
		t.Error("Close should close the writer")
	}
}
