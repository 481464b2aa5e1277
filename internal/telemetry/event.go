// Package telemetry carries best-effort request events to external sinks (Kafka, OTel logs, Loki).
package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Event is a single telemetry event. Metadata is an event-type specific JSON object.
type Event struct {
	UserID    string          `json:"userId,omitempty"`
	SessionID string          `json:"sessionId,omitempty"`
	EventType string          `json:"eventType"`
	Source    string          `json:"source"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// EventEmitter emits telemetry events. Best-effort; callers log and ignore errors.
type EventEmitter interface {
	Emit(ctx context.Context, event *Event) error
}

// Fanout emits every event to each non-nil emitter in order and joins their errors.
type Fanout []EventEmitter

// NewFanout drops nil emitters. Returns nil when none remain, so callers can skip telemetry entirely.
func NewFanout(emitters ...EventEmitter) EventEmitter {
	out := make(Fanout, 0, len(emitters))
	for _, e := range emitters {
		if e != nil {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Emit sends event to all emitters; one failing sink does not stop the others.
func (f Fanout) Emit(ctx context.Context, event *Event) error {
	var errs []error
	for _, e := range f {
		if err := e.Emit(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
