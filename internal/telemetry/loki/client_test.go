package loki

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"account-service/internal/telemetry"
)

var _ telemetry.EventEmitter = (*Client)(nil)

func TestNewClient_Empty(t *testing.T) {
	if NewClient("  ") != nil {
		t.Error("empty base URL should disable the client")
	}
}

func TestEmit_Push(t *testing.T) {
	var got PushRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/loki/api/v1/push" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := NewClient(server.URL + "/")
	created := time.Unix(1700000000, 5).UTC()
	err := c.Emit(context.Background(), &telemetry.Event{
		UserID:    "user-1",
		EventType: "grpc_request",
		Source:    "grpc interceptor",
		CreatedAt: created,
	})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if len(got.Streams) != 1 || len(got.Streams[0].Values) != 1 {
		t.Fatalf("streams = %+v", got.Streams)
	}
	labels := got.Streams[0].Stream
	if labels["job"] != defaultJob || labels["event_type"] != "grpc_request" || labels["source"] != "grpc_interceptor" {
		t.Errorf("labels = %v", labels)
	}
	entry := got.Streams[0].Values[0]
	if entry[0] != "1700000000000000005" {
		t.Errorf("timestamp = %q", entry[0])
	}
	if !strings.Contains(entry[1], `"userId":"user-1"`) {
		t.Errorf("line = %q", entry[1])
	}
}

func TestEmit_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	err := NewClient(server.URL).Emit(context.Background(), &telemetry.Event{EventType: "x"})
	if err == nil || !strings.Contains(err.Error(), "400") {
		t.Errorf("err = %v, want 400 status", err)
	}
}

func TestEmit_NilSafe(t *testing.T) {
	var c *Client
	if err := c.Emit(context.Background(), &telemetry.Event{}); err != nil {
		t.Errorf("nil client Emit: %v", err)
	}
}
