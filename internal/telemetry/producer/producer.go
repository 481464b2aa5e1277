// Package producer publishes telemetry events to a message broker.
package producer

import (
	"account-service/internal/telemetry"
)

// Producer is a telemetry sink that owns a broker connection.
type Producer interface {
	telemetry.EventEmitter
	// Close releases resources (e.g. Kafka writer). Safe to call if already closed.
	Close() error
}
