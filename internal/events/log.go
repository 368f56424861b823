package events

import (
	"context"

	"tournament-backend/internal/logger"
)

// LogPublisher writes events to the application log. Used when no NATS URL is configured.
type LogPublisher struct{}

// NewLogPublisher creates a LogPublisher
func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

// Publish logs the event at debug level
func (p *LogPublisher) Publish(ctx context.Context, event Event) error {
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event_id":   event.ID,
		"event_type": event.Type,
	}).Debug("roster event")
	return nil
}

// Close is a no-op
func (p *LogPublisher) Close() error {
	return nil
}
