package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=events.go -destination=../mocks/events_mocks.go -package=mocks

// Roster event types. The NATS subject is "<prefix>.<type>".
const (
	TeamCreated           = "team.created"
	TeamUpdated           = "team.updated"
	TeamDeactivated       = "team.deactivated"
	TeamRosterDeactivated = "team.roster_deactivated"
	TeamCrestUpdated      = "team.crest_updated"
	PlayerRegistered      = "player.registered"
	PlayerUpdated         = "player.updated"
	PlayerDeactivated     = "player.deactivated"
)

// Event is the envelope written to the bus
type Event struct {
	ID         string      `json:"event_id"`
	Type       string      `json:"event_type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

// New builds an event with a fresh id
func New(eventType string, payload interface{}, occurredAt time.Time) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: occurredAt.UTC(),
		Payload:    payload,
	}
}

// Publisher delivers roster events after the change they describe has been committed
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// TeamPayload is carried by team.* events
type TeamPayload struct {
	TeamID   int64  `json:"team_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	CrestURL string `json:"crest_url,omitempty"`
	Active   bool   `json:"active"`
}

// RosterDeactivatedPayload is carried by team.roster_deactivated events
type RosterDeactivatedPayload struct {
	TeamID             int64 `json:"team_id"`
	DeactivatedPlayers int64 `json:"deactivated_players"`
}

// PlayerPayload is carried by player.* events
type PlayerPayload struct {
	PlayerID     int64  `json:"player_id"`
	TeamID       int64  `json:"team_id"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	JerseyNumber int    `json:"jersey_number"`
	Active       bool   `json:"active"`
}
