package service

import (
	"context"
	"time"
)

const (
	EventAchievementUnlocked = "achievement.unlocked"
	EventCounsellorExchange  = "counsellor.exchange"
)

type EventPayload struct {
	EventType  string    `json:"event_type"`
	UserID     string    `json:"user_id"`
	EntityID   string    `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher emits domain events for downstream consumers. Publishing
// is best-effort: callers log failures and never fail the request on them.
type EventPublisher interface {
	Publish(ctx context.Context, payload EventPayload) error
}
