package chat

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type MessageType string

const (
	TypeUser MessageType = "user"
	TypeAI   MessageType = "ai"
)

// Message is append-only: once written it is never mutated or deleted.
// ID doubles as the storage key of the record.
type Message struct {
	ID        string      `json:"id"`
	UserID    uuid.UUID   `json:"userId"`
	Type      MessageType `json:"type"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
}

type Repository interface {
	SaveMessage(ctx context.Context, msg *Message) error
	// AppendToHistory atomically appends message IDs to the user's history
	// index. Two concurrent appends both survive.
	AppendToHistory(ctx context.Context, userID uuid.UUID, messageIDs ...string) error
	// ListHistory resolves every indexed ID to its message, skipping IDs
	// whose record is gone, sorted ascending by the timestamp field.
	ListHistory(ctx context.Context, userID uuid.UUID) ([]*Message, error)
	// RecentHistory returns up to n of the most recent messages,
	// oldest of those first.
	RecentHistory(ctx context.Context, userID uuid.UUID, n int) ([]*Message, error)
}
