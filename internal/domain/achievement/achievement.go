package achievement

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Achievement records one completed milestone. Re-recording the same ID
// overwrites the record with a fresh CompletedAt.
type Achievement struct {
	ID          string    `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CompletedAt time.Time `json:"completedAt"`
}

type Repository interface {
	Save(ctx context.Context, a *Achievement) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Achievement, error)
}
