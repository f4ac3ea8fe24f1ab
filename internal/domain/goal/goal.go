package goal

import (
	"context"

	"github.com/google/uuid"
)

// Record holds one user's goal document. The goal fields themselves are
// client-shaped and stored as-is; only userId, createdAt and lastUpdated
// are owned by the server.
type Record map[string]any

type Repository interface {
	// Get returns nil (no error) when the user has no goal record.
	Get(ctx context.Context, userID uuid.UUID) (Record, error)
	Save(ctx context.Context, userID uuid.UUID, rec Record) error
}
