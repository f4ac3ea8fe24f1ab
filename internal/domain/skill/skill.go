package skill

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Skill tracks progress for one (user, skill name) pair. Upserts replace
// the whole record; LastUpdated is refreshed on every write.
type Skill struct {
	UserID       uuid.UUID `json:"userId"`
	Name         string    `json:"skill"`
	CurrentLevel int       `json:"currentLevel"`
	TargetLevel  int       `json:"targetLevel"`
	Category     string    `json:"category"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

type Repository interface {
	Upsert(ctx context.Context, s *Skill) error
	// ListByUser returns the user's skills in adapter order (unspecified).
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Skill, error)
}
