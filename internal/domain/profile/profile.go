package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Profile holds the onboarding answers for one user. It is overwritten
// wholesale on every save; there is no field-level merge or versioning.
type Profile struct {
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	CurrentRole string    `json:"currentRole"`
	Experience  string    `json:"experience"`
	Education   string    `json:"education"`
	Skills      []string  `json:"skills"`
	Goals       string    `json:"goals"`
	Industries  []string  `json:"industries"`
	Timeline    string    `json:"timeline"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Repository interface {
	// GetByUserID returns nil (no error) when the user has not saved a
	// profile yet.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Save(ctx context.Context, p *Profile) error
}
