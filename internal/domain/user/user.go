package user

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the resolved result of a bearer token. Every storage key in
// the system is namespaced by Identity.ID; it never comes from client input.
type Identity struct {
	ID       uuid.UUID      `json:"id"`
	Email    string         `json:"email"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Account is a user record as returned by the identity provider on signup.
type Account struct {
	ID        uuid.UUID      `json:"id"`
	Email     string         `json:"email"`
	Metadata  map[string]any `json:"user_metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
