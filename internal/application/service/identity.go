package service

import (
	"context"

	"github.com/careerpilot/careerpilot/internal/domain/user"
)

// IdentityProvider is the outbound port to the external auth service.
// ResolveToken is called once per authenticated request; results are
// never cached across requests.
type IdentityProvider interface {
	ResolveToken(ctx context.Context, token string) (*user.Identity, error)
	CreateUser(ctx context.Context, email, password, name string) (*user.Account, error)
}
