package signup

import (
	"context"

	"go.uber.org/zap"

	"github.com/careerpilot/careerpilot/internal/application/service"
	"github.com/careerpilot/careerpilot/internal/domain/user"
	"github.com/careerpilot/careerpilot/pkg/logger"
)

type SignupUseCase struct {
	identity service.IdentityProvider
	logger   logger.Logger
}

func NewSignupUseCase(provider service.IdentityProvider, log logger.Logger) *SignupUseCase {
	return &SignupUseCase{
		identity: provider,
		logger:   log,
	}
}

type SignupInput struct {
	Email    string
	Password string
	Name     string
}

type SignupOutput struct {
	User *user.Account
}

// Execute delegates account creation to the identity provider; this
// service never stores credentials itself.
func (uc *SignupUseCase) Execute(ctx context.Context, input SignupInput) (*SignupOutput, error) {
	account, err := uc.identity.CreateUser(ctx, input.Email, input.Password, input.Name)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("User created successfully", zap.String("email", input.Email))
	return &SignupOutput{User: account}, nil
}
