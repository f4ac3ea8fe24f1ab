package profile

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/careerpilot/careerpilot/internal/domain/profile"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
}

func NewProfileUseCase(repo profile.Repository) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
	}
}

type SaveProfileInput struct {
	UserID      uuid.UUID
	Name        string
	CurrentRole string
	Experience  string
	Education   string
	Skills      []string
	Goals       string
	Industries  []string
	Timeline    string
}

type SaveProfileOutput struct {
	UserID uuid.UUID
}

// ExecuteSaveProfile overwrites the user's profile wholesale; the last
// saved value always wins.
func (uc *ProfileUseCase) ExecuteSaveProfile(ctx context.Context, input SaveProfileInput) (*SaveProfileOutput, error) {
	p := &profile.Profile{
		UserID:      input.UserID,
		Name:        input.Name,
		CurrentRole: input.CurrentRole,
		Experience:  input.Experience,
		Education:   input.Education,
		Skills:      input.Skills,
		Goals:       input.Goals,
		Industries:  input.Industries,
		Timeline:    input.Timeline,
		UpdatedAt:   time.Now().UTC(),
	}

	if err := uc.profileRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return &SaveProfileOutput{UserID: input.UserID}, nil
}

type GetProfileInput struct {
	UserID uuid.UUID
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetProfileOutput{Profile: p}, nil
}
