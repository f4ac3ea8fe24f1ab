package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/careerpilot/careerpilot/internal/domain/profile"
	"github.com/careerpilot/careerpilot/pkg/apperror"
)

type kvProfileRepo struct {
	store Store
}

func NewKVProfileRepo(store Store) profile.Repository {
	return &kvProfileRepo{store: store}
}

func (r *kvProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	p := &profile.Profile{}
	found, err := r.store.Get(ctx, ProfileKey(userID), p)
	if err != nil {
		return nil, apperror.NewInternal("failed to read profile", err)
	}
	if !found {
		return nil, nil
	}
	return p, nil
}

func (r *kvProfileRepo) Save(ctx context.Context, p *profile.Profile) error {
	if err := r.store.Set(ctx, ProfileKey(p.UserID), p); err != nil {
		return apperror.NewInternal("failed to save profile", err)
	}
	return nil
}
