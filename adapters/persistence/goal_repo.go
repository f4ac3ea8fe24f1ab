package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/careerpilot/careerpilot/internal/domain/goal"
	"github.com/careerpilot/careerpilot/pkg/apperror"
)

type kvGoalRepo struct {
	store Store
}

func NewKVGoalRepo(store Store) goal.Repository {
	return &kvGoalRepo{store: store}
}

func (r *kvGoalRepo) Get(ctx context.Context, userID uuid.UUID) (goal.Record, error) {
	rec := goal.Record{}
	found, err := r.store.Get(ctx, GoalsKey(userID), &rec)
	if err != nil {
		return nil, apperror.NewInternal("failed to read goal record", err)
	}
	if !found {
		return nil, nil
	}
	return rec, nil
}

func (r *kvGoalRepo) Save(ctx context.Context, userID uuid.UUID, rec goal.Record) error {
	if err := r.store.Set(ctx, GoalsKey(userID), rec); err != nil {
		return apperror.NewInternal("failed to save goal record", err)
	}
	return nil
}
