package persistence

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careerpilot/careerpilot/internal/domain/achievement"
	"github.com/careerpilot/careerpilot/pkg/apperror"
	"github.com/careerpilot/careerpilot/pkg/logger"
)

type kvAchievementRepo struct {
	store  Store
	logger logger.Logger
}

func NewKVAchievementRepo(store Store, log logger.Logger) achievement.Repository {
	return &kvAchievementRepo{store: store, logger: log}
}

func (r *kvAchievementRepo) Save(ctx context.Context, a *achievement.Achievement) error {
	if err := r.store.Set(ctx, AchievementKey(a.UserID, a.ID), a); err != nil {
		return apperror.NewInternal("failed to save achievement record", err)
	}
	return nil
}

func (r *kvAchievementRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*achievement.Achievement, error) {
	raw, err := r.store.GetByPrefix(ctx, AchievementPrefix(userID))
	if err != nil {
		return nil, apperror.NewInternal("failed to list achievement records", err)
	}

	achievements := make([]*achievement.Achievement, 0, len(raw))
	for _, b := range raw {
		a := &achievement.Achievement{}
		if err := json.Unmarshal(b, a); err != nil {
			r.logger.Warn("skipping undecodable achievement record", zap.String("user_id", userID.String()), zap.Error(err))
			continue
		}
		achievements = append(achievements, a)
	}
	return achievements, nil
}
