package persistence

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careerpilot/careerpilot/internal/domain/skill"
	"github.com/careerpilot/careerpilot/pkg/apperror"
	"github.com/careerpilot/careerpilot/pkg/logger"
)

type kvSkillRepo struct {
	store  Store
	logger logger.Logger
}

func NewKVSkillRepo(store Store, log logger.Logger) skill.Repository {
	return &kvSkillRepo{store: store, logger: log}
}

func (r *kvSkillRepo) Upsert(ctx context.Context, s *skill.Skill) error {
	if err := r.store.Set(ctx, SkillKey(s.UserID, s.Name), s); err != nil {
		return apperror.NewInternal("failed to save skill record", err)
	}
	return nil
}

func (r *kvSkillRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*skill.Skill, error) {
	raw, err := r.store.GetByPrefix(ctx, SkillPrefix(userID))
	if err != nil {
		return nil, apperror.NewInternal("failed to list skill records", err)
	}

	skills := make([]*skill.Skill, 0, len(raw))
	for _, b := range raw {
		s := &skill.Skill{}
		if err := json.Unmarshal(b, s); err != nil {
			r.logger.Warn("skipping undecodable skill record", zap.String("user_id", userID.String()), zap.Error(err))
			continue
		}
		skills = append(skills, s)
	}
	return skills, nil
}
