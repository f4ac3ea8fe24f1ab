package achievement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careerpilot/careerpilot/internal/application/service"
	"github.com/careerpilot/careerpilot/internal/domain/achievement"
	"github.com/careerpilot/careerpilot/pkg/logger"
)

type AchievementUseCase struct {
	achievementRepo achievement.Repository
	events          service.EventPublisher
	logger          logger.Logger
}

func NewAchievementUseCase(repo achievement.Repository, events service.EventPublisher, log logger.Logger) *AchievementUseCase {
	return &AchievementUseCase{
		achievementRepo: repo,
		events:          events,
		logger:          log,
	}
}

type RecordAchievementInput struct {
	UserID        uuid.UUID
	AchievementID string
	Title         string
	Description   string
}

// ExecuteRecord is idempotent on AchievementID: a repeat completion
// overwrites the record with a fresh completedAt, never duplicating it.
func (uc *AchievementUseCase) ExecuteRecord(ctx context.Context, input RecordAchievementInput) error {
	a := &achievement.Achievement{
		ID:          input.AchievementID,
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		CompletedAt: time.Now().UTC(),
	}

	if err := uc.achievementRepo.Save(ctx, a); err != nil {
		return err
	}

	if err := uc.events.Publish(ctx, service.EventPayload{
		EventType:  service.EventAchievementUnlocked,
		UserID:     input.UserID.String(),
		EntityID:   input.AchievementID,
		OccurredAt: a.CompletedAt,
	}); err != nil {
		uc.logger.Warn("Failed to publish achievement event",
			zap.String("user_id", input.UserID.String()),
			zap.String("achievement_id", input.AchievementID),
			zap.Error(err))
	}

	uc.logger.Info("Achievement unlocked",
		zap.String("user_id", input.UserID.String()), zap.String("title", input.Title))
	return nil
}

type ListAchievementsInput struct {
	UserID uuid.UUID
}

type ListAchievementsOutput struct {
	Achievements []*achievement.Achievement
}

func (uc *AchievementUseCase) ExecuteList(ctx context.Context, input ListAchievementsInput) (*ListAchievementsOutput, error) {
	achievements, err := uc.achievementRepo.ListByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &ListAchievementsOutput{Achievements: achievements}, nil
}
