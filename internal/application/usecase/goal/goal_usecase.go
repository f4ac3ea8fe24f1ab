package goal

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/careerpilot/careerpilot/internal/domain/goal"
)

type GoalUseCase struct {
	goalRepo goal.Repository
}

func NewGoalUseCase(repo goal.Repository) *GoalUseCase {
	return &GoalUseCase{
		goalRepo: repo,
	}
}

type SaveGoalsInput struct {
	UserID uuid.UUID
	Fields map[string]any
}

// ExecuteSaveGoals overwrites the user's goal record. The original
// createdAt is carried forward from the existing record so repeated
// saves do not lose it.
func (uc *GoalUseCase) ExecuteSaveGoals(ctx context.Context, input SaveGoalsInput) error {
	now := time.Now().UTC().Format(time.RFC3339)

	rec := goal.Record{}
	for k, v := range input.Fields {
		rec[k] = v
	}
	rec["userId"] = input.UserID.String()
	rec["createdAt"] = now
	rec["lastUpdated"] = now

	existing, err := uc.goalRepo.Get(ctx, input.UserID)
	if err != nil {
		return err
	}
	if existing != nil {
		if createdAt, ok := existing["createdAt"]; ok {
			rec["createdAt"] = createdAt
		}
	}

	return uc.goalRepo.Save(ctx, input.UserID, rec)
}

type GetGoalsInput struct {
	UserID uuid.UUID
}

type GetGoalsOutput struct {
	Goals goal.Record
}

func (uc *GoalUseCase) ExecuteGetGoals(ctx context.Context, input GetGoalsInput) (*GetGoalsOutput, error) {
	rec, err := uc.goalRepo.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetGoalsOutput{Goals: rec}, nil
}
