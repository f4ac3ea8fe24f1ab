package skill

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/careerpilot/careerpilot/internal/domain/skill"
)

type SkillUseCase struct {
	skillRepo skill.Repository
}

func NewSkillUseCase(repo skill.Repository) *SkillUseCase {
	return &SkillUseCase{
		skillRepo: repo,
	}
}

type UpsertSkillInput struct {
	UserID       uuid.UUID
	Name         string
	CurrentLevel int
	TargetLevel  int
	Category     string
}

// ExecuteUpsertSkill replaces the record for (user, skill name). Posting
// the same skill twice leaves exactly one record with the latest values.
func (uc *SkillUseCase) ExecuteUpsertSkill(ctx context.Context, input UpsertSkillInput) error {
	s := &skill.Skill{
		UserID:       input.UserID,
		Name:         input.Name,
		CurrentLevel: input.CurrentLevel,
		TargetLevel:  input.TargetLevel,
		Category:     input.Category,
		LastUpdated:  time.Now().UTC(),
	}
	return uc.skillRepo.Upsert(ctx, s)
}

type ListSkillsInput struct {
	UserID uuid.UUID
}

type ListSkillsOutput struct {
	Skills []*skill.Skill
}

func (uc *SkillUseCase) ExecuteListSkills(ctx context.Context, input ListSkillsInput) (*ListSkillsOutput, error) {
	skills, err := uc.skillRepo.ListByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &ListSkillsOutput{Skills: skills}, nil
}
