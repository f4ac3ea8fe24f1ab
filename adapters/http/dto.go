package http

import (
	"time"

	"github.com/careerpilot/careerpilot/internal/domain/achievement"
	"github.com/careerpilot/careerpilot/internal/domain/chat"
	"github.com/careerpilot/careerpilot/internal/domain/profile"
	"github.com/careerpilot/careerpilot/internal/domain/skill"
)

// Profile DTOs

type SaveProfileRequest struct {
	Name        string   `json:"name" binding:"required"`
	CurrentRole string   `json:"currentRole"`
	Experience  string   `json:"experience"`
	Education   string   `json:"education"`
	Skills      []string `json:"skills"`
	Goals       string   `json:"goals"`
	Industries  []string `json:"industries"`
	Timeline    string   `json:"timeline"`
}

type ProfileDTO struct {
	Name        string    `json:"name"`
	CurrentRole string    `json:"currentRole"`
	Experience  string    `json:"experience"`
	Education   string    `json:"education"`
	Skills      []string  `json:"skills"`
	Goals       string    `json:"goals"`
	Industries  []string  `json:"industries"`
	Timeline    string    `json:"timeline"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ToProfileDTO(p *profile.Profile) *ProfileDTO {
	if p == nil {
		return nil
	}
	return &ProfileDTO{
		Name:        p.Name,
		CurrentRole: p.CurrentRole,
		Experience:  p.Experience,
		Education:   p.Education,
		Skills:      p.Skills,
		Goals:       p.Goals,
		Industries:  p.Industries,
		Timeline:    p.Timeline,
		UpdatedAt:   p.UpdatedAt,
	}
}

// Chat DTOs

type SaveChatMessageRequest struct {
	Message string `json:"message" binding:"required"`
	Type    string `json:"type" binding:"required,oneof=user ai"`
}

type ChatMessageDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

func ToChatMessageDTO(m *chat.Message) ChatMessageDTO {
	return ChatMessageDTO{
		ID:        m.ID,
		UserID:    m.UserID.String(),
		Type:      string(m.Type),
		Content:   m.Content,
		Timestamp: m.Timestamp,
	}
}

func ToChatMessageDTOs(messages []*chat.Message) []ChatMessageDTO {
	dtos := make([]ChatMessageDTO, len(messages))
	for i, m := range messages {
		dtos[i] = ToChatMessageDTO(m)
	}
	return dtos
}

// Skill DTOs

type UpsertSkillRequest struct {
	Skill        string `json:"skill" binding:"required"`
	CurrentLevel int    `json:"currentLevel" binding:"min=0,max=100"`
	TargetLevel  int    `json:"targetLevel" binding:"min=0,max=100"`
	Category     string `json:"category"`
}

type SkillDTO struct {
	Skill        string    `json:"skill"`
	CurrentLevel int       `json:"currentLevel"`
	TargetLevel  int       `json:"targetLevel"`
	Category     string    `json:"category"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

func ToSkillDTOs(skills []*skill.Skill) []SkillDTO {
	dtos := make([]SkillDTO, len(skills))
	for i, s := range skills {
		dtos[i] = SkillDTO{
			Skill:        s.Name,
			CurrentLevel: s.CurrentLevel,
			TargetLevel:  s.TargetLevel,
			Category:     s.Category,
			LastUpdated:  s.LastUpdated,
		}
	}
	return dtos
}

// Achievement DTOs

type RecordAchievementRequest struct {
	AchievementID string `json:"achievementId" binding:"required"`
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
}

type AchievementDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CompletedAt time.Time `json:"completedAt"`
}

func ToAchievementDTOs(achievements []*achievement.Achievement) []AchievementDTO {
	dtos := make([]AchievementDTO, len(achievements))
	for i, a := range achievements {
		dtos[i] = AchievementDTO{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			CompletedAt: a.CompletedAt,
		}
	}
	return dtos
}

// Signup / AI chat DTOs

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
}

// UserDataDTO is the profile snapshot the browser client may send along
// with an AI chat request. When present it overrides the stored profile
// as the prompt's context source.
type UserDataDTO struct {
	Name        string   `json:"name"`
	CurrentRole string   `json:"currentRole"`
	Experience  string   `json:"experience"`
	Skills      []string `json:"skills"`
	Industries  []string `json:"industries"`
	Timeline    string   `json:"timeline"`
}

func (d *UserDataDTO) ToDomainProfile() *profile.Profile {
	if d == nil {
		return nil
	}
	return &profile.Profile{
		Name:        d.Name,
		CurrentRole: d.CurrentRole,
		Experience:  d.Experience,
		Skills:      d.Skills,
		Industries:  d.Industries,
		Timeline:    d.Timeline,
	}
}

type AIChatRequest struct {
	Message  string       `json:"message" binding:"required"`
	UserData *UserDataDTO `json:"userData"`
}

type AIChatResponse struct {
	Response      string `json:"response"`
	UserMessageID string `json:"userMessageId"`
	AIMessageID   string `json:"aiMessageId"`
}
