package counsellor

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/careerpilot/careerpilot/adapters/persistence"
	"github.com/careerpilot/careerpilot/internal/application/service"
	"github.com/careerpilot/careerpilot/internal/domain/chat"
	"github.com/careerpilot/careerpilot/internal/domain/profile"
	"github.com/careerpilot/careerpilot/pkg/apperror"
	"github.com/careerpilot/careerpilot/pkg/logger"
)

// recentContextSize is the number of history entries rendered into the
// prompt. The index is read with a tail range, not a full-list fetch.
const recentContextSize = 10

type CounsellorUseCase struct {
	profileRepo profile.Repository
	chatRepo    chat.Repository
	llm         service.LLMService
	events      service.EventPublisher
	keys        *persistence.MessageKeySequence
	logger      logger.Logger
}

func NewCounsellorUseCase(
	pRepo profile.Repository,
	cRepo chat.Repository,
	llm service.LLMService,
	events service.EventPublisher,
	keys *persistence.MessageKeySequence,
	log logger.Logger,
) *CounsellorUseCase {
	return &CounsellorUseCase{
		profileRepo: pRepo,
		chatRepo:    cRepo,
		llm:         llm,
		events:      events,
		keys:        keys,
		logger:      log,
	}
}

type ChatInput struct {
	UserID  uuid.UUID
	Message string
	// Profile, when set, overrides the stored profile as the prompt's
	// context source (the browser client sends its own snapshot).
	Profile *profile.Profile
}

type ChatOutput struct {
	Response      string
	UserMessageID string
	AIMessageID   string
}

var tracer = otel.Tracer("counsellor_usecase")

// Execute runs one counselling exchange: gather context, compose the
// prompt, call the model, and only then persist the pair of messages.
// A failed upstream call persists nothing; the client keeps its draft.
func (uc *CounsellorUseCase) Execute(ctx context.Context, input ChatInput) (*ChatOutput, error) {
	ctx, span := tracer.Start(ctx, "Execute")
	defer span.End()

	if strings.TrimSpace(input.Message) == "" {
		return nil, apperror.NewInvalidInput("message is required", nil)
	}

	l := uc.logger.With(zap.String("user_id", input.UserID.String()))

	p := input.Profile
	if p == nil {
		stored, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
		if err != nil {
			l.Error("Failed to load profile for prompt context", err)
			return nil, err
		}
		p = stored
	}

	recent, err := uc.chatRepo.RecentHistory(ctx, input.UserID, recentContextSize)
	if err != nil {
		l.Error("Failed to load recent chat history", err)
		return nil, err
	}

	prompt := BuildPrompt(p, recent, input.Message)

	response, err := uc.llm.GenerateChatResponse(ctx, prompt)
	if err != nil {
		span.RecordError(err)
		l.Error("LLM call failed", err)
		return nil, apperror.NewUpstream("Failed to generate AI response", "language model call failed", err)
	}

	userKey, userIssuedAt := uc.keys.Next(input.UserID)
	userMsg := &chat.Message{
		ID:        userKey,
		UserID:    input.UserID,
		Type:      chat.TypeUser,
		Content:   input.Message,
		Timestamp: userIssuedAt,
	}
	aiKey, aiIssuedAt := uc.keys.Next(input.UserID)
	aiMsg := &chat.Message{
		ID:        aiKey,
		UserID:    input.UserID,
		Type:      chat.TypeAI,
		Content:   response,
		Timestamp: aiIssuedAt,
	}

	if err := uc.chatRepo.SaveMessage(ctx, userMsg); err != nil {
		return nil, err
	}
	if err := uc.chatRepo.SaveMessage(ctx, aiMsg); err != nil {
		return nil, err
	}
	if err := uc.chatRepo.AppendToHistory(ctx, input.UserID, userMsg.ID, aiMsg.ID); err != nil {
		return nil, err
	}

	if err := uc.events.Publish(ctx, service.EventPayload{
		EventType:  service.EventCounsellorExchange,
		UserID:     input.UserID.String(),
		EntityID:   aiMsg.ID,
		OccurredAt: aiIssuedAt,
	}); err != nil {
		l.Warn("Failed to publish counsellor exchange event", zap.Error(err))
	}

	span.SetAttributes(attribute.String("user_id", input.UserID.String()))
	l.Info("Counsellor exchange completed", zap.String("ai_message_id", aiMsg.ID))

	return &ChatOutput{
		Response:      response,
		UserMessageID: userMsg.ID,
		AIMessageID:   aiMsg.ID,
	}, nil
}
