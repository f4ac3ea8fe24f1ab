package chat

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careerpilot/careerpilot/adapters/persistence"
	"github.com/careerpilot/careerpilot/internal/domain/chat"
	"github.com/careerpilot/careerpilot/pkg/apperror"
	"github.com/careerpilot/careerpilot/pkg/logger"
)

type ChatUseCase struct {
	chatRepo chat.Repository
	keys     *persistence.MessageKeySequence
	logger   logger.Logger
}

func NewChatUseCase(repo chat.Repository, keys *persistence.MessageKeySequence, log logger.Logger) *ChatUseCase {
	return &ChatUseCase{
		chatRepo: repo,
		keys:     keys,
		logger:   log,
	}
}

type SaveMessageInput struct {
	UserID  uuid.UUID
	Type    chat.MessageType
	Content string
}

type SaveMessageOutput struct {
	MessageID string
}

// ExecuteSaveMessage writes the message record, then appends its key to
// the user's history index. The append is atomic at the store level, so
// concurrent saves for the same user cannot lose each other; the key
// sequence keeps saves within one millisecond from colliding.
func (uc *ChatUseCase) ExecuteSaveMessage(ctx context.Context, input SaveMessageInput) (*SaveMessageOutput, error) {
	if input.Type != chat.TypeUser && input.Type != chat.TypeAI {
		return nil, apperror.NewInvalidInput("message type must be 'user' or 'ai'", nil)
	}

	key, issuedAt := uc.keys.Next(input.UserID)
	msg := &chat.Message{
		ID:        key,
		UserID:    input.UserID,
		Type:      input.Type,
		Content:   input.Content,
		Timestamp: issuedAt,
	}

	if err := uc.chatRepo.SaveMessage(ctx, msg); err != nil {
		return nil, err
	}
	if err := uc.chatRepo.AppendToHistory(ctx, input.UserID, msg.ID); err != nil {
		return nil, err
	}

	uc.logger.Info("Chat message saved", zap.String("user_id", input.UserID.String()), zap.String("message_id", msg.ID))
	return &SaveMessageOutput{MessageID: msg.ID}, nil
}

type ListHistoryInput struct {
	UserID uuid.UUID
}

type ListHistoryOutput struct {
	Messages []*chat.Message
}

func (uc *ChatUseCase) ExecuteListHistory(ctx context.Context, input ListHistoryInput) (*ListHistoryOutput, error) {
	messages, err := uc.chatRepo.ListHistory(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &ListHistoryOutput{Messages: messages}, nil
}
