package chat

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpilot/careerpilot/adapters/persistence"
	"github.com/careerpilot/careerpilot/internal/domain/chat"
	"github.com/careerpilot/careerpilot/pkg/logger"
)

func newTestUseCase() *ChatUseCase {
	store := persistence.NewMemoryStore()
	return NewChatUseCase(
		persistence.NewKVChatRepo(store, logger.NewNop()),
		persistence.NewMessageKeySequence(),
		logger.NewNop(),
	)
}

func TestChat_SequentialSavesComeBackInOrder(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()
	userID := uuid.New()

	contents := []string{"hello", "how do I grow?", "thanks"}
	for _, content := range contents {
		_, err := uc.ExecuteSaveMessage(ctx, SaveMessageInput{
			UserID:  userID,
			Type:    chat.TypeUser,
			Content: content,
		})
		require.NoError(t, err)
	}

	out, err := uc.ExecuteListHistory(ctx, ListHistoryInput{UserID: userID})
	require.NoError(t, err)
	require.Len(t, out.Messages, len(contents))
	for i, content := range contents {
		assert.Equal(t, content, out.Messages[i].Content)
	}
	for i := 1; i < len(out.Messages); i++ {
		assert.True(t, out.Messages[i].Timestamp.After(out.Messages[i-1].Timestamp))
	}
}

func TestChat_BackToBackSavesNeverCollide(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()
	userID := uuid.New()

	// no pauses: many of these land within the same millisecond
	const n = 100
	seenIDs := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		out, err := uc.ExecuteSaveMessage(ctx, SaveMessageInput{
			UserID:  userID,
			Type:    chat.TypeUser,
			Content: fmt.Sprintf("message %d", i),
		})
		require.NoError(t, err)
		assert.False(t, seenIDs[out.MessageID], "message ID issued twice: %s", out.MessageID)
		seenIDs[out.MessageID] = true
	}

	out, err := uc.ExecuteListHistory(ctx, ListHistoryInput{UserID: userID})
	require.NoError(t, err)
	require.Len(t, out.Messages, n)
	for i, msg := range out.Messages {
		assert.Equal(t, fmt.Sprintf("message %d", i), msg.Content)
	}
}

func TestChat_SaveRejectsUnknownType(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	_, err := uc.ExecuteSaveMessage(ctx, SaveMessageInput{
		UserID:  uuid.New(),
		Type:    chat.MessageType("system"),
		Content: "nope",
	})
	assert.Error(t, err)
}

func TestChat_EmptyHistory(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	out, err := uc.ExecuteListHistory(ctx, ListHistoryInput{UserID: uuid.New()})
	require.NoError(t, err)
	assert.Empty(t, out.Messages)
}
