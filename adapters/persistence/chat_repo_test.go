package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpilot/careerpilot/internal/domain/chat"
	"github.com/careerpilot/careerpilot/pkg/logger"
)

func seedMessage(t *testing.T, repo chat.Repository, userID uuid.UUID, ts time.Time, content string) *chat.Message {
	t.Helper()
	msg := &chat.Message{
		ID:        ChatMessageKey(userID, ts.UnixMilli()),
		UserID:    userID,
		Type:      chat.TypeUser,
		Content:   content,
		Timestamp: ts,
	}
	require.NoError(t, repo.SaveMessage(context.Background(), msg))
	require.NoError(t, repo.AppendToHistory(context.Background(), userID, msg.ID))
	return msg
}

func TestChatRepo_ListHistorySortsByTimestamp(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewKVChatRepo(store, logger.NewNop())
	userID := uuid.New()

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	// appended out of timestamp order on purpose
	seedMessage(t, repo, userID, base.Add(2*time.Second), "third")
	seedMessage(t, repo, userID, base, "first")
	seedMessage(t, repo, userID, base.Add(time.Second), "second")

	messages, err := repo.ListHistory(ctx, userID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Content)
	assert.Equal(t, "second", messages[1].Content)
	assert.Equal(t, "third", messages[2].Content)
}

func TestChatRepo_ListHistoryToleratesMissingRecords(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewKVChatRepo(store, logger.NewNop())
	userID := uuid.New()

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	kept := seedMessage(t, repo, userID, base, "kept")
	dropped := seedMessage(t, repo, userID, base.Add(time.Second), "gone")

	require.NoError(t, store.Delete(ctx, dropped.ID))

	messages, err := repo.ListHistory(ctx, userID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, kept.ID, messages[0].ID)
}

func TestChatRepo_RecentHistoryIsBounded(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewKVChatRepo(store, logger.NewNop())
	userID := uuid.New()

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		seedMessage(t, repo, userID, base.Add(time.Duration(i)*time.Second), "msg")
	}

	recent, err := repo.RecentHistory(ctx, userID, 10)
	require.NoError(t, err)
	require.Len(t, recent, 10)
	// oldest of the ten first
	assert.Equal(t, base.Add(5*time.Second), recent[0].Timestamp)
	assert.Equal(t, base.Add(14*time.Second), recent[9].Timestamp)
}

func TestChatRepo_HistoryIsScopedPerUser(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewKVChatRepo(store, logger.NewNop())
	alice := uuid.New()
	bob := uuid.New()

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	seedMessage(t, repo, alice, base, "alice message")
	seedMessage(t, repo, bob, base, "bob message")

	messages, err := repo.ListHistory(ctx, alice)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "alice message", messages[0].Content)
}
