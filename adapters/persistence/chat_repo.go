package persistence

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careerpilot/careerpilot/internal/domain/chat"
	"github.com/careerpilot/careerpilot/pkg/apperror"
	"github.com/careerpilot/careerpilot/pkg/logger"
)

type kvChatRepo struct {
	store  Store
	logger logger.Logger
}

func NewKVChatRepo(store Store, log logger.Logger) chat.Repository {
	return &kvChatRepo{store: store, logger: log}
}

func (r *kvChatRepo) SaveMessage(ctx context.Context, msg *chat.Message) error {
	if err := r.store.Set(ctx, msg.ID, msg); err != nil {
		return apperror.NewInternal("failed to save chat message", err)
	}
	return nil
}

func (r *kvChatRepo) AppendToHistory(ctx context.Context, userID uuid.UUID, messageIDs ...string) error {
	if err := r.store.Append(ctx, ChatHistoryKey(userID), messageIDs...); err != nil {
		return apperror.NewInternal("failed to append to chat history", err)
	}
	return nil
}

func (r *kvChatRepo) ListHistory(ctx context.Context, userID uuid.UUID) ([]*chat.Message, error) {
	ids, err := r.store.ListRange(ctx, ChatHistoryKey(userID), 0, -1)
	if err != nil {
		return nil, apperror.NewInternal("failed to read chat history index", err)
	}

	messages, err := r.resolve(ctx, ids)
	if err != nil {
		return nil, err
	}

	// The index is the ordering source, but display order follows the
	// timestamp field, which is only advisory.
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})
	return messages, nil
}

func (r *kvChatRepo) RecentHistory(ctx context.Context, userID uuid.UUID, n int) ([]*chat.Message, error) {
	ids, err := r.store.ListRange(ctx, ChatHistoryKey(userID), -int64(n), -1)
	if err != nil {
		return nil, apperror.NewInternal("failed to read chat history index", err)
	}
	return r.resolve(ctx, ids)
}

// resolve loads each indexed message, tolerating IDs whose record no
// longer resolves.
func (r *kvChatRepo) resolve(ctx context.Context, ids []string) ([]*chat.Message, error) {
	messages := make([]*chat.Message, 0, len(ids))
	for _, id := range ids {
		msg := &chat.Message{}
		found, err := r.store.Get(ctx, id, msg)
		if err != nil {
			return nil, apperror.NewInternal("failed to resolve chat message", err)
		}
		if !found {
			r.logger.Warn("chat history index entry has no record", zap.String("message_id", id))
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}
