package persistence

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Key composition for the flat namespace. Every key embeds the resolved
// user ID so prefix scans can never cross a user boundary.

func ProfileKey(userID uuid.UUID) string {
	return fmt.Sprintf("profile:%s", userID)
}

func ChatMessageKey(userID uuid.UUID, unixMilli int64) string {
	return fmt.Sprintf("chat:%s:%d", userID, unixMilli)
}

func ChatHistoryKey(userID uuid.UUID) string {
	return fmt.Sprintf("chat_history:%s", userID)
}

func SkillKey(userID uuid.UUID, skillName string) string {
	return fmt.Sprintf("skill:%s:%s", userID, skillName)
}

func SkillPrefix(userID uuid.UUID) string {
	return fmt.Sprintf("skill:%s:", userID)
}

func GoalsKey(userID uuid.UUID) string {
	return fmt.Sprintf("goals:%s", userID)
}

func AchievementKey(userID uuid.UUID, achievementID string) string {
	return fmt.Sprintf("achievement:%s:%s", userID, achievementID)
}

func AchievementPrefix(userID uuid.UUID) string {
	return fmt.Sprintf("achievement:%s:", userID)
}

// MessageKeySequence issues chat message keys with strictly increasing
// millisecond timestamps. Message keys embed the timestamp, so without
// this two saves landing in the same millisecond would collide and the
// later record would overwrite the earlier one.
type MessageKeySequence struct {
	mu   sync.Mutex
	last int64
}

func NewMessageKeySequence() *MessageKeySequence {
	return &MessageKeySequence{}
}

// Next returns a fresh message key for the user together with the
// timestamp it embeds. The timestamp never repeats or goes backwards
// within this process, even when the wall clock does.
func (s *MessageKeySequence) Next(userID uuid.UUID) (string, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ms := time.Now().UnixMilli()
	if ms <= s.last {
		ms = s.last + 1
	}
	s.last = ms

	return ChatMessageKey(userID, ms), time.UnixMilli(ms).UTC()
}
