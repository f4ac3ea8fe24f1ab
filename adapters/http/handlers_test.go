package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/careerpilot/careerpilot/adapters/event"
	"github.com/careerpilot/careerpilot/adapters/identity"
	"github.com/careerpilot/careerpilot/adapters/persistence"
	achievementUC "github.com/careerpilot/careerpilot/internal/application/usecase/achievement"
	chatUC "github.com/careerpilot/careerpilot/internal/application/usecase/chat"
	counsellorUC "github.com/careerpilot/careerpilot/internal/application/usecase/counsellor"
	goalUC "github.com/careerpilot/careerpilot/internal/application/usecase/goal"
	profileUC "github.com/careerpilot/careerpilot/internal/application/usecase/profile"
	signupUC "github.com/careerpilot/careerpilot/internal/application/usecase/signup"
	skillUC "github.com/careerpilot/careerpilot/internal/application/usecase/skill"
	"github.com/careerpilot/careerpilot/internal/domain/user"
	"github.com/careerpilot/careerpilot/pkg/logger"
)

const validToken = "valid-access-token"

type fakeIdentityProvider struct {
	userID    uuid.UUID
	createErr error
}

func (f *fakeIdentityProvider) ResolveToken(_ context.Context, token string) (*user.Identity, error) {
	if token != validToken {
		return nil, fmt.Errorf("unknown token")
	}
	return &user.Identity{ID: f.userID, Email: "dana@example.com"}, nil
}

func (f *fakeIdentityProvider) CreateUser(_ context.Context, email, _, name string) (*user.Account, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &user.Account{
		ID:        uuid.New(),
		Email:     email,
		Metadata:  map[string]any{"name": name},
		CreatedAt: time.Now().UTC(),
	}, nil
}

type fakeLLM struct {
	response string
}

func (f *fakeLLM) GenerateChatResponse(_ context.Context, _ string) (string, error) {
	return f.response, nil
}

type HandlersSuite struct {
	suite.Suite
	router   *gin.Engine
	store    *persistence.MemoryStore
	userID   uuid.UUID
	provider *fakeIdentityProvider
}

func (s *HandlersSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()

	s.userID = uuid.New()
	s.provider = &fakeIdentityProvider{userID: s.userID}
	s.store = persistence.NewMemoryStore()

	profileRepo := persistence.NewKVProfileRepo(s.store)
	chatRepo := persistence.NewKVChatRepo(s.store, log)
	skillRepo := persistence.NewKVSkillRepo(s.store, log)
	goalRepo := persistence.NewKVGoalRepo(s.store)
	achievementRepo := persistence.NewKVAchievementRepo(s.store, log)
	publisher := event.NoopPublisher{}
	llm := &fakeLLM{response: "Work on your portfolio."}
	messageKeys := persistence.NewMessageKeySequence()

	h := Handlers{
		Profile:     NewProfileHandler(profileUC.NewProfileUseCase(profileRepo), log),
		Chat:        NewChatHandler(chatUC.NewChatUseCase(chatRepo, messageKeys, log), log),
		Skill:       NewSkillHandler(skillUC.NewSkillUseCase(skillRepo), log),
		Goal:        NewGoalHandler(goalUC.NewGoalUseCase(goalRepo), log),
		Achievement: NewAchievementHandler(achievementUC.NewAchievementUseCase(achievementRepo, publisher, log), log),
		Auth:        NewAuthHandler(signupUC.NewSignupUseCase(s.provider, log), log),
		Counsellor: NewCounsellorHandler(
			counsellorUC.NewCounsellorUseCase(profileRepo, chatRepo, llm, publisher, messageKeys, log), log),
	}

	s.router = NewRouter(log, s.provider, h)
}

func (s *HandlersSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlersSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func (s *HandlersSuite) TestHealth() {
	w := s.do(http.MethodGet, "/api/v1/health", "", nil)
	s.Equal(http.StatusOK, w.Code)
	body := s.decode(w)
	s.Equal("ok", body["status"])
	s.NotEmpty(body["timestamp"])
}

func (s *HandlersSuite) TestMissingTokenIsRejected() {
	w := s.do(http.MethodPost, "/api/v1/profile", "", gin.H{"name": "Dana"})
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("Authorization required", s.decode(w)["error"])

	// nothing was written
	var dest map[string]any
	found, err := s.store.Get(context.Background(), persistence.ProfileKey(s.userID), &dest)
	s.Require().NoError(err)
	s.False(found)
}

func (s *HandlersSuite) TestBadTokenIsRejected() {
	w := s.do(http.MethodPost, "/api/v1/profile", "forged-token", gin.H{"name": "Dana"})
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("Invalid authorization", s.decode(w)["error"])
}

func (s *HandlersSuite) TestProfileRoundTrip() {
	save := s.do(http.MethodPost, "/api/v1/profile", validToken, gin.H{
		"name":        "Dana",
		"currentRole": "Analyst",
		"skills":      []string{"SQL"},
	})
	s.Equal(http.StatusOK, save.Code)
	saved := s.decode(save)
	s.Equal(true, saved["success"])
	s.Equal(s.userID.String(), saved["userId"])

	get := s.do(http.MethodGet, "/api/v1/profile", validToken, nil)
	s.Equal(http.StatusOK, get.Code)
	profile, ok := s.decode(get)["profile"].(map[string]any)
	s.Require().True(ok)
	s.Equal("Dana", profile["name"])
	s.Equal("Analyst", profile["currentRole"])
}

func (s *HandlersSuite) TestProfileMissingNameIsBadRequest() {
	w := s.do(http.MethodPost, "/api/v1/profile", validToken, gin.H{"currentRole": "Analyst"})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersSuite) TestGetProfileBeforeSaveReturnsNull() {
	w := s.do(http.MethodGet, "/api/v1/profile", validToken, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Nil(s.decode(w)["profile"])
}

func (s *HandlersSuite) TestChatSaveAndHistory() {
	// back to back, no pause: key issuance must keep the IDs distinct
	first := s.do(http.MethodPost, "/api/v1/chat", validToken, gin.H{"message": "hello", "type": "user"})
	s.Equal(http.StatusOK, first.Code)
	firstID := s.decode(first)["messageId"]
	s.NotEmpty(firstID)

	second := s.do(http.MethodPost, "/api/v1/chat", validToken, gin.H{"message": "hi there", "type": "ai"})
	s.Equal(http.StatusOK, second.Code)
	s.NotEqual(firstID, s.decode(second)["messageId"])

	// path segment is ignored; history always belongs to the token's user
	history := s.do(http.MethodGet, "/api/v1/chat/"+uuid.NewString(), validToken, nil)
	s.Equal(http.StatusOK, history.Code)
	messages, ok := s.decode(history)["messages"].([]any)
	s.Require().True(ok)
	s.Require().Len(messages, 2)
	firstMsg := messages[0].(map[string]any)
	s.Equal("hello", firstMsg["content"])
	s.Equal("user", firstMsg["type"])
}

func (s *HandlersSuite) TestChatRejectsUnknownType() {
	w := s.do(http.MethodPost, "/api/v1/chat", validToken, gin.H{"message": "hello", "type": "system"})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersSuite) TestSkillsRoundTrip() {
	save := s.do(http.MethodPost, "/api/v1/skills", validToken, gin.H{
		"skill":        "Go",
		"currentLevel": 40,
		"targetLevel":  80,
		"category":     "engineering",
	})
	s.Equal(http.StatusOK, save.Code)

	list := s.do(http.MethodGet, "/api/v1/skills", validToken, nil)
	s.Equal(http.StatusOK, list.Code)
	skills, ok := s.decode(list)["skills"].([]any)
	s.Require().True(ok)
	s.Require().Len(skills, 1)
	s.Equal("Go", skills[0].(map[string]any)["skill"])
}

func (s *HandlersSuite) TestSkillLevelOutOfRangeIsBadRequest() {
	w := s.do(http.MethodPost, "/api/v1/skills", validToken, gin.H{
		"skill":        "Go",
		"currentLevel": 250,
	})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersSuite) TestGoalsRoundTrip() {
	save := s.do(http.MethodPost, "/api/v1/goals", validToken, gin.H{
		"shortTerm": "learn Go",
		"longTerm":  "become a staff engineer",
	})
	s.Equal(http.StatusOK, save.Code)

	get := s.do(http.MethodGet, "/api/v1/goals", validToken, nil)
	s.Equal(http.StatusOK, get.Code)
	goals, ok := s.decode(get)["goals"].(map[string]any)
	s.Require().True(ok)
	s.Equal("learn Go", goals["shortTerm"])
	s.Equal(s.userID.String(), goals["userId"])
	s.NotEmpty(goals["createdAt"])
}

func (s *HandlersSuite) TestAchievementsRoundTrip() {
	record := s.do(http.MethodPost, "/api/v1/achievements", validToken, gin.H{
		"achievementId": "first-goal",
		"title":         "First goal set",
	})
	s.Equal(http.StatusOK, record.Code)

	list := s.do(http.MethodGet, "/api/v1/achievements", validToken, nil)
	s.Equal(http.StatusOK, list.Code)
	achievements, ok := s.decode(list)["achievements"].([]any)
	s.Require().True(ok)
	s.Require().Len(achievements, 1)
	s.Equal("First goal set", achievements[0].(map[string]any)["title"])
}

func (s *HandlersSuite) TestAIChatRoundTrip() {
	w := s.do(http.MethodPost, "/api/v1/ai-chat", validToken, gin.H{
		"message": "How do I get promoted?",
		"userData": gin.H{
			"name":        "Dana",
			"currentRole": "Analyst",
		},
	})
	s.Equal(http.StatusOK, w.Code)
	body := s.decode(w)
	s.Equal("Work on your portfolio.", body["response"])
	s.NotEmpty(body["userMessageId"])
	s.NotEmpty(body["aiMessageId"])

	// both sides of the exchange were persisted
	history := s.do(http.MethodGet, "/api/v1/chat/"+s.userID.String(), validToken, nil)
	messages, ok := s.decode(history)["messages"].([]any)
	s.Require().True(ok)
	s.Len(messages, 2)
}

func (s *HandlersSuite) TestAIChatEmptyMessageIsBadRequest() {
	w := s.do(http.MethodPost, "/api/v1/ai-chat", validToken, gin.H{"message": ""})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersSuite) TestSignup() {
	w := s.do(http.MethodPost, "/api/v1/signup", "", gin.H{
		"email":    "new@example.com",
		"password": "hunter22",
		"name":     "New User",
	})
	s.Equal(http.StatusOK, w.Code)
	body := s.decode(w)
	s.Equal(true, body["success"])
	userBody, ok := body["user"].(map[string]any)
	s.Require().True(ok)
	s.Equal("new@example.com", userBody["email"])
}

func (s *HandlersSuite) TestSignupProviderRejectionIsSurfaced() {
	s.provider.createErr = &identity.ProviderError{
		Status:  http.StatusUnprocessableEntity,
		Message: "A user with this email address has already been registered",
	}

	w := s.do(http.MethodPost, "/api/v1/signup", "", gin.H{
		"email":    "dup@example.com",
		"password": "hunter22",
	})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("A user with this email address has already been registered", s.decode(w)["error"])
}

func (s *HandlersSuite) TestSignupShortPasswordIsBadRequest() {
	w := s.do(http.MethodPost, "/api/v1/signup", "", gin.H{
		"email":    "new@example.com",
		"password": "abc",
	})
	s.Equal(http.StatusBadRequest, w.Code)
}

func TestHandlersSuite(t *testing.T) {
	suite.Run(t, new(HandlersSuite))
}
