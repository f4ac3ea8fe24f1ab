package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpilot/careerpilot/internal/config"
	"github.com/careerpilot/careerpilot/pkg/logger"
)

const testJWTSecret = "super-secret-signing-key"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func adapterConfig(baseURL, secret string) config.Config {
	var cfg config.Config
	cfg.Identity.URL = baseURL
	cfg.Identity.AnonKey = "anon-key"
	cfg.Identity.ServiceKey = "service-key"
	cfg.Identity.JWTSecret = secret
	return cfg
}

func TestSupabase_LocalResolveValidToken(t *testing.T) {
	userID := uuid.New()
	token := signToken(t, jwt.MapClaims{
		"sub":   userID.String(),
		"email": "dana@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
		"user_metadata": map[string]any{
			"name": "Dana",
		},
	})

	// no server needed: the adapter must never hit the network here
	provider, err := NewSupabaseAdapter(adapterConfig("http://identity.invalid", testJWTSecret), logger.NewNop())
	require.NoError(t, err)

	identity, err := provider.ResolveToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, identity.ID)
	assert.Equal(t, "dana@example.com", identity.Email)
	assert.Equal(t, "Dana", identity.Metadata["name"])
}

func TestSupabase_LocalResolveRejectsExpiredToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub": uuid.NewString(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	provider, err := NewSupabaseAdapter(adapterConfig(server.URL, testJWTSecret), logger.NewNop())
	require.NoError(t, err)

	// local verification fails, the remote fallback also rejects
	_, err = provider.ResolveToken(context.Background(), token)
	assert.Error(t, err)
}

func TestSupabase_RemoteResolveFallback(t *testing.T) {
	userID := uuid.New()
	var gotAuth, gotAPIKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		gotAuth = r.Header.Get("Authorization")
		gotAPIKey = r.Header.Get("apikey")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":    userID.String(),
			"email": "dana@example.com",
		})
	}))
	defer server.Close()

	// no JWT secret configured, every resolution goes remote
	provider, err := NewSupabaseAdapter(adapterConfig(server.URL, ""), logger.NewNop())
	require.NoError(t, err)

	identity, err := provider.ResolveToken(context.Background(), "opaque-access-token")
	require.NoError(t, err)
	assert.Equal(t, userID, identity.ID)
	assert.Equal(t, "Bearer opaque-access-token", gotAuth)
	assert.Equal(t, "anon-key", gotAPIKey)
}

func TestSupabase_CreateUser(t *testing.T) {
	userID := uuid.New()
	now := time.Now().UTC().Truncate(time.Second)
	var gotReq createUserRequest
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/admin/users" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":            userID.String(),
			"email":         "new@example.com",
			"created_at":    now.Format(time.RFC3339),
			"user_metadata": map[string]any{"name": "New User"},
		})
	}))
	defer server.Close()

	provider, err := NewSupabaseAdapter(adapterConfig(server.URL, testJWTSecret), logger.NewNop())
	require.NoError(t, err)

	account, err := provider.CreateUser(context.Background(), "new@example.com", "hunter22", "New User")
	require.NoError(t, err)
	assert.Equal(t, userID, account.ID)
	assert.Equal(t, "new@example.com", account.Email)
	assert.True(t, account.CreatedAt.Equal(now))

	assert.Equal(t, "Bearer service-key", gotAuth)
	assert.True(t, gotReq.EmailConfirm)
	assert.Equal(t, "hunter22", gotReq.Password)
	assert.Equal(t, "New User", gotReq.UserMetadata["name"])
}

func TestSupabase_CreateUserSurfacesProviderMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"msg":"A user with this email address has already been registered"}`))
	}))
	defer server.Close()

	provider, err := NewSupabaseAdapter(adapterConfig(server.URL, testJWTSecret), logger.NewNop())
	require.NoError(t, err)

	_, err = provider.CreateUser(context.Background(), "dup@example.com", "hunter22", "")
	require.Error(t, err)

	var provErr *ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, http.StatusUnprocessableEntity, provErr.Status)
	assert.Equal(t, "A user with this email address has already been registered", provErr.Message)
}

func TestSupabase_RequiresURL(t *testing.T) {
	var cfg config.Config
	_, err := NewSupabaseAdapter(cfg, logger.NewNop())
	assert.Error(t, err)
}
