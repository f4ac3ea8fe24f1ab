package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careerpilot/careerpilot/internal/application/service"
	"github.com/careerpilot/careerpilot/internal/config"
	"github.com/careerpilot/careerpilot/internal/domain/user"
	"github.com/careerpilot/careerpilot/pkg/logger"
)

// supabaseAdapter resolves bearer tokens against a Supabase-style auth
// service. When the project JWT secret is configured, tokens are verified
// locally; otherwise each resolution is one round trip to /auth/v1/user.
type supabaseAdapter struct {
	baseURL    string
	anonKey    string
	serviceKey string
	jwtSecret  []byte
	client     *http.Client
	logger     logger.Logger
}

func NewSupabaseAdapter(cfg config.Config, log logger.Logger) (service.IdentityProvider, error) {
	if cfg.Identity.URL == "" {
		return nil, fmt.Errorf("identity URL is not configured")
	}

	log.Info("Identity provider adapter initialized", zap.String("url", cfg.Identity.URL))
	return &supabaseAdapter{
		baseURL:    cfg.Identity.URL,
		anonKey:    cfg.Identity.AnonKey,
		serviceKey: cfg.Identity.ServiceKey,
		jwtSecret:  []byte(cfg.Identity.JWTSecret),
		client:     &http.Client{Timeout: 10 * time.Second},
		logger:     log,
	}, nil
}

func (a *supabaseAdapter) ResolveToken(ctx context.Context, token string) (*user.Identity, error) {
	if len(a.jwtSecret) > 0 {
		if identity, err := a.resolveLocal(token); err == nil {
			return identity, nil
		}
	}
	return a.resolveRemote(ctx, token)
}

// resolveLocal verifies the token signature with the project JWT secret.
func (a *supabaseAdapter) resolveLocal(tokenString string) (*user.Identity, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, fmt.Errorf("token has no subject")
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return nil, fmt.Errorf("token subject is not a user id: %w", err)
	}

	identity := &user.Identity{ID: id}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if meta, ok := claims["user_metadata"].(map[string]any); ok {
		identity.Metadata = meta
	}
	return identity, nil
}

type remoteUser struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
	CreatedAt    time.Time      `json:"created_at"`
}

// resolveRemote asks the auth service who the token belongs to.
func (a *supabaseAdapter) resolveRemote(ctx context.Context, token string) (*user.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("build user lookup request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", a.anonKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("user lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		a.logger.Warn("identity provider rejected token",
			zap.Int("status", resp.StatusCode), zap.ByteString("body", body))
		return nil, fmt.Errorf("identity provider rejected token: status %d", resp.StatusCode)
	}

	var ru remoteUser
	if err := json.NewDecoder(resp.Body).Decode(&ru); err != nil {
		return nil, fmt.Errorf("decode user lookup response: %w", err)
	}
	id, err := uuid.Parse(ru.ID)
	if err != nil {
		return nil, fmt.Errorf("identity provider returned malformed user id: %w", err)
	}

	return &user.Identity{ID: id, Email: ru.Email, Metadata: ru.UserMetadata}, nil
}

type createUserRequest struct {
	Email        string         `json:"email"`
	Password     string         `json:"password"`
	EmailConfirm bool           `json:"email_confirm"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
}

// ProviderError carries a message the auth service chose to expose; it is
// the one upstream error surfaced to callers verbatim (signup 400s).
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("identity provider error (status %d): %s", e.Status, e.Message)
}

func (a *supabaseAdapter) CreateUser(ctx context.Context, email, password, name string) (*user.Account, error) {
	payload := createUserRequest{
		Email:    email,
		Password: password,
		// no mail server is configured, confirm immediately
		EmailConfirm: true,
	}
	if name != "" {
		payload.UserMetadata = map[string]any{"name": name}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal create user request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/auth/v1/admin/users", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build create user request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.serviceKey)
	req.Header.Set("apikey", a.serviceKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create user request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var provErr struct {
			Msg     string `json:"msg"`
			Message string `json:"message"`
		}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = json.Unmarshal(raw, &provErr)
		msg := provErr.Msg
		if msg == "" {
			msg = provErr.Message
		}
		if msg == "" {
			msg = "user creation rejected"
		}
		return nil, &ProviderError{Status: resp.StatusCode, Message: msg}
	}

	var ru remoteUser
	if err := json.NewDecoder(resp.Body).Decode(&ru); err != nil {
		return nil, fmt.Errorf("decode create user response: %w", err)
	}
	id, err := uuid.Parse(ru.ID)
	if err != nil {
		return nil, fmt.Errorf("identity provider returned malformed user id: %w", err)
	}

	return &user.Account{
		ID:        id,
		Email:     ru.Email,
		Metadata:  ru.UserMetadata,
		CreatedAt: ru.CreatedAt,
	}, nil
}
