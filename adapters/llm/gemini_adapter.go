package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/careerpilot/careerpilot/internal/application/service"
	"github.com/careerpilot/careerpilot/internal/config"
	"github.com/careerpilot/careerpilot/pkg/logger"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Generation parameters are static configuration, not tunable per request.
var defaultGenerationConfig = GenerationConfig{
	Temperature:     0.7,
	TopK:            40,
	TopP:            0.95,
	MaxOutputTokens: 1024,
}

type GenerateContentRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text,omitempty"`
}

type GenerationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	TopP            float64 `json:"topP,omitempty"`
	TopK            int     `json:"topK,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}

type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

type geminiLLMAdapter struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	log     logger.Logger
}

func NewGeminiLLMAdapter(cfg config.Config, log logger.Logger) (service.LLMService, error) {
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is not configured")
	}

	model := cfg.Gemini.Model
	if model == "" {
		model = "gemini-1.5-flash-latest"
	}

	log.Info("Gemini (LLM) Adapter initialized", zap.String("model", model))
	return &geminiLLMAdapter{
		baseURL: defaultBaseURL,
		apiKey:  cfg.Gemini.APIKey,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
		log:     log,
	}, nil
}

// NewGeminiLLMAdapterWithBaseURL points the adapter at a different endpoint.
// Used by tests to target an httptest server.
func NewGeminiLLMAdapterWithBaseURL(cfg config.Config, log logger.Logger, baseURL string) (service.LLMService, error) {
	svc, err := NewGeminiLLMAdapter(cfg, log)
	if err != nil {
		return nil, err
	}
	svc.(*geminiLLMAdapter).baseURL = baseURL
	return svc, nil
}

func (a *geminiLLMAdapter) GenerateChatResponse(ctx context.Context, prompt string) (string, error) {
	genCfg := defaultGenerationConfig
	reqBody := GenerateContentRequest{
		Contents: []Content{
			{Parts: []Part{{Text: prompt}}},
		},
		GenerationConfig: &genCfg,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal generate content request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", a.baseURL, a.model, a.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generate content request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate content request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errText, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		a.log.Warn("Gemini API returned non-success status",
			zap.Int("status", resp.StatusCode), zap.ByteString("body", errText))
		return "", fmt.Errorf("gemini API returned status %d", resp.StatusCode)
	}

	var genResp GenerateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("decode generate content response: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 ||
		genResp.Candidates[0].Content.Parts[0].Text == "" {
		return "", fmt.Errorf("gemini returned no candidate text")
	}

	return genResp.Candidates[0].Content.Parts[0].Text, nil
}
