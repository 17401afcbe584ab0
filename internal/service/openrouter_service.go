package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/classroom-ai/assessment-api/internal/apperror"
	"github.com/classroom-ai/assessment-api/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// Sampling parameters pinned low so repeated runs over the same
// submission grade as consistently as the backend allows.
const (
	completionTemperature = 0.1
	completionTopP        = 0.4
	completionMaxTokens   = 1000
)

// OpenRouterService calls the OpenRouter chat completions API. It is the
// default ModelService implementation.
type OpenRouterService struct {
	client *resty.Client
	apiKey string
	model  string
}

func NewOpenRouterService() *OpenRouterService {
	cfg := config.LoadOpenRouterConfig()
	return &OpenRouterService{
		client: resty.New().
			SetBaseURL("https://openrouter.ai/api/v1").
			SetTimeout(90 * time.Second),
		apiKey: cfg.APIKey,
		model:  cfg.Model,
	}
}

func (s *OpenRouterService) GenerateAssessment(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", apperror.Validationf("prompt cannot be empty")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model":           s.model,
			"temperature":     completionTemperature,
			"top_p":           completionTopP,
			"max_tokens":      completionMaxTokens,
			"response_format": map[string]string{"type": "json_object"},
			"messages": []map[string]string{
				{"role": "system", "content": "You are a teaching assistant that grades student submissions against a rubric."},
				{"role": "user", "content": prompt},
			},
		}).
		Post("/chat/completions")
	if err != nil {
		return "", apperror.Upstream("chat completion", err)
	}
	if resp.IsError() {
		return "", apperror.Upstream("chat completion", fmt.Errorf("status %d: %s", resp.StatusCode(), resp.String()))
	}

	content := gjson.Get(resp.String(), "choices.0.message.content").String()
	if content == "" {
		return "", apperror.Upstream("chat completion", fmt.Errorf("no completion in response"))
	}
	return content, nil
}
