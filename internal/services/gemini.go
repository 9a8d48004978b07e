package services

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"skillbridge/backend/internal/config"
	"skillbridge/backend/internal/models"
)

// AIClient transports a prompt to the generative model and returns the
// raw text. It never interprets the response; that is the normalizer's
// job. No retry: a failed call surfaces to the caller as-is.
type AIClient interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type geminiClient struct {
	client    *genai.Client
	modelName string
	limiter   *rate.Limiter
}

func NewGeminiClient(cfg config.GeminiConfig) (AIClient, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiClient{
		client:    client,
		modelName: cfg.Model,
		limiter:   rate.NewLimiter(rate.Every(cfg.RateInterval), 1),
	}, nil
}

// GenerateText implements AIClient.
func (g *geminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	// Upstream rate limit; blocks only this request, honors ctx cancel.
	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrAIService, err)
	}

	temperature := float32(0.3)
	cfg := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrAIService, err)
	}

	if resp == nil {
		return "", fmt.Errorf("%w: nil response", models.ErrAIService)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: no text content in response", models.ErrAIService)
	}

	return text, nil
}
