// Package insights generates natural-language dashboard summaries with
// Google's Gemini API. When no API key is configured the component degrades
// to an unavailable notice instead of failing the dashboard.
package insights

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/genai"

	"telestat/internal/config"
	"telestat/internal/dashboard"
)

// ErrUnavailable is returned when insight generation is not configured.
var ErrUnavailable = errors.New("AI insights unavailable")

// Client defines the insight generation operations used by the dashboard
// and the report tasks.
type Client interface {
	// GenerateInsights summarizes a stats bundle into a short
	// human-readable report.
	GenerateInsights(ctx context.Context, bundle *dashboard.StatsBundle) (string, error)
}

type sdkClient struct {
	genaiClient   *genai.Client
	log           *slog.Logger
	contentConfig *genai.GenerateContentConfig
	modelName     string
	maxRetries    int
	retryDelay    time.Duration
}

type disabledClient struct{}

func (disabledClient) GenerateInsights(context.Context, *dashboard.StatsBundle) (string, error) {
	return "", ErrUnavailable
}

// NewClient creates a Gemini-backed insights client. With an empty API key
// it returns a disabled client whose calls yield ErrUnavailable.
func NewClient(ctx context.Context, cfg config.GeminiConfig, log *slog.Logger) (Client, error) {
	logger := log.With("component", "insights_client")

	if cfg.APIKey == "" {
		logger.Info("Gemini API key not set, insights disabled")
		return disabledClient{}, nil
	}

	gi, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	contentConfig := &genai.GenerateContentConfig{
		Temperature:       &cfg.Temperature,
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}

	logger.Info("Gemini insights client initialized", "model", cfg.ModelName)
	return &sdkClient{
		genaiClient:   gi,
		log:           logger,
		contentConfig: contentConfig,
		modelName:     cfg.ModelName,
		maxRetries:    cfg.MaxRetries,
		retryDelay:    time.Duration(cfg.RetryDelaySeconds) * time.Second,
	}, nil
}

func (c *sdkClient) GenerateInsights(ctx context.Context, bundle *dashboard.StatsBundle) (string, error) {
	prompt := buildPrompt(bundle)
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	resp, err := c.generateWithRetries(ctx, contents)
	if err != nil {
		c.log.ErrorContext(ctx, "Insight generation failed", "error", err)
		return "", err
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty insight response")
	}
	return text, nil
}

// generateWithRetries retries transient backend failures (HTTP 500/503) up
// to maxRetries times with a fixed delay.
func (c *sdkClient) generateWithRetries(ctx context.Context, contents []*genai.Content) (*genai.GenerateContentResponse, error) {
	var resp *genai.GenerateContentResponse
	var err error

	for i := 0; i <= c.maxRetries; i++ {
		resp, err = c.genaiClient.Models.GenerateContent(ctx, c.modelName, contents, c.contentConfig)
		if err == nil {
			return resp, nil
		}

		var apiErr *genai.APIError
		if errors.As(err, &apiErr) && (apiErr.Code == 500 || apiErr.Code == 503) && i < c.maxRetries {
			c.log.WarnContext(ctx, "Retrying Gemini call", "attempt", i+1, "code", apiErr.Code, "delay", c.retryDelay)
			select {
			case <-time.After(c.retryDelay):
				continue
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		return nil, fmt.Errorf("gemini API call failed: %w", err)
	}
	return nil, err
}
