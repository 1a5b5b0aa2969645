package utils

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiCompletionClient implements CompletionClientInterface using Google's Gemini models
type GeminiCompletionClient struct {
	client *genai.Client
	model  string
}

func NewGeminiCompletionClient(ctx context.Context, apiKey, model string) (*GeminiCompletionClient, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiCompletionClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiCompletionClient) Provider() string { return "gemini" }

func (c *GeminiCompletionClient) Model() string { return c.model }

// Complete sends the prompt pair with a JSON-only response type. Gemini has
// no strict schema mode here, so the schema hint travels in the prompt.
func (c *GeminiCompletionClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	model := c.model
	if req.Model != "" {
		model = req.Model
	}
	m := c.client.GenerativeModel(model)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(req.Temperature)
	if req.MaxTokens > 0 {
		m.SetMaxOutputTokens(int32(req.MaxTokens))
	}

	var parts []genai.Part
	if req.User != "" || req.ImageBase64 == "" {
		parts = append(parts, genai.Text(req.User))
	}
	if req.ImageBase64 != "" {
		data, err := base64.StdEncoding.DecodeString(req.ImageBase64)
		if err != nil {
			return "", fmt.Errorf("%w: image is not base64: %v", ErrInvalidInput, err)
		}
		parts = append(parts, genai.ImageData(strings.TrimPrefix(req.imageMIME(), "image/"), data))
	}

	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyCompletion
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", ErrEmptyCompletion
	}
	return b.String(), nil
}

// Close closes the Gemini client
func (c *GeminiCompletionClient) Close() error {
	return c.client.Close()
}
