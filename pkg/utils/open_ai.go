package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAICompletionClient struct {
	client *openai.Client
	model  string
}

func NewOpenAICompletionClient(apiKey, baseURL, model string) CompletionClientInterface {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return &OpenAICompletionClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (c *OpenAICompletionClient) Provider() string { return "openai" }

func (c *OpenAICompletionClient) Model() string { return c.model }

// Complete asks for strict json_schema output when a schema is given and
// retries once with json_object if the model rejects the schema hint.
func (c *OpenAICompletionClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	relaxed := &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject}
	if len(req.Schema) == 0 {
		return c.create(ctx, req, relaxed)
	}

	strict := &openai.ChatCompletionResponseFormat{
		Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
		JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
			Name:   req.SchemaName,
			Schema: req.Schema,
			Strict: true,
		},
	}
	content, err := c.create(ctx, req, strict)
	if errors.Is(err, ErrSchemaUnsupported) {
		return c.create(ctx, req, relaxed)
	}
	return content, err
}

func (c *OpenAICompletionClient) create(ctx context.Context, req CompletionRequest, format *openai.ChatCompletionResponseFormat) (string, error) {
	model := c.model
	if req.Model != "" {
		model = req.Model
	}
	chatReq := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			userMessage(req),
		},
		ResponseFormat: format,
	}
	// reasoning models reject max_tokens and a custom temperature
	if usesCompletionTokens(model) {
		chatReq.MaxCompletionTokens = req.MaxTokens
	} else {
		chatReq.MaxTokens = req.MaxTokens
		chatReq.Temperature = req.Temperature
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		if isSchemaRejection(err) {
			return "", fmt.Errorf("%w: %v", ErrSchemaUnsupported, err)
		}
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

func userMessage(req CompletionRequest) openai.ChatCompletionMessage {
	if req.ImageBase64 == "" {
		return openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.User}
	}

	var parts []openai.ChatMessagePart
	if req.User != "" {
		parts = append(parts, openai.ChatMessagePart{Type: openai.ChatMessagePartTypeText, Text: req.User})
	}
	parts = append(parts, openai.ChatMessagePart{
		Type: openai.ChatMessagePartTypeImageURL,
		ImageURL: &openai.ChatMessageImageURL{
			URL:    "data:" + req.imageMIME() + ";base64," + req.ImageBase64,
			Detail: openai.ImageURLDetailHigh,
		},
	})
	return openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, MultiContent: parts}
}

func usesCompletionTokens(model string) bool {
	m := strings.ToLower(model)
	return strings.HasPrefix(m, "gpt-5") || strings.HasPrefix(m, "o")
}

func isSchemaRejection(err error) bool {
	var apiErr *openai.APIError
	if !errors.As(err, &apiErr) || apiErr.HTTPStatusCode != http.StatusBadRequest {
		return false
	}
	msg := strings.ToLower(apiErr.Message)
	return strings.Contains(msg, "response_format") || strings.Contains(msg, "json_schema")
}
