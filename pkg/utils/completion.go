package utils

import (
	"context"
	"encoding/json"
)

// CompletionRequest is one system/user prompt pair sent to a chat model.
type CompletionRequest struct {
	System      string
	User        string
	SchemaName  string
	Schema      json.RawMessage // nil asks for plain JSON output
	MaxTokens   int
	Temperature float32

	// Model overrides the client's default model for this call.
	Model string
	// ImageBase64 attaches one image (raw base64, no data URL prefix)
	// to the user turn. ImageMIME defaults to image/jpeg.
	ImageBase64 string
	ImageMIME   string
}

func (r CompletionRequest) imageMIME() string {
	if r.ImageMIME == "" {
		return "image/jpeg"
	}
	return r.ImageMIME
}

type CompletionClientInterface interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	Provider() string
	Model() string
}
