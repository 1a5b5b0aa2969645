package utils

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrLLMTimeout        = errors.New("model call timed out")
	ErrLLMUnavailable    = errors.New("model client unavailable")
	ErrEmptyCompletion   = errors.New("model returned no content")
	ErrSchemaUnsupported = errors.New("model rejected the response schema")
	ErrDatabaseError     = errors.New("database error")
	ErrStoreUnavailable  = errors.New("store unavailable")
	ErrImageNotFound     = errors.New("image not found")
)
