package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TestHandleServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"invalid input", fmt.Errorf("%w: image is required", ErrInvalidInput), http.StatusBadRequest, "invalid input: image is required"},
		{"model unavailable", fmt.Errorf("%w: disabled", ErrLLMUnavailable), http.StatusServiceUnavailable, "Model service is not available"},
		{"model timeout", fmt.Errorf("%w: deadline", ErrLLMTimeout), http.StatusGatewayTimeout, "Model call timed out"},
		{"database", ErrDatabaseError, http.StatusInternalServerError, "Internal server error"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Set("trace_id", "trace-1")

			HandleServiceError(c, zap.NewNop(), tt.err)

			if w.Code != tt.code {
				t.Fatalf("status = %d, want %d", w.Code, tt.code)
			}
			var body APIResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Status != "error" || body.Message != tt.message || body.TraceID != "trace-1" {
				t.Errorf("body = %+v", body)
			}
		})
	}
}
