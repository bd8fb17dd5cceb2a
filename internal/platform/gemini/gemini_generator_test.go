package gemini

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"german_coach/internal/config"
	"german_coach/internal/generation"
)

func TestNewGenerator_ConfigValidation(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name   string
		logger *slog.Logger
		cfg    config.LLMConfig
	}{
		{
			name:   "nil logger",
			logger: nil,
			cfg:    config.LLMConfig{GeminiAPIKey: "key", ModelName: "gemini-2.0-flash"},
		},
		{
			name:   "missing API key",
			logger: logger,
			cfg:    config.LLMConfig{ModelName: "gemini-2.0-flash"},
		},
		{
			name:   "missing model name",
			logger: logger,
			cfg:    config.LLMConfig{GeminiAPIKey: "key"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewGenerator(context.Background(), tt.logger, tt.cfg)
			require.Error(t, err)
			assert.Nil(t, gen)
		})
	}
}

func TestNewGenerator_MissingKeyIsInvalidConfig(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewGenerator(context.Background(), logger, config.LLMConfig{ModelName: "gemini-2.0-flash"})
	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestClassifyAPIError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "429 maps to rate limited",
			err:  genai.APIError{Code: http.StatusTooManyRequests, Message: "quota exceeded"},
			want: generation.ErrRateLimited,
		},
		{
			name: "500 maps to transient",
			err:  genai.APIError{Code: http.StatusInternalServerError, Message: "server error"},
			want: generation.ErrTransientFailure,
		},
		{
			name: "503 maps to transient",
			err:  genai.APIError{Code: http.StatusServiceUnavailable, Message: "overloaded"},
			want: generation.ErrTransientFailure,
		},
		{
			name: "400 maps to invalid response",
			err:  genai.APIError{Code: http.StatusBadRequest, Message: "bad request"},
			want: generation.ErrInvalidResponse,
		},
		{
			name: "plain transport error maps to transient",
			err:  fmt.Errorf("connection refused"),
			want: generation.ErrTransientFailure,
		},
		{
			name: "wrapped API error still classified",
			err:  fmt.Errorf("call failed: %w", genai.APIError{Code: http.StatusTooManyRequests}),
			want: generation.ErrRateLimited,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyAPIError(tt.err)
			assert.True(t, errors.Is(got, tt.want), "got %v, want %v", got, tt.want)
		})
	}
}
