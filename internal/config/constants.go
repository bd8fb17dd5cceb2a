// internal/config/constants.go
package config

import "time"

// Application information.
const (
	AppName    = "German Coach"
	AppVersion = "1.0.0"
)

// Default settings.
const (
	DefaultServerPort           = ":8080"
	DefaultLogLevel             = "info"
	DefaultHistoryLimit         = 50
	DefaultPracticeLevel        = "B2"
	DefaultAccessTokenTTL       = 24 * time.Hour
	DefaultLLMProvider          = "gemini"
	DefaultGeminiModel          = "gemini-2.0-flash"
	DefaultLLMTemperature       = 0.4
	DefaultLLMMaxRetries        = 2
	DefaultLLMRetryDelaySeconds = 2
	DefaultLLMTimeoutSeconds    = 30
)
