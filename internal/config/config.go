// internal/config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	App struct {
		Name         string `mapstructure:"name"`
		FrontendURL  string `mapstructure:"frontend_url"`
		HistoryLimit int    `mapstructure:"history_limit"`
		DefaultLevel string `mapstructure:"default_level"`
	} `mapstructure:"app"`
	Auth struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"auth"`
	JWT struct {
		SecretKey      string        `mapstructure:"secret_key"`
		AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
	} `mapstructure:"jwt"`
	LLM LLMConfig `mapstructure:"llm"`
	Mailer struct {
		Type string `mapstructure:"type"` // log, smtp, ses
	} `mapstructure:"mailer"`
	SMTP SMTPConfig `mapstructure:"smtp"`
	SES SESConfig `mapstructure:"ses"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
}

type LLMConfig struct {
	Provider          string  `mapstructure:"provider"`
	GeminiAPIKey      string  `mapstructure:"gemini_api_key"`
	ModelName         string  `mapstructure:"model_name"`
	Temperature       float64 `mapstructure:"temperature"`
	MaxRetries        int     `mapstructure:"max_retries"`
	RetryDelaySeconds int     `mapstructure:"retry_delay_seconds"`
	TimeoutSeconds    int     `mapstructure:"timeout_seconds"`
}

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	From string `mapstructure:"from"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	From            string `mapstructure:"from"`
	AuthType        string `mapstructure:"auth_type"` // static_credentials or iam_role
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("auth.enabled", "AUTH_ENABLED")
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	viper.BindEnv("llm.gemini_api_key", "GEMINI_API_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	applyDefaults()

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Default Level: %s", Cfg.App.DefaultLevel)
	log.Printf("LLM Provider: %s", Cfg.LLM.Provider)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)

	return nil
}

func applyDefaults() {
	if Cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.App.Name == "" {
		Cfg.App.Name = AppName
	}
	if Cfg.App.HistoryLimit <= 0 {
		log.Printf("History limit not set or invalid, using default '%d'", DefaultHistoryLimit)
		Cfg.App.HistoryLimit = DefaultHistoryLimit
	}
	if Cfg.App.DefaultLevel == "" {
		Cfg.App.DefaultLevel = DefaultPracticeLevel
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.JWT.AccessTokenTTL <= 0 {
		Cfg.JWT.AccessTokenTTL = DefaultAccessTokenTTL
	}
	if Cfg.LLM.Provider == "" {
		Cfg.LLM.Provider = DefaultLLMProvider
	}
	if Cfg.LLM.ModelName == "" {
		Cfg.LLM.ModelName = DefaultGeminiModel
	}
	if Cfg.LLM.Temperature <= 0 {
		Cfg.LLM.Temperature = DefaultLLMTemperature
	}
	if Cfg.LLM.MaxRetries < 0 {
		Cfg.LLM.MaxRetries = DefaultLLMMaxRetries
	}
	if Cfg.LLM.RetryDelaySeconds <= 0 {
		Cfg.LLM.RetryDelaySeconds = DefaultLLMRetryDelaySeconds
	}
	if Cfg.LLM.TimeoutSeconds <= 0 {
		Cfg.LLM.TimeoutSeconds = DefaultLLMTimeoutSeconds
	}
	if !viper.IsSet("auth.enabled") {
		log.Println("Auth enabled flag not set, defaulting to true (enabled)")
		Cfg.Auth.Enabled = true
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
}
