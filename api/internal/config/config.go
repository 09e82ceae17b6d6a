package config

import (
	"errors"
	"fmt"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	PlatformLine     = "line"
	PlatformTelegram = "telegram"
)

type Config struct {
	Platform string `env:"PLATFORM,default=line" validate:"oneof=line telegram"`
	Port     string `env:"PORT,default=5000" validate:"required,numeric"`
	LogLevel string `env:"LOG_LEVEL,default=INFO"`

	LineChannelSecret string `env:"CHANNEL_SECRET"`
	LineChannelToken  string `env:"CHANNEL_ACCESS_TOKEN"`
	TelegramBotToken  string `env:"TELEGRAM_BOT_TOKEN"`
	WebhookURL        string `env:"WEBHOOK_URL" validate:"omitempty,url"`

	// LineWebhookPath cannot be "/", which conflicts with /healthz on the mux.
	LineWebhookPath string `env:"LINE_WEBHOOK_PATH,default=/callback" validate:"startswith=/,ne=/"`

	ModelPath      string `env:"MODEL_PATH,default=dog_breed_model.onnx" validate:"required"`
	OnnxRuntimeLib string `env:"ONNXRUNTIME_LIB"`

	LLMBackend string        `env:"LLM_BACKEND,default=hosted" validate:"oneof=hosted ollama gemini openai anthropic"`
	LLMTimeout time.Duration `env:"LLM_TIMEOUT,default=30s" validate:"gt=0"`

	ThaiLLMURL    string `env:"THAI_LLM_URL,default=http://thaillm.or.th/api/pathumma/v1/chat/completions" validate:"url"`
	ThaiLLMAPIKey string `env:"THAI_LLM_API_KEY"`
	ThaiLLMModel  string `env:"THAI_LLM_MODEL,default=/model"`

	OllamaURL   string `env:"OLLAMA_URL,default=http://localhost:11434" validate:"url"`
	OllamaModel string `env:"OLLAMA_MODEL,default=llama3.2:1b"`

	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL,default=gemini-2.5-flash"`

	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIModel   string `env:"OPENAI_MODEL,default=gpt-4o-mini"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL" validate:"omitempty,url"`

	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	AnthropicModel  string `env:"ANTHROPIC_MODEL,default=claude-sonnet-4-5"`

	LogDir            string `env:"LOG_DIR,default=logs"`
	LogThinking       bool   `env:"LOG_THINKING,default=true"`
	ImagesDir         string `env:"IMAGES_DIR,default=images"`
	CannedRepliesFile string `env:"CANNED_REPLIES_FILE"`
}

var ErrMissing = errors.New("missing required setting")

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadLocal is Load for tools that never talk to a chat platform, so
// platform credentials are not required.
func LoadLocal() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}
	if err := cfg.validateCommon(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Validate checks field formats and the credentials the chosen platform
// needs. Backend keys are not required: a backend without one fails at call
// time and replies degrade to the fallback text.
func (c *Config) Validate() error {
	if err := c.validateCommon(); err != nil {
		return err
	}
	switch c.Platform {
	case PlatformLine:
		if c.LineChannelSecret == "" || c.LineChannelToken == "" {
			return fmt.Errorf("config: %w: CHANNEL_SECRET and CHANNEL_ACCESS_TOKEN", ErrMissing)
		}
	case PlatformTelegram:
		if c.TelegramBotToken == "" {
			return fmt.Errorf("config: %w: TELEGRAM_BOT_TOKEN", ErrMissing)
		}
	}
	return nil
}

func (c *Config) validateCommon() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// HasKey reports whether backend has the credentials it needs.
func (c *Config) HasKey(backend string) bool {
	key, name := c.backendKey(backend)
	return name == "" || key != ""
}

// KeyName is the variable holding backend's key, empty for keyless backends.
func (c *Config) KeyName(backend string) string {
	_, name := c.backendKey(backend)
	return name
}

func (c *Config) backendKey(backend string) (key, envName string) {
	switch backend {
	case "hosted":
		return c.ThaiLLMAPIKey, "THAI_LLM_API_KEY"
	case "gemini":
		return c.GeminiAPIKey, "GEMINI_API_KEY"
	case "openai":
		return c.OpenAIAPIKey, "OPENAI_API_KEY"
	case "anthropic":
		return c.AnthropicAPIKey, "ANTHROPIC_API_KEY"
	default:
		return "", ""
	}
}
