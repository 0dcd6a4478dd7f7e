package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config aggregates all application configuration
type Config struct {
	Realtime   RealtimeConfig   `yaml:"realtime"`
	OpenRouter OpenRouterConfig `yaml:"openrouter"`
	Gmail      GmailConfig      `yaml:"gmail"`
	Together   TogetherConfig   `yaml:"together"`
	Weather    WeatherConfig    `yaml:"weather"`
}

// RealtimeConfig configures the conversational model the session runs on.
// Voice and temperature are handed to the session runtime verbatim.
type RealtimeConfig struct {
	APIKey      string  `yaml:"api_key" env:"GEMINI_API_KEY"`
	Model       string  `yaml:"model" env:"GEMINI_MODEL" env-default:"gemini-2.0-flash"`
	Voice       string  `yaml:"voice" env:"REALTIME_VOICE" env-default:"Aoede"`
	Temperature float64 `yaml:"temperature" env:"REALTIME_TEMPERATURE" env-default:"0.8"`
}

// OpenRouterConfig configures the chat-completion provider used by the
// search, code and essay tools. BaseURL must keep its trailing slash so the
// SDK resolves relative endpoint paths against it.
type OpenRouterConfig struct {
	APIKey         string `yaml:"api_key" env:"OPENROUTER_API_KEY"`
	BaseURL        string `yaml:"base_url" env:"OPENROUTER_BASE_URL" env-default:"https://openrouter.ai/api/v1/"`
	SearchModel    string `yaml:"search_model" env:"OPENROUTER_SEARCH_MODEL" env-default:"tngtech/deepseek-r1t-chimera:free"`
	CodeModel      string `yaml:"code_model" env:"OPENROUTER_CODE_MODEL" env-default:"deepseek/deepseek-r1-0528:free"`
	EssayModel     string `yaml:"essay_model" env:"OPENROUTER_ESSAY_MODEL" env-default:"mistralai/mixtral-8x7b-instruct"`
	CodeTimeoutSec int    `yaml:"code_timeout_sec" env:"OPENROUTER_CODE_TIMEOUT_SEC" env-default:"30"`
}

// GmailConfig configures the mail submission session
type GmailConfig struct {
	User        string `yaml:"user" env:"GMAIL_USER"`
	AppPassword string `yaml:"app_password" env:"GMAIL_APP_PASSWORD"`
	Host        string `yaml:"host" env:"GMAIL_SMTP_HOST" env-default:"smtp.gmail.com"`
	Port        int    `yaml:"port" env:"GMAIL_SMTP_PORT" env-default:"587"`
}

// TogetherConfig configures the image generation provider.
// OutputDir defaults to <home>/Pictures when left empty.
type TogetherConfig struct {
	APIKey    string `yaml:"api_key" env:"TOGETHER_API_KEY"`
	BaseURL   string `yaml:"base_url" env:"TOGETHER_BASE_URL" env-default:"https://api.together.xyz"`
	Model     string `yaml:"model" env:"TOGETHER_IMAGE_MODEL" env-default:"black-forest-labs/FLUX.1-schnell-Free"`
	OutputDir string `yaml:"output_dir" env:"IMAGE_OUTPUT_DIR"`
}

// WeatherConfig configures the weather text endpoint
type WeatherConfig struct {
	BaseURL string `yaml:"base_url" env:"WEATHER_BASE_URL" env-default:"https://wttr.in"`
}

// Load reads configuration from config.yaml and environment variables
// Priority: Env Vars > Config File > Defaults
func Load() (*Config, error) {
	var cfg Config

	// Read config.yaml if present, otherwise env vars alone. Missing
	// credentials are not an error here: each tool reports its own
	// configuration failure at call time.
	err := cleanenv.ReadConfig("config.yaml", &cfg)
	if err != nil {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read env config: %w", err)
		}
	}

	return &cfg, nil
}
