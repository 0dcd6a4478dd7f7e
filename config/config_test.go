package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		for _, key := range []string{
			"OPENROUTER_API_KEY", "GMAIL_USER", "GMAIL_APP_PASSWORD",
			"TOGETHER_API_KEY", "GEMINI_API_KEY", "REALTIME_VOICE", "REALTIME_TEMPERATURE",
		} {
			os.Unsetenv(key)
		}

		cfg, err := Load()
		assert.NoError(t, err)
		assert.NotNil(t, cfg)

		assert.Equal(t, "https://openrouter.ai/api/v1/", cfg.OpenRouter.BaseURL)
		assert.Equal(t, "tngtech/deepseek-r1t-chimera:free", cfg.OpenRouter.SearchModel)
		assert.Equal(t, "deepseek/deepseek-r1-0528:free", cfg.OpenRouter.CodeModel)
		assert.Equal(t, "mistralai/mixtral-8x7b-instruct", cfg.OpenRouter.EssayModel)
		assert.Equal(t, 30, cfg.OpenRouter.CodeTimeoutSec)
		assert.Equal(t, "smtp.gmail.com", cfg.Gmail.Host)
		assert.Equal(t, 587, cfg.Gmail.Port)
		assert.Equal(t, "black-forest-labs/FLUX.1-schnell-Free", cfg.Together.Model)
		assert.Equal(t, "https://wttr.in", cfg.Weather.BaseURL)
		assert.Equal(t, "Aoede", cfg.Realtime.Voice)
		assert.Equal(t, 0.8, cfg.Realtime.Temperature)
	})

	t.Run("EnvironmentVariables", func(t *testing.T) {
		t.Setenv("OPENROUTER_API_KEY", "test-openrouter-key")
		t.Setenv("GMAIL_USER", "mia@gmail.com")
		t.Setenv("GMAIL_APP_PASSWORD", "app-password")
		t.Setenv("TOGETHER_API_KEY", "test-together-key")
		t.Setenv("REALTIME_VOICE", "Melody")
		t.Setenv("REALTIME_TEMPERATURE", "0.5")

		cfg, err := Load()
		assert.NoError(t, err)
		assert.NotNil(t, cfg)

		assert.Equal(t, "test-openrouter-key", cfg.OpenRouter.APIKey)
		assert.Equal(t, "mia@gmail.com", cfg.Gmail.User)
		assert.Equal(t, "app-password", cfg.Gmail.AppPassword)
		assert.Equal(t, "test-together-key", cfg.Together.APIKey)
		assert.Equal(t, "Melody", cfg.Realtime.Voice)
		assert.Equal(t, 0.5, cfg.Realtime.Temperature)
	})
}
