package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"

	"github.com/ZIZO17z/mia/agents"
	"github.com/ZIZO17z/mia/config"
	"github.com/ZIZO17z/mia/log"
	"github.com/ZIZO17z/mia/plugins/gmail"
	"github.com/ZIZO17z/mia/plugins/openrouter"
	"github.com/ZIZO17z/mia/plugins/together"
	"github.com/ZIZO17z/mia/plugins/wttr"
	"github.com/ZIZO17z/mia/tools"
)

// App holds the initialized components of the application
type App struct {
	Assistant *agents.Assistant
	Genkit    *genkit.Genkit
	Registry  *tools.Registry
	Model     ai.Model
}

// Setup initializes the application components based on the configuration.
// Tool credentials are deliberately not validated here: a missing key is a
// call-time failure of the owning tool, never a startup failure.
func Setup(ctx context.Context, cfg *config.Config) (*App, error) {
	// 1. Conversational model for the session runtime
	if cfg.Realtime.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY must be set")
	}

	gk := genkit.Init(ctx, genkit.WithPlugins(&googlegenai.GoogleAI{
		APIKey: cfg.Realtime.APIKey,
	}))
	model := googlegenai.GoogleAIModel(gk, cfg.Realtime.Model)

	// 2. Tool registry; each client registers its tools on construction
	registry := tools.NewRegistry()

	wttr.NewClient(cfg.Weather.BaseURL, gk, registry)

	openrouter.NewClient(openrouter.Config{
		APIKey:      cfg.OpenRouter.APIKey,
		BaseURL:     cfg.OpenRouter.BaseURL,
		SearchModel: cfg.OpenRouter.SearchModel,
		CodeModel:   cfg.OpenRouter.CodeModel,
		EssayModel:  cfg.OpenRouter.EssayModel,
		CodeTimeout: time.Duration(cfg.OpenRouter.CodeTimeoutSec) * time.Second,
	}, gk, registry)

	gmail.NewClient(cfg.Gmail.User, cfg.Gmail.AppPassword, cfg.Gmail.Host, cfg.Gmail.Port, gk, registry)

	together.NewClient(cfg.Together.APIKey, cfg.Together.BaseURL, cfg.Together.Model, cfg.Together.OutputDir, gk, registry)

	log.Infof(ctx, "Initialized %d tools", len(registry.GetTools()))

	// 3. Assistant facade
	assistant := agents.NewAssistant(registry, agents.RealtimeOptions{
		Voice:       cfg.Realtime.Voice,
		Temperature: cfg.Realtime.Temperature,
	})

	return &App{
		Assistant: assistant,
		Genkit:    gk,
		Registry:  registry,
		Model:     model,
	}, nil
}
