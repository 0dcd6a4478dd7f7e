// Package openrouter talks to the OpenRouter chat-completion API through the
// OpenAI SDK (OpenRouter exposes an OpenAI-compatible surface) and provides
// the search_web, generate_code and write_essay tools.
package openrouter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/firebase/genkit/go/genkit"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/ZIZO17z/mia/log"
	"github.com/ZIZO17z/mia/tools"
)

const (
	// BaseURL must keep the trailing slash: the SDK resolves endpoint
	// paths like "chat/completions" relative to it.
	BaseURL = "https://openrouter.ai/api/v1/"

	DefaultSearchModel = "tngtech/deepseek-r1t-chimera:free"
	DefaultCodeModel   = "deepseek/deepseek-r1-0528:free"
	DefaultEssayModel  = "mistralai/mixtral-8x7b-instruct"
)

// Config carries the OpenRouter client settings
type Config struct {
	APIKey      string
	BaseURL     string
	SearchModel string
	CodeModel   string
	EssayModel  string
	CodeTimeout time.Duration
}

// Client is the OpenRouter chat-completion client
type Client struct {
	apiKey      string
	api         openai.Client
	searchModel string
	codeModel   string
	essayModel  string
	codeTimeout time.Duration
}

// NewClient creates a new OpenRouter client and registers its tools
func NewClient(cfg Config, gk *genkit.Genkit, registry *tools.Registry) *Client {
	if cfg.APIKey == "" {
		log.Warn(context.Background(), "OpenRouter API key is empty, search/code/essay tools will report a configuration error")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = BaseURL
	}
	if cfg.SearchModel == "" {
		cfg.SearchModel = DefaultSearchModel
	}
	if cfg.CodeModel == "" {
		cfg.CodeModel = DefaultCodeModel
	}
	if cfg.EssayModel == "" {
		cfg.EssayModel = DefaultEssayModel
	}
	if cfg.CodeTimeout <= 0 {
		cfg.CodeTimeout = 30 * time.Second
	}

	client := &Client{
		apiKey: cfg.APIKey,
		api: openai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(cfg.BaseURL),
			option.WithHeader("HTTP-Referer", "https://github.com/ZIZO17z/mia"),
			option.WithHeader("X-Title", "MiaAssistant"),
		),
		searchModel: cfg.SearchModel,
		codeModel:   cfg.CodeModel,
		essayModel:  cfg.EssayModel,
		codeTimeout: cfg.CodeTimeout,
	}

	client.registerTools(gk, registry)

	return client
}

// Configured reports whether an API key is present
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Complete runs a chat completion and returns the trimmed content of the
// first choice. Only the first choice is ever consulted.
func (c *Client) Complete(ctx context.Context, model string, messages []openai.ChatCompletionMessageParamUnion, opts ...option.RequestOption) (string, error) {
	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: messages,
	}, opts...)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
