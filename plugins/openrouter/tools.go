package openrouter

import (
	"context"
	"fmt"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/ZIZO17z/mia/log"
	"github.com/ZIZO17z/mia/tools"
)

const (
	codeSystemPrompt = "You are a professional senior software engineer. Write complete, well-documented code for the task."

	essaySystemPromptFmt = "You are a professional academic writer. Write an original, human-sounding essay " +
		"on the topic provided. Avoid robotic phrasing, vary sentence structures, " +
		"and use natural transitions. Target a length of %d words. " +
		"The tone should mimic a well-read human student or journalist."

	// DefaultEssayWords is used when the caller gives no target length
	DefaultEssayWords = 500
)

// SearchInput is the input for the search_web tool
type SearchInput struct {
	Query string `json:"query" description:"The question or search query to answer"`
}

// SearchTool answers free-text queries through a chat completion
type SearchTool struct {
	client *Client
}

func (t *SearchTool) Name() string {
	return "search_web"
}

func (t *SearchTool) Description() string {
	return "Answers a free-text question or search query using an online model. Arguments: query (string, required)."
}

func (t *SearchTool) Execute(ctx context.Context, input *SearchInput) string {
	if !t.client.Configured() {
		return "OpenRouter API key not found. Please check your .env file."
	}

	content, err := t.client.Complete(ctx, t.client.searchModel, []openai.ChatCompletionMessageParamUnion{
		openai.UserMessage(input.Query),
	})
	if err != nil {
		log.Errorf(ctx, "[OpenRouter] Error talking to OpenRouter AI: %v", err)
		return fmt.Sprintf("Error talking to OpenRouter AI: %v", err)
	}

	return content
}

// CodeInput is the input for the generate_code tool
type CodeInput struct {
	Prompt string `json:"prompt" description:"Description of the code to write"`
}

// CodeTool generates code from a prompt
type CodeTool struct {
	client *Client
}

func (t *CodeTool) Name() string {
	return "generate_code"
}

func (t *CodeTool) Description() string {
	return "Generates complete, documented code for a described task. Arguments: prompt (string, required)."
}

func (t *CodeTool) Execute(ctx context.Context, input *CodeInput) string {
	if !t.client.Configured() {
		return "❌ Missing OpenRouter API key. Please check your .env file."
	}

	content, err := t.client.Complete(ctx, t.client.codeModel, []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(codeSystemPrompt),
		openai.UserMessage(input.Prompt),
	}, option.WithRequestTimeout(t.client.codeTimeout))
	if err != nil {
		log.Errorf(ctx, "[OpenRouter] Code generation failed: %v", err)
		return fmt.Sprintf("❌ Code generation failed: %v", err)
	}

	return content
}

// EssayInput is the input for the write_essay tool
type EssayInput struct {
	Topic string `json:"topic" description:"The essay topic"`
	Words int    `json:"words,omitempty" description:"Target essay length in words (default 500)"`
}

// EssayTool writes an essay on a topic
type EssayTool struct {
	client *Client
}

func (t *EssayTool) Name() string {
	return "write_essay"
}

func (t *EssayTool) Description() string {
	return "Writes a natural, human-sounding essay on a topic. Arguments: topic (string, required), words (int, optional, default 500)."
}

func (t *EssayTool) Execute(ctx context.Context, input *EssayInput) string {
	if !t.client.Configured() {
		return "❌ OpenRouter API key is missing. Please check your .env file."
	}

	words := input.Words
	if words <= 0 {
		words = DefaultEssayWords
	}

	content, err := t.client.Complete(ctx, t.client.essayModel, []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(fmt.Sprintf(essaySystemPromptFmt, words)),
		openai.UserMessage(fmt.Sprintf("Write an essay on: %s", input.Topic)),
	})
	if err != nil {
		log.Errorf(ctx, "[OpenRouter] Essay generation failed: %v", err)
		return fmt.Sprintf("❌ Essay generation failed: %v", err)
	}

	return content
}

// registerTools registers all OpenRouter tools with the registry
func (c *Client) registerTools(gk *genkit.Genkit, registry *tools.Registry) {
	if gk == nil || registry == nil {
		return
	}

	searchTool := &SearchTool{client: c}
	registry.Register(genkit.DefineTool(gk, searchTool.Name(), searchTool.Description(),
		func(ctx *ai.ToolContext, input *SearchInput) (string, error) {
			return searchTool.Execute(ctx, input), nil
		},
	), func(ctx context.Context, args map[string]interface{}) (string, error) {
		query, ok := args["query"].(string)
		if !ok {
			return "", fmt.Errorf("query is required and must be a string")
		}
		return searchTool.Execute(ctx, &SearchInput{Query: query}), nil
	})

	codeTool := &CodeTool{client: c}
	registry.Register(genkit.DefineTool(gk, codeTool.Name(), codeTool.Description(),
		func(ctx *ai.ToolContext, input *CodeInput) (string, error) {
			return codeTool.Execute(ctx, input), nil
		},
	), func(ctx context.Context, args map[string]interface{}) (string, error) {
		prompt, ok := args["prompt"].(string)
		if !ok {
			return "", fmt.Errorf("prompt is required and must be a string")
		}
		return codeTool.Execute(ctx, &CodeInput{Prompt: prompt}), nil
	})

	essayTool := &EssayTool{client: c}
	registry.Register(genkit.DefineTool(gk, essayTool.Name(), essayTool.Description(),
		func(ctx *ai.ToolContext, input *EssayInput) (string, error) {
			return essayTool.Execute(ctx, input), nil
		},
	), func(ctx context.Context, args map[string]interface{}) (string, error) {
		topic, ok := args["topic"].(string)
		if !ok {
			return "", fmt.Errorf("topic is required and must be a string")
		}
		input := &EssayInput{Topic: topic}
		if words, ok := args["words"].(float64); ok {
			input.Words = int(words)
		}
		return essayTool.Execute(ctx, input), nil
	})

	log.Info(context.Background(), "[OpenRouter] Registered tools: search_web, generate_code, write_essay")
}
