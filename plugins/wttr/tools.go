package wttr

import (
	"context"
	"errors"
	"fmt"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"

	"github.com/ZIZO17z/mia/log"
	"github.com/ZIZO17z/mia/tools"
)

// WeatherInput is the input for the get_weather tool
type WeatherInput struct {
	City string `json:"city" description:"Name of the city to look up, e.g. London"`
}

// WeatherTool implements the weather lookup tool
type WeatherTool struct {
	client *Client
}

func (t *WeatherTool) Name() string {
	return "get_weather"
}

func (t *WeatherTool) Description() string {
	return "Gets the current weather for a city as a short one-line summary. Arguments: city (string, required)."
}

// Execute always resolves to a string: the trimmed one-line report on
// success, a descriptive failure message otherwise.
func (t *WeatherTool) Execute(ctx context.Context, input *WeatherInput) string {
	city := input.City

	report, err := t.client.Current(ctx, city)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			log.Errorf(ctx, "[Wttr] Failed to get weather for %s: status %d", city, statusErr.Code)
			return fmt.Sprintf("Could not retrieve weather for %s.", city)
		}
		log.Errorf(ctx, "[Wttr] Error retrieving weather for %s: %v", city, err)
		return fmt.Sprintf("An error occurred while retrieving weather for %s.", city)
	}

	log.Infof(ctx, "[Wttr] Weather for %s: %s", city, report)
	return report
}

// registerTools registers the wttr tool with the registry
func (c *Client) registerTools(gk *genkit.Genkit, registry *tools.Registry) {
	if gk == nil || registry == nil {
		return
	}

	weatherTool := &WeatherTool{client: c}
	registry.Register(genkit.DefineTool(gk, weatherTool.Name(), weatherTool.Description(),
		func(ctx *ai.ToolContext, input *WeatherInput) (string, error) {
			return weatherTool.Execute(ctx, input), nil
		},
	), func(ctx context.Context, args map[string]interface{}) (string, error) {
		city, ok := args["city"].(string)
		if !ok {
			return "", fmt.Errorf("city is required and must be a string")
		}
		return weatherTool.Execute(ctx, &WeatherInput{City: city}), nil
	})

	log.Info(context.Background(), "[Wttr] Registered tool: get_weather")
}
