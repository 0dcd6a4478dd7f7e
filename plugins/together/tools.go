package together

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"

	"github.com/ZIZO17z/mia/log"
	"github.com/ZIZO17z/mia/tools"
)

// ImageInput is the input for the generate_ai_image tool
type ImageInput struct {
	Prompt string `json:"prompt" description:"Description of the image to generate"`
}

// ImageTool generates an AI image and saves base64 results to disk
type ImageTool struct {
	client *Client
}

func (t *ImageTool) Name() string {
	return "generate_ai_image"
}

func (t *ImageTool) Description() string {
	return "Generates an AI image from a text description and saves it locally. Arguments: prompt (string, required, at least 3 characters)."
}

// Execute always resolves to a string. Prompt validation and the credential
// check both happen before any network call.
func (t *ImageTool) Execute(ctx context.Context, input *ImageInput) string {
	prompt := strings.TrimSpace(input.Prompt)
	if len(prompt) < 3 {
		return "❌ Please provide a clear description of the image you want."
	}

	if !t.client.Configured() {
		return "❌ Together AI API key not found. Please check your .env file."
	}

	resp, err := t.client.GenerateImage(ctx, prompt)
	if err != nil {
		log.Errorf(ctx, "[Together] Image generation error: %v", err)
		return fmt.Sprintf("⚠️ Image generation failed: %v", err)
	}

	if len(resp.Data) == 0 {
		log.Errorf(ctx, "[Together] No image data returned")
		return "❌ No image data was returned. Try a different prompt."
	}

	image := resp.Data[0]
	if image.B64JSON == "" && image.URL == "" {
		log.Errorf(ctx, "[Together] No usable image returned")
		return "❌ Image generation failed: no usable output."
	}

	if image.B64JSON != "" {
		imageBytes, err := base64.StdEncoding.DecodeString(image.B64JSON)
		if err != nil {
			log.Errorf(ctx, "[Together] Image generation error: %v", err)
			return fmt.Sprintf("⚠️ Image generation failed: %v", err)
		}

		path, err := t.client.SaveImage(imageBytes)
		if err != nil {
			log.Errorf(ctx, "[Together] Image generation error: %v", err)
			return fmt.Sprintf("⚠️ Image generation failed: %v", err)
		}

		dataURL := "data:image/png;base64," + image.B64JSON

		return fmt.Sprintf("✅ Image generated successfully!<br>"+
			"📁 Saved to: `%s`<br>"+
			"🖼️ Preview:<br>"+
			`<img src="%s" alt="%s" style="max-width:100%%; border-radius:12px;"/><br>`+
			`<a href="%s" download="ai_image.png" style="display:inline-block;margin-top:10px;padding:8px 12px;background-color:#007bff;color:white;border-radius:6px;text-decoration:none;">⬇ Download Image</a>`,
			path, dataURL, prompt, dataURL)
	}

	return fmt.Sprintf("✅ Image generated successfully via URL!<br>"+
		"🖼️ Preview:<br>"+
		`<img src="%s" alt="%s" style="max-width:100%%; border-radius:12px;"/><br>`+
		`<a href="%s" download="ai_image.png" style="display:inline-block;margin-top:10px;padding:8px 12px;background-color:#007bff;color:white;border-radius:6px;text-decoration:none;">⬇ Download Image</a>`,
		image.URL, prompt, image.URL)
}

// registerTools registers the image tool with the registry
func (c *Client) registerTools(gk *genkit.Genkit, registry *tools.Registry) {
	if gk == nil || registry == nil {
		return
	}

	imageTool := &ImageTool{client: c}
	registry.Register(genkit.DefineTool(gk, imageTool.Name(), imageTool.Description(),
		func(ctx *ai.ToolContext, input *ImageInput) (string, error) {
			return imageTool.Execute(ctx, input), nil
		},
	), func(ctx context.Context, args map[string]interface{}) (string, error) {
		prompt, ok := args["prompt"].(string)
		if !ok {
			return "", fmt.Errorf("prompt is required and must be a string")
		}
		return imageTool.Execute(ctx, &ImageInput{Prompt: prompt}), nil
	})

	log.Info(context.Background(), "[Together] Registered tool: generate_ai_image")
}
