// Package together calls the Together AI image-generation API and provides
// the generate_ai_image tool.
package together

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/firebase/genkit/go/genkit"

	"github.com/ZIZO17z/mia/log"
	"github.com/ZIZO17z/mia/tools"
)

const (
	BaseURL      = "https://api.together.xyz"
	DefaultModel = "black-forest-labs/FLUX.1-schnell-Free"

	// Fixed generation parameters
	imageSteps  = 4
	imageCount  = 1
	imageWidth  = 1024
	imageHeight = 1024
)

// GenerateRequest is the image-generation request body
type GenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Steps  int    `json:"steps"`
	N      int    `json:"n"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// ImageData is one generated image; the service returns either an inline
// base64 payload or a URL.
type ImageData struct {
	B64JSON string `json:"b64_json"`
	URL     string `json:"url"`
}

// GenerateResponse is the image-generation response body
type GenerateResponse struct {
	Data []ImageData `json:"data"`
}

// Client is the Together AI client
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// OutputDir is where base64 results are written; empty means
	// <home>/Pictures, resolved at save time.
	OutputDir string

	// Now stamps saved filenames; injectable for tests
	Now func() time.Time

	apiKey string
	model  string
}

// NewClient creates a new Together AI client and registers its tool
func NewClient(apiKey, baseURL, model, outputDir string, gk *genkit.Genkit, registry *tools.Registry) *Client {
	if apiKey == "" {
		log.Warn(context.Background(), "Together AI API key is empty, generate_ai_image will report a configuration error")
	}
	if baseURL == "" {
		baseURL = BaseURL
	}
	if model == "" {
		model = DefaultModel
	}

	c := &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
		OutputDir:  outputDir,
		Now:        time.Now,
		apiKey:     apiKey,
		model:      model,
	}

	c.registerTools(gk, registry)

	return c
}

// Configured reports whether an API key is present
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// GenerateImage requests one image for the prompt with the fixed model,
// step count and dimensions.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (*GenerateResponse, error) {
	reqBody := GenerateRequest{
		Model:  c.model,
		Prompt: prompt,
		Steps:  imageSteps,
		N:      imageCount,
		Height: imageHeight,
		Width:  imageWidth,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/v1/images/generations", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	log.Debugf(ctx, "[Together] Sending image generation request: model=%s, steps=%d", c.model, imageSteps)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("API returned status %s", resp.Status)
	}

	var genResp GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &genResp, nil
}

// SaveImage writes decoded image bytes into the output directory under a
// timestamped name. Second granularity; rapid repeated calls may collide.
func (c *Client) SaveImage(data []byte) (string, error) {
	dir := c.OutputDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dir = filepath.Join(home, "Pictures")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create image directory: %w", err)
	}

	name := fmt.Sprintf("ai_image_%s.png", c.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return path, nil
}
