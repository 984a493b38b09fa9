package briefing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ImagesURL is the OpenAI image generation endpoint.
const ImagesURL = "https://api.openai.com/v1/images/generations"

// 9:16 vertical, matching the short-form video canvas.
const imageSize = "1024x1792"

// ImageGenerator produces background images for briefing videos with
// DALL-E 3.
type ImageGenerator struct {
	apiKey     string
	httpClient *http.Client
}

// NewImageGenerator creates a generator. An empty key falls back to the
// OPENAI_API_KEY environment variable at call time.
func NewImageGenerator(apiKey string) *ImageGenerator {
	return &ImageGenerator{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type imageRequest struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	Size    string `json:"size"`
	Quality string `json:"quality"`
	N       int    `json:"n"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

// BackgroundPrompt wraps a record's headline in the style directive DALL-E
// responds well to.
func BackgroundPrompt(headline string) string {
	if headline == "" {
		headline = "stock market"
	}
	return fmt.Sprintf("A photorealistic image visualizing '%s'. High-tech, corporate, clean aesthetic, suitable for a news report.", headline)
}

// Generate requests one background image for the prompt and downloads it to
// imagePath.
func (g *ImageGenerator) Generate(ctx context.Context, prompt string, imagePath string) error {
	apiKey := g.apiKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	reqBody := imageRequest{
		Model:   "dall-e-3",
		Prompt:  prompt,
		Size:    imageSize,
		Quality: "standard",
		N:       1,
	}
	jsonBytes, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to encode image request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", ImagesURL, bytes.NewBuffer(jsonBytes))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("image generation request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("image API returned status %d: %s", resp.StatusCode, string(body))
	}

	var response imageResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return fmt.Errorf("failed to parse image response: %w", err)
	}
	if len(response.Data) == 0 || response.Data[0].URL == "" {
		return fmt.Errorf("image response carries no URL")
	}

	return g.download(ctx, response.Data[0].URL, imagePath)
}

// download fetches the generated image URL to a local file.
func (g *ImageGenerator) download(ctx context.Context, imageURL string, imagePath string) error {
	req, err := http.NewRequestWithContext(ctx, "GET", imageURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create download request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("image download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("image download returned status %d", resp.StatusCode)
	}

	out, err := os.Create(imagePath)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write image file: %w", err)
	}
	return nil
}
