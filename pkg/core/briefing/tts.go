package briefing

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

// Synthesizer converts narration text to an MP3 via an HTTP TTS service.
// The endpoint is expected to accept text and lang query parameters and
// respond with audio bytes (the Google Translate TTS shape).
type Synthesizer struct {
	endpoint   string
	lang       string
	httpClient *http.Client
}

// NewSynthesizer creates a Korean-voice synthesizer for the endpoint.
func NewSynthesizer(endpoint string) *Synthesizer {
	return &Synthesizer{
		endpoint: endpoint,
		lang:     "ko",
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// SetLanguage overrides the narration language.
func (s *Synthesizer) SetLanguage(lang string) {
	s.lang = lang
}

// Synthesize fetches audio for the script and writes it to audioPath.
func (s *Synthesizer) Synthesize(ctx context.Context, script string, audioPath string) error {
	if script == "" {
		return fmt.Errorf("empty script")
	}

	params := url.Values{}
	params.Set("text", script)
	params.Set("lang", s.lang)

	req, err := http.NewRequestWithContext(ctx, "GET", s.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create TTS request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("TTS request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("TTS service returned status %d", resp.StatusCode)
	}

	out, err := os.Create(audioPath)
	if err != nil {
		return fmt.Errorf("failed to create audio file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	return nil
}
