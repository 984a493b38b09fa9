package briefing

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
)

// Short-form (9:16) canvas.
const (
	videoWidth  = 1080
	videoHeight = 1920
	videoFPS    = 24
)

// fallbackColor is the background when no generated image is available.
const fallbackColor = "0x141428"

// Composer renders the final briefing video with ffmpeg.
type Composer struct {
	ffmpegPath string
}

// NewComposer creates a composer using the ffmpeg binary on PATH.
func NewComposer() *Composer {
	return &Composer{ffmpegPath: "ffmpeg"}
}

// SetFFmpegPath overrides the ffmpeg binary location.
func (c *Composer) SetFFmpegPath(path string) {
	c.ffmpegPath = path
}

// Compose combines the narration audio and a background image into a
// vertical MP4. The background is scaled to fill and center-cropped to the
// canvas; an empty or missing imagePath falls back to a solid color. Video
// length follows the audio track.
func (c *Composer) Compose(ctx context.Context, imagePath string, audioPath string, outputPath string) error {
	if _, err := os.Stat(audioPath); err != nil {
		return fmt.Errorf("audio file not found: %w", err)
	}

	useImage := false
	if imagePath != "" {
		if _, err := os.Stat(imagePath); err == nil {
			useImage = true
		} else {
			log.Printf("[Briefing] background %s missing, using solid color", imagePath)
		}
	}

	args := []string{"-y"}
	if useImage {
		args = append(args,
			"-loop", "1",
			"-i", imagePath,
			"-i", audioPath,
			"-vf", fmt.Sprintf(
				"scale=%d:%d:force_original_aspect_ratio=increase,crop=%d:%d",
				videoWidth, videoHeight, videoWidth, videoHeight),
		)
	} else {
		args = append(args,
			"-f", "lavfi",
			"-i", fmt.Sprintf("color=c=%s:s=%dx%d:r=%d", fallbackColor, videoWidth, videoHeight, videoFPS),
			"-i", audioPath,
		)
	}
	args = append(args,
		"-c:v", "libx264",
		"-r", fmt.Sprintf("%d", videoFPS),
		"-pix_fmt", "yuv420p",
		"-c:a", "aac",
		"-shortest",
		outputPath,
	)

	cmd := exec.CommandContext(ctx, c.ffmpegPath, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg failed: %w\n%s", err, output)
	}
	return nil
}
