// Package thumbnail captures still frames and probes durations of
// uploaded video files by shelling out to ffmpeg/ffprobe.
package thumbnail

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/otaviobrantes/lumen/internal/errs"
)

// captureOffsetSeconds skips past the black frames most encodes start with.
const captureOffsetSeconds = 2

const captureTimeout = 30 * time.Second

type Extractor struct {
	ffmpegBinary  string
	ffprobeBinary string
}

func NewExtractor(ffmpegBinary, ffprobeBinary string) *Extractor {
	return &Extractor{
		ffmpegBinary:  ffmpegBinary,
		ffprobeBinary: ffprobeBinary,
	}
}

// CaptureFrame seeks into the source video and writes one JPEG frame to a
// temp file, returning its path. The caller owns the file's cleanup.
func (e *Extractor) CaptureFrame(ctx context.Context, source string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, captureTimeout)
	defer cancel()

	dest := filepath.Join(os.TempDir(), fmt.Sprintf("lumen-thumb-%d.jpg", time.Now().UnixNano()))

	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-ss", strconv.Itoa(captureOffsetSeconds),
		"-i", source,
		"-frames:v", "1",
		"-q:v", "2",
		dest,
	}
	cmd := exec.CommandContext(ctx, e.ffmpegBinary, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("%w: %s", errs.ErrThumbnailCapture, strings.TrimSpace(string(output)))
	}

	if info, err := os.Stat(dest); err != nil || info.Size() == 0 {
		return "", errs.ErrThumbnailCapture
	}
	return dest, nil
}

// ProbeDuration reads the container duration and formats it the way the
// catalog displays it ("12m 30s"). An unreadable duration is not fatal;
// the caller falls back to "Unknown".
func (e *Extractor) ProbeDuration(ctx context.Context, source string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, captureTimeout)
	defer cancel()

	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		source,
	}
	cmd := exec.CommandContext(ctx, e.ffprobeBinary, args...)
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("ffprobe duration: %w", err)
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return "", fmt.Errorf("ffprobe duration parse: %w", err)
	}

	return FormatDuration(int(seconds)), nil
}

// FormatDuration renders a duration in seconds as "Xm Ys".
func FormatDuration(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	minutes := totalSeconds / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}
