package ffmpegcut

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Target geometry for vertical clips: scale to height 1920 preserving aspect
// ratio, then center-crop to width 1080.
const (
	targetWidth  = 1080
	targetHeight = 1920
)

type Adapter struct {
	ffmpeg  string
	ffprobe string
}

func New(ffmpegPath, ffprobePath string) *Adapter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Adapter{ffmpeg: ffmpegPath, ffprobe: ffprobePath}
}

func (a *Adapter) ExtractAudioMP3(ctx context.Context, inVideo, outMP3 string) error {
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-i", inVideo,
		"-vn",
		"-ac", "1",
		"-ar", "16000",
		"-b:a", "64k",
		"-f", "mp3",
		outMP3,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg extract audio: %w\n%s", err, string(b))
	}
	return nil
}

// RenderVerticalClip cuts [startSec, endSec) and reformats it to 1080x1920.
// overlayText, when non-empty, is burned in near the top of the frame for the
// first few seconds as an attention hook.
func (a *Adapter) RenderVerticalClip(ctx context.Context, inVideo string, startSec, endSec float64, outPath, overlayText string) error {
	filter := fmt.Sprintf("scale=-2:%d,crop=%d:%d", targetHeight, targetWidth, targetHeight)
	if overlayText != "" {
		filter += "," + hookDrawtext(overlayText)
	}

	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-ss", fmtSeconds(startSec),
		"-to", fmtSeconds(endSec),
		"-i", inVideo,
		"-vf", filter,
		"-c:v", "libx264",
		"-preset", "veryfast",
		"-crf", "18",
		"-c:a", "aac",
		"-b:a", "192k",
		outPath,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg render clip: %w\n%s", err, string(b))
	}
	return nil
}

func (a *Adapter) ProbeDuration(ctx context.Context, inVideo string) (float64, error) {
	cmd := exec.CommandContext(ctx, a.ffprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		inVideo,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w\n%s", err, string(b))
	}
	s := strings.TrimSpace(string(b))
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	return sec, nil
}

func hookDrawtext(text string) string {
	return fmt.Sprintf(
		"drawtext=text='%s':fontsize=72:fontcolor=white:borderw=4:bordercolor=black:x=(w-text_w)/2:y=h/8:enable='lt(t,4)'",
		escapeDrawtext(text),
	)
}

func fmtSeconds(sec float64) string {
	return strconv.FormatFloat(sec, 'f', 3, 64)
}

// escapeDrawtext escapes the characters the drawtext filter treats specially.
func escapeDrawtext(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		`:`, `\:`,
		`%`, `\%`,
	)
	return r.Replace(s)
}
