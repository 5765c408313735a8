package remux

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"log/slog"

	"substation/internal/language"
	"substation/internal/logging"
)

// CommandRunner abstracts process execution for tests.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func defaultCommandRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		trimmed := strings.TrimSpace(string(output))
		if trimmed != "" {
			return output, fmt.Errorf("%s: %w: %s", name, err, tail(trimmed))
		}
		return output, fmt.Errorf("%s: %w", name, err)
	}
	return output, nil
}

// tail keeps command errors readable by reporting only the last few lines.
func tail(output string) string {
	lines := strings.Split(output, "\n")
	if len(lines) > 4 {
		lines = lines[len(lines)-4:]
	}
	return strings.Join(lines, "\n")
}

// Request describes one remux operation.
type Request struct {
	Episode    string
	VideoPath  string
	OutputPath string
	Metadata   string // ffmetadata payload, chapters and optional title
	Language   string // audio/video language tag, any ISO form
}

// Result reports the outcome of a remux.
type Result struct {
	OutputPath string
	Skipped    bool
}

// Remuxer copies videos into tagged releases using ffmpeg.
type Remuxer struct {
	ffmpeg  string
	ffprobe string
	logger  *slog.Logger
	run     CommandRunner
}

// New constructs a remuxer around the given ffmpeg and ffprobe binaries.
func New(ffmpeg, ffprobe string, logger *slog.Logger) *Remuxer {
	return &Remuxer{
		ffmpeg:  ffmpeg,
		ffprobe: ffprobe,
		logger:  logging.NewComponentLogger(logger, "remux"),
		run:     defaultCommandRunner,
	}
}

// WithCommandRunner allows injecting a custom command runner for tests.
func (r *Remuxer) WithCommandRunner(run CommandRunner) {
	if r != nil && run != nil {
		r.run = run
	}
}

// Remux copies the request video into its release output with chapter and
// language metadata attached. Existing outputs are left untouched.
func (r *Remuxer) Remux(ctx context.Context, req Request) (Result, error) {
	if r == nil {
		return Result{}, fmt.Errorf("remuxer not initialized")
	}
	if strings.TrimSpace(req.VideoPath) == "" {
		return Result{}, fmt.Errorf("video path is required")
	}
	if strings.TrimSpace(req.OutputPath) == "" {
		return Result{}, fmt.Errorf("output path is required")
	}

	if _, err := os.Stat(req.OutputPath); err == nil {
		r.logger.Info("output exists, skipping",
			logging.String(logging.FieldEpisode, req.Episode),
			logging.String("output", req.OutputPath),
		)
		return Result{OutputPath: req.OutputPath, Skipped: true}, nil
	}

	if _, err := os.Stat(req.VideoPath); err != nil {
		return Result{}, fmt.Errorf("source video not found: %w", err)
	}

	duration, err := r.Probe(ctx, req.VideoPath)
	if err != nil {
		return Result{}, fmt.Errorf("probe source video: %w", err)
	}
	r.logger.Debug("probed source video",
		logging.String(logging.FieldEpisode, req.Episode),
		logging.Float64("duration_seconds", duration),
	)

	if err := os.MkdirAll(filepath.Dir(req.OutputPath), 0o755); err != nil {
		return Result{}, fmt.Errorf("ensure output directory: %w", err)
	}

	metaFile, err := os.CreateTemp(filepath.Dir(req.OutputPath), ".chapters-*.txt")
	if err != nil {
		return Result{}, fmt.Errorf("write chapter metadata: %w", err)
	}
	metaPath := metaFile.Name()
	defer os.Remove(metaPath)
	if _, err := metaFile.WriteString(req.Metadata); err != nil {
		metaFile.Close()
		return Result{}, fmt.Errorf("write chapter metadata: %w", err)
	}
	if err := metaFile.Close(); err != nil {
		return Result{}, fmt.Errorf("write chapter metadata: %w", err)
	}

	args := buildArgs(req.VideoPath, metaPath, req.OutputPath, language.ToISO3(req.Language))
	r.logger.Info("remuxing episode",
		logging.String(logging.FieldEpisode, req.Episode),
		logging.String("output", req.OutputPath),
	)
	if _, err := r.run(ctx, r.ffmpeg, args...); err != nil {
		_ = os.Remove(req.OutputPath)
		return Result{}, fmt.Errorf("ffmpeg failed: %w", err)
	}

	if _, err := os.Stat(req.OutputPath); err != nil {
		return Result{}, fmt.Errorf("ffmpeg did not produce output: %w", err)
	}
	return Result{OutputPath: req.OutputPath}, nil
}

// Probe returns the container duration of a video in seconds.
func (r *Remuxer) Probe(ctx context.Context, path string) (float64, error) {
	output, err := r.run(ctx, r.ffprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		return 0, err
	}
	duration, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe duration: %w", err)
	}
	return duration, nil
}

func buildArgs(videoPath, metaPath, outputPath, languageTag string) []string {
	return []string{
		"-i", videoPath,
		"-f", "ffmetadata", "-i", metaPath,
		"-map_metadata", "1",
		"-metadata:s:v:0", "language=" + languageTag,
		"-metadata:s:a:0", "language=" + languageTag,
		"-movflags", "faststart",
		"-c", "copy",
		outputPath,
	}
}
