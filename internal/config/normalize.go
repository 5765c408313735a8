package config

import (
	"fmt"
	"strings"

	"substation/internal/language"
)

// normalize expands paths and canonicalizes values after decoding.
func (c *Config) normalize() error {
	var err error
	if c.Paths.SubtitlesDir, err = expandPath(c.Paths.SubtitlesDir); err != nil {
		return fmt.Errorf("paths.subtitles_dir: %w", err)
	}
	if c.Paths.VideosDir, err = expandPath(c.Paths.VideosDir); err != nil {
		return fmt.Errorf("paths.videos_dir: %w", err)
	}
	if c.Paths.ExportDir, err = expandPath(c.Paths.ExportDir); err != nil {
		return fmt.Errorf("paths.export_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}

	c.Pipeline.Languages = language.Normalize(c.Pipeline.Languages)
	c.Pipeline.ChapterLanguage = language.ToISO2(c.Pipeline.ChapterLanguage)

	c.Tools.FFmpeg = strings.TrimSpace(c.Tools.FFmpeg)
	c.Tools.FFprobe = strings.TrimSpace(c.Tools.FFprobe)

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}
