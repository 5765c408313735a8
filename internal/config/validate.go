package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validatePipeline(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.SubtitlesDir == "" {
		return errors.New("paths.subtitles_dir must be set")
	}
	if c.Paths.ExportDir == "" {
		return errors.New("paths.export_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	if c.Pipeline.RemuxEnabled && c.Paths.VideosDir == "" {
		return errors.New("paths.videos_dir must be set when pipeline.remux_enabled is true")
	}
	return nil
}

func (c *Config) validatePipeline() error {
	if len(c.Pipeline.Languages) == 0 {
		return errors.New("pipeline.languages must name at least one recognizable language code")
	}
	if c.Pipeline.ChapterLanguage == "" {
		return errors.New("pipeline.chapter_language must be a recognizable language code")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
