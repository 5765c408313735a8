// Package testsupport provides shared fixtures for package tests: temp-dir
// seeded configurations, subtitle file helpers, and state store setup.
package testsupport

import (
	"path/filepath"
	"testing"

	"substation/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.SubtitlesDir = filepath.Join(base, "subtitles")
	cfg.Paths.VideosDir = filepath.Join(base, "videos")
	cfg.Paths.ExportDir = filepath.Join(base, "exports")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithLanguages overrides the export language list on the test config.
func WithLanguages(languages ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Pipeline.Languages = languages
	}
}

// WithRemuxEnabled toggles the remux stage on the test config.
func WithRemuxEnabled(enabled bool) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Pipeline.RemuxEnabled = enabled
	}
}

// WithSkipUnchanged toggles unchanged-source skipping on the test config.
func WithSkipUnchanged(skip bool) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Pipeline.SkipUnchanged = skip
	}
}
