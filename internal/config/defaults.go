package config

const (
	defaultSubtitlesDir    = "~/substation/episodes"
	defaultVideosDir       = "~/substation/videos"
	defaultExportDir       = "~/substation/exports"
	defaultLogDir          = "~/.local/share/substation/logs"
	defaultChapterLanguage = "ja"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			SubtitlesDir: defaultSubtitlesDir,
			VideosDir:    defaultVideosDir,
			ExportDir:    defaultExportDir,
			LogDir:       defaultLogDir,
		},
		Pipeline: Pipeline{
			Languages:       []string{"en", "ko", "ja"},
			ChapterLanguage: defaultChapterLanguage,
			SkipUnchanged:   true,
		},
		Tools: Tools{
			FFmpeg:  "ffmpeg",
			FFprobe: "ffprobe",
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
