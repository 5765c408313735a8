package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"time"

	"log/slog"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"substation/internal/ass"
	"substation/internal/catalog"
	"substation/internal/config"
	"substation/internal/extract"
	"substation/internal/logging"
	"substation/internal/remux"
	"substation/internal/scan"
	"substation/internal/services"
	"substation/internal/state"
	"substation/internal/xref"
)

const lockFileName = "substation.lock"

// Summary reports what a run accomplished.
type Summary struct {
	RunID        string
	Episodes     int
	Exported     int
	Skipped      int
	Remuxed      int
	RemuxSkipped int
	Elapsed      time.Duration
}

// Pipeline wires the processing stages together.
type Pipeline struct {
	cfg     *config.Config
	logger  *slog.Logger
	store   *state.Store
	remuxer *remux.Remuxer
	lock    *flock.Flock
}

// New constructs a pipeline and opens its state store.
func New(cfg *config.Config, logger *slog.Logger) (*Pipeline, error) {
	if cfg == nil {
		return nil, services.Wrap(services.ErrConfiguration, "pipeline", "new", "config is required", nil)
	}
	if err := cfg.Validate(); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "pipeline", "validate config", "", err)
	}

	store, err := state.Open(cfg)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "pipeline", "open state store", "", err)
	}

	return &Pipeline{
		cfg:     cfg,
		logger:  logging.NewComponentLogger(logger, "pipeline"),
		store:   store,
		remuxer: remux.New(cfg.FFmpegBinary(), cfg.FFprobeBinary(), logger),
		lock:    flock.New(filepath.Join(cfg.Paths.LogDir, lockFileName)),
	}, nil
}

// Close releases the pipeline's resources.
func (p *Pipeline) Close() error {
	if p == nil {
		return nil
	}
	return p.store.Close()
}

// Store exposes the export state store for status reporting.
func (p *Pipeline) Store() *state.Store {
	return p.store
}

// WithRemuxCommandRunner allows injecting a custom command runner for tests.
func (p *Pipeline) WithRemuxCommandRunner(run remux.CommandRunner) {
	p.remuxer.WithCommandRunner(run)
}

// Run executes a full processing pass over the subtitle sources.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	locked, err := p.lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "run", "acquire lock", "", err)
	}
	if !locked {
		return nil, services.Wrap(services.ErrTransient, "run", "acquire lock", "another run is in progress", nil)
	}
	defer func() { _ = p.lock.Unlock() }()

	started := time.Now()
	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, p.logger)
	logger.Info("run started",
		logging.String("subtitles_dir", p.cfg.Paths.SubtitlesDir),
		logging.Int("languages", len(p.cfg.Pipeline.Languages)),
	)

	documents, err := p.resolveDocuments(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{RunID: runID, Episodes: len(documents)}
	for _, episode := range scan.Episodes(documents) {
		epCtx := services.WithEpisode(ctx, episode)
		if err := p.exportEpisode(epCtx, episode, documents[episode], summary); err != nil {
			return nil, err
		}
	}

	if p.cfg.Pipeline.RemuxEnabled {
		for _, episode := range scan.Episodes(documents) {
			epCtx := services.WithEpisode(ctx, episode)
			if err := p.remuxEpisode(epCtx, episode, documents[episode], summary); err != nil {
				return nil, err
			}
		}
	}

	summary.Elapsed = time.Since(started)
	logger.Info("run complete",
		logging.Int("episodes", summary.Episodes),
		logging.Int("exported", summary.Exported),
		logging.Int("skipped", summary.Skipped),
		logging.Int("remuxed", summary.Remuxed),
		logging.Duration("elapsed", summary.Elapsed),
	)
	return summary, nil
}

// Documents loads and cross-resolves every subtitle source without touching
// outputs. The chapters and extract commands build on it.
func (p *Pipeline) Documents(ctx context.Context) (map[string]*ass.Document, error) {
	return p.resolveDocuments(ctx)
}

func (p *Pipeline) resolveDocuments(ctx context.Context) (map[string]*ass.Document, error) {
	stageCtx := services.WithStage(ctx, "scan")
	documents, err := scan.Documents(p.cfg.Paths.SubtitlesDir)
	if err != nil {
		marker := services.ErrValidation
		if errors.Is(err, os.ErrNotExist) {
			marker = services.ErrNotFound
		}
		return nil, services.Wrap(marker, "scan", "read subtitles", "", err)
	}
	if len(documents) == 0 {
		return nil, services.Wrap(services.ErrNotFound, "scan", "read subtitles", "no subtitle documents found", nil)
	}
	logging.WithContext(stageCtx, p.logger).Debug("parsed subtitle sources",
		logging.Int("episodes", len(documents)),
	)

	if err := xref.Resolve(documents); err != nil {
		return nil, services.Wrap(services.ErrValidation, "resolve", "cross-reference", "", err)
	}
	return documents, nil
}

func (p *Pipeline) exportEpisode(ctx context.Context, episode string, doc *ass.Document, summary *Summary) error {
	ctx = services.WithStage(ctx, "export")

	release, err := catalog.ReleaseName(episode)
	if err != nil {
		return services.Wrap(services.ErrValidation, "export", "release name", "", err)
	}
	hash := sourceHash(doc)
	runID, _ := services.RunIDFromContext(ctx)

	for _, lang := range p.cfg.Pipeline.Languages {
		langCtx := services.WithLanguage(ctx, lang)
		logger := logging.WithContext(langCtx, p.logger)

		if p.cfg.Pipeline.SkipUnchanged {
			unchanged, err := p.store.Unchanged(langCtx, episode, lang, hash)
			if err != nil {
				return services.Wrap(services.ErrTransient, "export", "state lookup", "", err)
			}
			if unchanged {
				summary.Skipped++
				logger.Debug("source unchanged, skipping export")
				continue
			}
		}

		track, err := extract.Language(doc, lang)
		if err != nil {
			return services.Wrap(services.ErrValidation, "export", "extract track", "", err)
		}

		outputPath := filepath.Join(p.cfg.Paths.ExportDir, lang, release+".ass")
		if err := scan.WriteDocument(outputPath, track); err != nil {
			return services.Wrap(services.ErrTransient, "export", "write track", "", err)
		}

		record := state.Export{
			Episode:    episode,
			Language:   lang,
			SourceHash: hash,
			OutputPath: outputPath,
			RunID:      runID,
			ExportedAt: time.Now(),
		}
		if err := p.store.Record(langCtx, record); err != nil {
			return services.Wrap(services.ErrTransient, "export", "record state", "", err)
		}

		summary.Exported++
		logger.Info("exported subtitle track",
			logging.String("output", outputPath),
			logging.Int("events", len(track.Events)),
		)
	}
	return nil
}

func (p *Pipeline) remuxEpisode(ctx context.Context, episode string, doc *ass.Document, summary *Summary) error {
	ctx = services.WithStage(ctx, "remux")

	release, err := catalog.ReleaseName(episode)
	if err != nil {
		return services.Wrap(services.ErrValidation, "remux", "release name", "", err)
	}
	metadata, err := ReleaseMetadata(doc, episode, p.cfg.Pipeline.ChapterLanguage)
	if err != nil {
		return services.Wrap(services.ErrValidation, "remux", "chapter metadata", "", err)
	}

	result, err := p.remuxer.Remux(ctx, remux.Request{
		Episode:    episode,
		VideoPath:  filepath.Join(p.cfg.Paths.VideosDir, episode+".mp4"),
		OutputPath: filepath.Join(p.cfg.Paths.ExportDir, "videos", release+".mp4"),
		Metadata:   metadata,
		Language:   p.cfg.Pipeline.ChapterLanguage,
	})
	if err != nil {
		return services.Wrap(services.ErrExternalTool, "remux", "ffmpeg", "", err)
	}
	if result.Skipped {
		summary.RemuxSkipped++
	} else {
		summary.Remuxed++
	}
	return nil
}

// sourceHash fingerprints a resolved document so repeat runs can detect
// unchanged sources.
func sourceHash(doc *ass.Document) string {
	sum := sha256.Sum256([]byte(doc.Render()))
	return hex.EncodeToString(sum[:])
}
