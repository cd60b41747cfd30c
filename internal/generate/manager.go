package generate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/handiism/spoolid/internal/catalog"
	"github.com/handiism/spoolid/internal/config"
	"github.com/handiism/spoolid/internal/export"
	"github.com/handiism/spoolid/internal/http"
	ioutils "github.com/handiism/spoolid/internal/io"
	"github.com/handiism/spoolid/internal/model"
	"github.com/handiism/spoolid/internal/rfidlib"
	"github.com/handiism/spoolid/internal/rfidlib/dto"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a generation progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Result describes a finished generation run.
type Result struct {
	// Records are the generated records in the order they were written.
	Records []model.Record

	// Files are the paths written, one per export format.
	Files []string
}

// Manager regenerates the generated half of the catalog.
type Manager struct {
	settings   *config.Settings
	httpClient *http.Client
	parser     *rfidlib.Parser
	log        *zap.Logger

	onProgress func(ProgressEvent)
}

// NewManager creates a new generation Manager. A nil logger discards logs.
// onProgress may be called from several goroutines at once.
func NewManager(settings *config.Settings, logger *zap.Logger, onProgress func(ProgressEvent)) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		settings:   settings,
		httpClient: http.NewClient(settings.FetchTimeoutDuration()),
		parser:     rfidlib.NewParser(),
		log:        logger,
		onProgress: onProgress,
	}
}

// Run fetches the reference sources, merges them with the prior snapshot in
// the output directory and writes every configured export format.
//
// The primary README must be fetched and parsed; extra sources that fail
// are reported as warnings and skipped.
func (m *Manager) Run(ctx context.Context) (*Result, error) {
	formats, err := m.formats()
	if err != nil {
		return nil, err
	}

	sources := append([]string{m.settings.ReadmeURL}, m.settings.ExtraSources...)
	readmes, err := m.fetchAll(ctx, sources)
	if err != nil {
		return nil, err
	}

	// Extra sources go first so the primary README's rows win on repeats.
	var rows, primary []dto.ReadmeRow
	for i, readme := range readmes {
		if readme == "" && i > 0 {
			continue
		}
		parsed, err := m.parser.ParseReadme(readme)
		if err != nil {
			if i == 0 {
				return nil, fmt.Errorf("parse %s: %w", sources[i], err)
			}
			m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping %s: %v", sources[i], err), Level: LevelWarning})
			continue
		}
		m.log.Debug("parsed source", zap.String("url", sources[i]), zap.Int("rows", len(parsed)))
		if i == 0 {
			primary = parsed
			continue
		}
		rows = append(rows, parsed...)
	}
	rows = append(rows, primary...)

	prior := m.loadPrior()
	records := rfidlib.BuildEntries(rows, prior)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Built %d entries (%d rows, %d prior)", len(records), len(rows), len(prior)), Level: LevelInfo})

	if err := ioutils.EnsureDir(m.settings.OutputDir); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	result := &Result{Records: records}
	for _, format := range formats {
		data, err := export.NewExporter(format).Export(records)
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", format, err)
		}

		path := filepath.Join(m.settings.OutputDir, format.FileName())
		if err := ioutils.WriteFile(ctx, path, data); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}

		result.Files = append(result.Files, path)
		m.log.Info("wrote export", zap.String("format", format.String()), zap.String("path", path), zap.Int("entries", len(records)))
		m.progress(ProgressEvent{Message: fmt.Sprintf("Wrote %s", path), Level: LevelSuccess})
	}

	return result, nil
}

// formats resolves the configured export formats. JSON is always included
// because it is the snapshot the catalog and the next run read back.
func (m *Manager) formats() ([]export.Format, error) {
	formats := []export.Format{export.FormatJSON}
	seen := map[export.Format]bool{export.FormatJSON: true}

	for _, name := range m.settings.ExportFormats {
		format, err := export.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		if seen[format] {
			continue
		}
		seen[format] = true
		formats = append(formats, format)
	}

	return formats, nil
}

// fetchAll downloads every source concurrently. The returned slice is
// index-aligned with sources; failed extra sources are left empty.
func (m *Manager) fetchAll(ctx context.Context, sources []string) ([]string, error) {
	readmes := make([]string, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, m.settings.MaxConcurrentFetches))

	for i, url := range sources {
		g.Go(func() error {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Fetching %s", url), Level: LevelVerbose})

			body, err := m.fetch(ctx, url)
			if err != nil {
				if i == 0 {
					return fmt.Errorf("fetch %s: %w", url, err)
				}
				m.log.Warn("extra source failed", zap.String("url", url), zap.Error(err))
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error fetching %s: %v", url, err), Level: LevelWarning})
				return nil
			}

			readmes[i] = body
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return readmes, nil
}

// fetch gets one URL, retrying with exponential cooldown. Permanent HTTP
// errors (4xx other than 429) are not retried.
func (m *Manager) fetch(ctx context.Context, url string) (string, error) {
	var (
		body string
		err  error
	)

	tries := max(1, m.settings.FetchMaxRetries)
	for try := 0; try < tries; try++ {
		body, err = m.httpClient.GetString(ctx, url)
		if err == nil {
			return body, nil
		}

		var statusErr *http.StatusError
		if errors.As(err, &statusErr) && !statusErr.Temporary() {
			return "", err
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if try+1 < tries {
			m.log.Debug("retrying fetch", zap.String("url", url), zap.Int("try", try+1), zap.Error(err))
			m.progress(ProgressEvent{Message: fmt.Sprintf("Retry %d/%d for %s", try+1, tries, url), Level: LevelWarning})
			m.waitForRetry(ctx, try)
		}
	}

	return "", err
}

// loadPrior reads the previous materials.json in the output directory.
// A missing or unreadable snapshot means there is nothing to carry over.
func (m *Manager) loadPrior() []model.Record {
	path := filepath.Join(m.settings.OutputDir, export.FormatJSON.FileName())

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Ignoring prior snapshot: %v", err), Level: LevelWarning})
		}
		return nil
	}

	prior, err := catalog.DecodeGenerated(data)
	if err != nil {
		m.log.Warn("prior snapshot is malformed", zap.String("path", path), zap.Error(err))
		m.progress(ProgressEvent{Message: fmt.Sprintf("Ignoring malformed prior snapshot %s", path), Level: LevelWarning})
		return nil
	}

	return prior
}

func (m *Manager) waitForRetry(ctx context.Context, tries int) {
	cooldown := m.settings.FetchRetryCooldown * math.Pow(m.settings.FetchRetryExponent, float64(tries))
	select {
	case <-ctx.Done():
	case <-time.After(time.Duration(cooldown * float64(time.Second))):
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
