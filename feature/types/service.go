package types

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"type-extractor/core/database"
	"type-extractor/core/download"
	"type-extractor/core/metrics"
	"type-extractor/core/output"
	"type-extractor/feature/types/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const snapshotFileName = "eve-db.sqlite"

// Fetcher downloads and decompresses a snapshot to a local path.
type Fetcher interface {
	Download(ctx context.Context, destPath string) (*download.Result, error)
}

// Summary describes a completed pipeline run.
type Summary struct {
	Output   string
	Stats    Stats
	Download *download.Result
}

// Service runs the dump pipeline.
type Service struct {
	cfg     Config
	dbCfg   database.Config
	fetcher Fetcher
	logger  *zap.Logger
}

// NewService creates a new dump pipeline service.
// dbCfg is only used when cfg.Source is mysql.
func NewService(cfg Config, dbCfg database.Config, fetcher Fetcher, logger *zap.Logger) *Service {
	return &Service{
		cfg:     cfg,
		dbCfg:   dbCfg,
		fetcher: fetcher,
		logger:  logger,
	}
}

// Run produces the output file from the configured source.
func (s *Service) Run(ctx context.Context) (*Summary, error) {
	switch s.cfg.Source {
	case SourceDownload, "":
		return s.runDownload(ctx)
	case SourceSQLite:
		if s.cfg.Database == "" {
			return nil, fmt.Errorf("%w: no sqlite snapshot path configured", ErrSourceUnavailable)
		}
		return s.runSQLite(ctx, s.cfg.Database, nil)
	case SourceMySQL:
		cfg := s.dbCfg
		cfg.Driver = database.DriverMySQL
		s.logger.Info("Connecting to static data database", zap.String("host", cfg.Host), zap.String("name", cfg.Name))
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
		}
		defer database.Close(db)
		return s.runDB(ctx, db, nil)
	default:
		return nil, fmt.Errorf("unsupported dump source %q", s.cfg.Source)
	}
}

func (s *Service) runDownload(ctx context.Context) (*Summary, error) {
	tempDir, err := os.MkdirTemp(s.cfg.WorkDir, "type-extractor-*")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create temporary directory: %w", ErrIO, err)
	}
	if s.cfg.KeepSnapshot {
		s.logger.Info("Keeping downloaded snapshot", zap.String("dir", tempDir))
	} else {
		defer os.RemoveAll(tempDir)
	}

	dbPath := filepath.Join(tempDir, snapshotFileName)
	s.logger.Info("Writing sqlite database", zap.String("path", dbPath))

	res, err := s.fetcher.Download(ctx, dbPath)
	if err != nil {
		if errors.Is(err, download.ErrWrite) {
			return nil, fmt.Errorf("%w: %w", ErrIO, err)
		}
		return nil, err
	}
	metrics.BytesDownloaded.Add(float64(res.Compressed))
	metrics.BytesDecompressed.Add(float64(res.Decompressed))

	return s.runSQLite(ctx, dbPath, res)
}

func (s *Service) runSQLite(ctx context.Context, path string, res *download.Result) (*Summary, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: snapshot %s: %w", ErrSourceUnavailable, path, err)
	}

	s.logger.Info("Opening database file", zap.String("path", path))
	db, err := database.Connect(database.Config{
		Driver:   database.DriverSQLite,
		Name:     path,
		ReadOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer database.Close(db)

	return s.runDB(ctx, db, res)
}

func (s *Service) runDB(ctx context.Context, db *gorm.DB, res *download.Result) (*Summary, error) {
	s.logger.Info("Building type information")
	records, stats, err := BuildTypes(ctx, db, s.cfg.groups(), s.logger)
	if err != nil {
		return nil, err
	}

	if err := s.write(records); err != nil {
		return nil, err
	}

	metrics.RecordsEmitted.WithLabelValues("dump").Add(float64(stats.Types))
	metrics.ComponentsAttached.Add(float64(stats.WithComponents))

	return &Summary{Output: s.cfg.Output, Stats: stats, Download: res}, nil
}

func (s *Service) write(records []models.TypeRecord) error {
	s.logger.Info("Writing types", zap.String("output", s.cfg.Output), zap.Int("count", len(records)))
	if err := output.WriteJSON(s.cfg.Output, records); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
