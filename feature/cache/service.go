package cache

import (
	"context"
	"fmt"
	"strings"

	"type-extractor/core/metrics"
	"type-extractor/core/output"
	"type-extractor/feature/types"
	"type-extractor/feature/types/models"

	"go.uber.org/zap"
)

// NameKey normalizes a type name into an index key.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// BuildNameIndex enumerates src into a map keyed by NameKey.
// When two types share a key the one enumerated last wins.
func BuildNameIndex(ctx context.Context, src types.TypeSource, logger *zap.Logger) (map[string]models.NamedType, error) {
	index := make(map[string]models.NamedType)
	err := src.EachType(ctx, func(t models.TypeTriple) error {
		key := NameKey(t.TypeName)
		if prev, ok := index[key]; ok {
			logger.Debug("Type name collision",
				zap.String("key", key),
				zap.Int64("replaced_type_id", prev.TypeID),
				zap.Int64("type_id", t.TypeID),
			)
		}
		index[key] = models.NamedType{TypeID: t.TypeID, GroupID: t.GroupID, TypeName: t.TypeName}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return index, nil
}

// Summary describes a completed cache read.
type Summary struct {
	Output string
	Names  int
}

// Service builds the name index and writes it out.
type Service struct {
	cfg    Config
	src    types.TypeSource
	logger *zap.Logger
}

// NewService creates a new cache reader service.
func NewService(cfg Config, src types.TypeSource, logger *zap.Logger) *Service {
	return &Service{cfg: cfg, src: src, logger: logger}
}

func (s *Service) Run(ctx context.Context) (*Summary, error) {
	index, err := BuildNameIndex(ctx, s.src, s.logger)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Writing name index", zap.String("output", s.cfg.Output), zap.Int("count", len(index)))
	// encoding/json sorts map keys, so the document is stable across runs.
	if err := output.WriteJSON(s.cfg.Output, index); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrIO, err)
	}
	metrics.RecordsEmitted.WithLabelValues("cache").Add(float64(len(index)))

	return &Summary{Output: s.cfg.Output, Names: len(index)}, nil
}
