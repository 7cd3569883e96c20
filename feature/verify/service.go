package verify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"type-extractor/core/storage"
	"type-extractor/feature/types"
	"type-extractor/feature/types/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service verifies dump output.
type Service struct {
	groups []int64
	logger *zap.Logger
}

// NewService creates a new verify service checking components against componentGroups.
func NewService(componentGroups []int64, logger *zap.Logger) *Service {
	if len(componentGroups) == 0 {
		componentGroups = types.DefaultComponentGroups
	}
	return &Service{groups: componentGroups, logger: logger}
}

// VerifyFile checks the output file at path.
func (s *Service) VerifyFile(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %w", types.ErrSourceUnavailable, path, err)
	}
	defer f.Close()
	return s.verify(path, f)
}

// VerifyObject checks a published copy of the output.
func (s *Service) VerifyObject(ctx context.Context, client storage.Client, bucket, objectName string) (*Report, error) {
	obj, err := client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get %s/%s: %w", types.ErrSourceUnavailable, bucket, objectName, err)
	}
	defer obj.Close()
	return s.verify(bucket+"/"+objectName, obj)
}

func (s *Service) verify(source string, r io.Reader) (*Report, error) {
	var records []models.TypeRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", source, err)
	}

	report := Check(records, s.groups)
	report.Source = source

	if report.Matched {
		s.logger.Info("Output verified", zap.String("source", source), zap.Int("types", report.Types))
	} else {
		s.logger.Warn("Output has violations",
			zap.String("source", source),
			zap.Int("violations", report.ViolationCount),
		)
	}
	return report, nil
}
