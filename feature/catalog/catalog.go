package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"type-extractor/feature/cache"
	"type-extractor/feature/types/models"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Snapshot is an immutable, indexed copy of the served file.
type Snapshot struct {
	Records []models.TypeRecord
	ModTime time.Time
	byID    map[int64]int
	byName  map[string]int
}

func newSnapshot(records []models.TypeRecord, modTime time.Time) *Snapshot {
	s := &Snapshot{
		Records: records,
		ModTime: modTime,
		byID:    make(map[int64]int, len(records)),
		byName:  make(map[string]int, len(records)),
	}
	for i, rec := range records {
		s.byID[rec.TypeID] = i
		// Last one wins, as in the name index written by the cache reader.
		s.byName[cache.NameKey(rec.TypeName)] = i
	}
	return s
}

// ByID looks up a record by type id.
func (s *Snapshot) ByID(id int64) (models.TypeRecord, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.TypeRecord{}, false
	}
	return s.Records[i], true
}

// ByName looks up a record by name, ignoring case and surrounding space.
func (s *Snapshot) ByName(name string) (models.TypeRecord, bool) {
	i, ok := s.byName[cache.NameKey(name)]
	if !ok {
		return models.TypeRecord{}, false
	}
	return s.Records[i], true
}

// Catalog loads the source lazily and reloads it when its modification time changes.
type Catalog struct {
	src    Source
	logger *zap.Logger

	mu   sync.RWMutex
	snap *Snapshot
	sf   singleflight.Group
}

// New creates a Catalog over src. Nothing is read until the first Snapshot call.
func New(src Source, logger *zap.Logger) *Catalog {
	return &Catalog{src: src, logger: logger}
}

// Snapshot returns the current content, reloading it first when the source changed.
// Concurrent reloads are collapsed into one.
func (c *Catalog) Snapshot(ctx context.Context) (*Snapshot, error) {
	modTime, err := c.src.ModTime(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	snap := c.snap
	c.mu.RUnlock()
	if snap != nil && snap.ModTime.Equal(modTime) {
		return snap, nil
	}

	result, err, _ := c.sf.Do("reload", func() (interface{}, error) {
		c.mu.RLock()
		snap := c.snap
		c.mu.RUnlock()
		if snap != nil && snap.ModTime.Equal(modTime) {
			return snap, nil
		}

		fresh, err := c.load(ctx, modTime)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.snap = fresh
		c.mu.Unlock()
		return fresh, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Snapshot), nil
}

func (c *Catalog) load(ctx context.Context, modTime time.Time) (*Snapshot, error) {
	r, err := c.src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var records []models.TypeRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", c.src.Name(), err)
	}

	c.logger.Info("Catalog loaded",
		zap.String("source", c.src.Name()),
		zap.Int("types", len(records)),
		zap.Time("modified", modTime),
	)
	return newSnapshot(records, modTime), nil
}
