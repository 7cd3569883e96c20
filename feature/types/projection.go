package types

import (
	"context"
	"database/sql"
	"fmt"

	"type-extractor/core/database"
	"type-extractor/feature/types/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Stats summarizes one projection.
type Stats struct {
	Types          int
	WithComponents int
}

// Projector turns invTypes rows into output records.
type Projector struct {
	groups map[int64]struct{}
}

// NewProjector creates a Projector attaching components for the given groups.
func NewProjector(componentGroups []int64) *Projector {
	groups := make(map[int64]struct{}, len(componentGroups))
	for _, g := range componentGroups {
		groups[g] = struct{}{}
	}
	return &Projector{groups: groups}
}

// Project builds the record for row. Components are attached only when the
// row's group is allow-listed and the index holds at least one material.
func (p *Projector) Project(row models.InvType, index MaterialsIndex) models.TypeRecord {
	rec := row.ToRecord()
	if _, ok := p.groups[row.GroupID]; !ok {
		return rec
	}
	if materials := index[row.TypeID]; len(materials) > 0 {
		rec.Components = materials
	}
	return rec
}

// ValidateSchema checks that both tables the pipeline reads exist with the expected columns.
func ValidateSchema(ctx context.Context, db *gorm.DB) error {
	if err := database.RequireColumns(db.WithContext(ctx), models.InvType{}.TableName(), models.InvTypeColumns...); err != nil {
		return fmt.Errorf("%w: %w", ErrQuery, err)
	}
	if err := database.RequireColumns(db.WithContext(ctx), models.InvTypeMaterial{}.TableName(), models.InvTypeMaterialColumns...); err != nil {
		return fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return nil
}

// BuildTypes validates the schema, indexes the materials, then scans invTypes
// once and returns one record per row in scan order. No row is skipped.
func BuildTypes(ctx context.Context, db *gorm.DB, componentGroups []int64, logger *zap.Logger) ([]models.TypeRecord, Stats, error) {
	var stats Stats

	if err := ValidateSchema(ctx, db); err != nil {
		return nil, stats, err
	}

	index, err := LoadMaterials(ctx, db)
	if err != nil {
		return nil, stats, err
	}
	logger.Debug("Materials indexed", zap.Int("parent_types", len(index)))

	rows, err := db.WithContext(ctx).
		Model(&models.InvType{}).
		Select(models.InvTypeColumns).
		Rows()
	if err != nil {
		return nil, stats, fmt.Errorf("%w: failed to query invTypes: %w", ErrQuery, err)
	}
	defer rows.Close()

	projector := NewProjector(componentGroups)
	var records []models.TypeRecord
	for rows.Next() {
		var row models.InvType
		var name sql.NullString
		if err := rows.Scan(&row.TypeID, &row.GroupID, &name, &row.Volume, &row.MarketGroupID); err != nil {
			return nil, stats, fmt.Errorf("%w: failed to scan invTypes row: %w", ErrQuery, err)
		}
		row.TypeName = name.String

		logger.Debug("Populating info", zap.Int64("type_id", row.TypeID), zap.String("type_name", row.TypeName))

		rec := projector.Project(row, index)
		if rec.Components != nil {
			stats.WithComponents++
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, stats, fmt.Errorf("%w: failed to iterate invTypes: %w", ErrQuery, err)
	}

	stats.Types = len(records)
	if records == nil {
		records = []models.TypeRecord{}
	}
	return records, stats, nil
}
