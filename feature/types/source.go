package types

import (
	"context"
	"database/sql"
	"fmt"

	"type-extractor/core/database"
	"type-extractor/feature/types/models"

	"gorm.io/gorm"
)

// TypeSource is anything that can enumerate (typeID, groupID, typeName) triples.
// The cache reader's client store and the dump database both satisfy it.
type TypeSource interface {
	// EachType calls fn once per type, in the source's native order.
	// Enumeration stops at the first error returned by fn.
	EachType(ctx context.Context, fn func(models.TypeTriple) error) error
}

// DBSource enumerates types from an invTypes table.
type DBSource struct {
	db *gorm.DB
}

// NewDBSource creates a TypeSource over db.
func NewDBSource(db *gorm.DB) *DBSource {
	return &DBSource{db: db}
}

// EachType scans invTypes once with a single cursor.
func (s *DBSource) EachType(ctx context.Context, fn func(models.TypeTriple) error) error {
	if err := database.RequireColumns(s.db.WithContext(ctx), models.InvType{}.TableName(), "typeID", "groupID", "typeName"); err != nil {
		return fmt.Errorf("%w: %w", ErrQuery, err)
	}

	rows, err := s.db.WithContext(ctx).
		Model(&models.InvType{}).
		Select("typeID", "groupID", "typeName").
		Rows()
	if err != nil {
		return fmt.Errorf("%w: failed to query invTypes: %w", ErrQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var t models.TypeTriple
		var name sql.NullString
		if err := rows.Scan(&t.TypeID, &t.GroupID, &name); err != nil {
			return fmt.Errorf("%w: failed to scan invTypes row: %w", ErrQuery, err)
		}
		t.TypeName = name.String
		if err := fn(t); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: failed to iterate invTypes: %w", ErrQuery, err)
	}
	return nil
}
