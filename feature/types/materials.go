package types

import (
	"context"
	"fmt"

	"type-extractor/feature/types/models"

	"gorm.io/gorm"
)

// MaterialsIndex maps a parent typeID to its materials in table scan order.
// The materials table is small enough to hold in memory, which avoids a join
// or a correlated subquery per type.
type MaterialsIndex map[int64][]models.ComponentEntry

// LoadMaterials scans invTypeMaterials once and groups the rows by parent type.
func LoadMaterials(ctx context.Context, db *gorm.DB) (MaterialsIndex, error) {
	rows, err := db.WithContext(ctx).
		Model(&models.InvTypeMaterial{}).
		Select(models.InvTypeMaterialColumns).
		Rows()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query invTypeMaterials: %w", ErrQuery, err)
	}
	defer rows.Close()

	index := make(MaterialsIndex)
	for rows.Next() {
		var row models.InvTypeMaterial
		if err := rows.Scan(&row.TypeID, &row.MaterialTypeID, &row.Quantity); err != nil {
			return nil, fmt.Errorf("%w: failed to scan invTypeMaterials row: %w", ErrQuery, err)
		}
		index[row.TypeID] = append(index[row.TypeID], row.ToComponent())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate invTypeMaterials: %w", ErrQuery, err)
	}
	return index, nil
}
