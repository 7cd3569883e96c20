package types

import (
	"testing"

	"type-extractor/feature/types/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMaterials(t *testing.T) {
	t.Run("Groups By Parent In Scan Order", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SELECT .* FROM `invTypeMaterials`").
			WillReturnRows(sqlmock.NewRows(models.InvTypeMaterialColumns).
				AddRow(int64(671), int64(36), int64(10)).
				AddRow(int64(11567), int64(34), int64(500000)).
				AddRow(int64(671), int64(34), int64(20)))

		index, err := LoadMaterials(t.Context(), db)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())

		assert.Len(t, index, 2)
		assert.Equal(t, []models.ComponentEntry{
			{TypeID: 671, MaterialTypeID: 36, Quantity: 10},
			{TypeID: 671, MaterialTypeID: 34, Quantity: 20},
		}, index[671])
	})

	t.Run("Query Failure", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SELECT .* FROM `invTypeMaterials`").WillReturnError(assert.AnError)

		index, err := LoadMaterials(t.Context(), db)
		assert.ErrorIs(t, err, ErrQuery)
		assert.Nil(t, index)
	})

	t.Run("Row Error", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SELECT .* FROM `invTypeMaterials`").
			WillReturnRows(sqlmock.NewRows(models.InvTypeMaterialColumns).
				AddRow(int64(671), int64(36), int64(10)).
				RowError(0, assert.AnError))

		_, err := LoadMaterials(t.Context(), db)
		assert.ErrorIs(t, err, ErrQuery)
	})
}
