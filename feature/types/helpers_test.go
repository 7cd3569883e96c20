package types

import (
	"path/filepath"
	"testing"

	"type-extractor/core/database"
	"type-extractor/feature/types/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

// seedSnapshot writes a sqlite snapshot holding the given rows and returns its path.
func seedSnapshot(t *testing.T, rows []models.InvType, materials []models.InvTypeMaterial) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sde.sqlite")

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: path})
	require.NoError(t, err)
	defer database.Close(db)

	require.NoError(t, db.AutoMigrate(&models.InvType{}, &models.InvTypeMaterial{}))
	if len(rows) > 0 {
		require.NoError(t, db.Create(&rows).Error)
	}
	if len(materials) > 0 {
		require.NoError(t, db.Create(&materials).Error)
	}
	return path
}

func openSnapshot(t *testing.T, path string) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: path, ReadOnly: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func expectColumns(mock sqlmock.Sqlmock, table string, names ...string) {
	rows := sqlmock.NewRows([]string{"field", "type", "nullable"})
	for _, n := range names {
		rows.AddRow(n, "int(11)", true)
	}
	mock.ExpectQuery("FROM information_schema.COLUMNS").WithArgs(table).WillReturnRows(rows)
}

// fleet is a small snapshot covering every projection branch.
func fleet() ([]models.InvType, []models.InvTypeMaterial) {
	rows := []models.InvType{
		{TypeID: 34, GroupID: 18, TypeName: "Tritanium", Volume: ptr(0.01), MarketGroupID: ptr(int64(1857))},
		{TypeID: 587, GroupID: 25, TypeName: "Rifter", Volume: ptr(27289.0), MarketGroupID: ptr(int64(64))},
		{TypeID: 671, GroupID: 30, TypeName: "Erebus", Volume: ptr(1.0e7)},
		{TypeID: 11567, GroupID: 547, TypeName: "Archon", Volume: ptr(1.0e6)},
		{TypeID: 23757, GroupID: 547, TypeName: "Archon Blueprint Copy", Volume: nil},
		{TypeID: 28352, GroupID: 883, TypeName: "Rorqual", Volume: ptr(1.42e7), MarketGroupID: ptr(int64(1048))},
	}
	materials := []models.InvTypeMaterial{
		{TypeID: 587, MaterialTypeID: 34, Quantity: 28000},
		{TypeID: 671, MaterialTypeID: 34, Quantity: 40000000},
		{TypeID: 671, MaterialTypeID: 35, Quantity: 9000000},
		{TypeID: 11567, MaterialTypeID: 34, Quantity: 500000},
		{TypeID: 28352, MaterialTypeID: 36, Quantity: 2500000},
	}
	return rows, materials
}
