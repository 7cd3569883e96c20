package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         DriverMySQL,
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "sde",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.ErrorContains(t, err, "unsupported database driver")
		assert.Nil(t, db)
	})

	t.Run("SQLite Read Only", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sde.sqlite")

		rw, err := Connect(Config{Driver: DriverSQLite, Name: path})
		require.NoError(t, err)
		require.NoError(t, rw.Exec("CREATE TABLE invTypes (typeID INTEGER PRIMARY KEY)").Error)
		require.NoError(t, Close(rw))

		ro, err := Connect(Config{Driver: DriverSQLite, Name: path, ReadOnly: true})
		require.NoError(t, err)
		defer Close(ro)

		err = ro.Exec("INSERT INTO invTypes (typeID) VALUES (1)").Error
		assert.Error(t, err, "writes must be rejected on a read-only connection")
	})

	t.Run("SQLite Missing File Read Only", func(t *testing.T) {
		db, err := Connect(Config{Driver: DriverSQLite, Name: filepath.Join(t.TempDir(), "absent.sqlite"), ReadOnly: true})
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}

func TestClose_Nil(t *testing.T) {
	assert.NoError(t, Close(nil))
}
