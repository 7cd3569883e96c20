// Package database handles database connections and schema inspection.
//
// It wraps GORM to open either the sqlite snapshot produced by the dump
// download or a MySQL import of the same static data.
//
// # Connect
//
// Connect opens the configured driver. sqlite files are opened read-only by
// default (mode=ro) and limited to a single connection; MySQL connections get
// pool limits and DSN timeouts.
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns (pragma_table_info on sqlite,
// information_schema on MySQL). RequireColumns builds on it to reject a snapshot whose
// expected tables or columns are missing before any rows are scanned.
//
// # Usage
//
//	db, err := database.Connect(database.Config{Driver: "sqlite", Name: path, ReadOnly: true})
//	if err != nil {
//	    return err
//	}
//	defer database.Close(db)
//
//	err = database.RequireColumns(db, "invTypes", "typeID", "groupID")
package database
