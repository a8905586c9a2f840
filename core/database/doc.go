// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure SQLite (the default, a single
// file next to the binary) or MySQL connections based on the application's
// configuration.
//
// # Connect
//
// Connect opens the database, applies pool settings suited to the driver and
// verifies the connection with a ping. SQLite connections are opened with
// foreign keys enabled and a single pooled connection.
//
// # Schema Inspection
//
// GetTableColumns returns the live column definitions of a table. The
// integrity feature compares them with the store models to report drift.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "products")
package database
