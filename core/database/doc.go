// Package database handles relational connections and schema inspection.
//
// It wraps GORM to open MySQL or SQLite connections from the application's configuration.
// SQLite is mainly used for local catalogs and in-memory tests; in that mode the pool is
// limited to one connection so ":memory:" behaves as a single database.
//
// # Schema Inspection
//
// GetTableColumns lists the live columns of a table (SHOW COLUMNS on MySQL, PRAGMA
// table_info on SQLite). The server integrity check compares them against the
// product record model.
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
