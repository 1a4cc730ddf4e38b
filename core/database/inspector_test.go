package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE products (id TEXT PRIMARY KEY, document TEXT NOT NULL, updated_at DATETIME)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "products")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	cols := ColumnMap(columns)
	assert.Equal(t, "text", cols["id"].Type)
	assert.Equal(t, "PRI", cols["id"].Key)
	assert.Equal(t, "NO", cols["document"].Null)
	assert.Equal(t, "datetime", cols["updated_at"].Type)
	assert.Equal(t, "YES", cols["updated_at"].Null)

	// PRAGMA table_info returns an empty result for unknown tables.
	cols2, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols2)
}

func TestGetTableColumns_NilDB(t *testing.T) {
	_, err := GetTableColumns(nil, "products")
	assert.EqualError(t, err, "database connection is nil")
}
