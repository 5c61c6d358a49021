package api_test

import (
	"testing"

	"github.com/kanbanlab/board_service/internal/api"
	"github.com/kanbanlab/board_service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDatabasePicksSqliteForFilePaths(t *testing.T) {
	db, err := api.OpenDatabase("file::memory:?cache=private")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", db.Dialector.Name())
}

// MigrateWithLock must create every table; the postgres advisory lock is
// held and released on one pinned session, on other drivers it falls
// through to a plain migrate.
func TestMigrateWithLockCreatesTables(t *testing.T) {
	db, err := api.OpenDatabase(":memory:")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, api.MigrateWithLock(db))

	for _, model := range []any{
		&domain.Board{},
		&domain.Column{},
		&domain.Card{},
		&domain.User{},
		&domain.CardHistory{},
	} {
		assert.True(t, db.Migrator().HasTable(model))
	}

	// running it again is a no-op, not an error
	require.NoError(t, api.MigrateWithLock(db))
}
