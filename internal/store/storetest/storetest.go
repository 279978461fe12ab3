// Package storetest provides throwaway databases for tests.
package storetest

import (
	"testing"

	"github.com/folio-space/core/internal/database"
	"github.com/folio-space/core/internal/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a migrated in-memory SQLite database private to t.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := database.Open(sqlite.Open("file::memory:?_foreign_keys=on"), logger.Silent)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every new connection to :memory: would be a fresh, empty database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// New returns a Store over a fresh database.
func New(t testing.TB, opts ...store.Option) *store.Store {
	t.Helper()
	return store.New(Open(t), zap.NewNop(), opts...)
}
