// Package testutil opens throwaway databases built by the production
// bootstrap.
package testutil

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hostel-backend/config"
)

// Settings returns sqlite settings for a private in-memory database.
func Settings() config.Settings {
	return config.Settings{
		Driver:       config.DriverSQLite,
		SQLitePath:   "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}
}

// NewDB opens a fresh in-memory database and runs Bootstrap on it. The
// database disappears when the test ends.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.Open(Settings())
	require.NoError(t, err)
	require.NoError(t, config.Bootstrap(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
