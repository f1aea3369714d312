package database_test

import (
	"testing"

	"army-catalog/core/database"

	"github.com/stretchr/testify/assert"
)

func TestConnect(t *testing.T) {
	t.Run("InMemory", func(t *testing.T) {
		db, err := database.Connect(database.Config{Path: ":memory:"})
		assert.NoError(t, err)
		assert.NotNil(t, db)
	})

	t.Run("DefaultPath", func(t *testing.T) {
		db, err := database.Connect(database.Config{Path: t.TempDir() + "/cache.db"})
		assert.NoError(t, err)
		assert.NotNil(t, db)
	})
}
