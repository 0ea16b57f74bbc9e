package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMustParse(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := MustParse([]string{"gsqlite"})
		assert.Equal(t, ":memory:", cfg.DatabasePath)
		assert.Empty(t, cfg.Pragmas)
		assert.False(t, cfg.Verbose)
	})

	t.Run("DatabasePath", func(t *testing.T) {
		cfg := MustParse([]string{"gsqlite", "/tmp/app.sqlite"})
		assert.Equal(t, "/tmp/app.sqlite", cfg.DatabasePath)
	})

	t.Run("Pragmas", func(t *testing.T) {
		cfg := MustParse([]string{
			"gsqlite", "--pragma", "PRAGMA foreign_keys = ON",
			"--pragma", "PRAGMA cache_size = 10000",
			"-v",
		})
		assert.Len(t, cfg.Pragmas, 2)
		assert.True(t, cfg.Verbose)
	})
}
