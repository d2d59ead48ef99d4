package storage_test

import (
	"testing"

	"github.com/levelforge/beatmap/internal/config"
	"github.com/levelforge/beatmap/internal/storage"
	gormstorage "github.com/levelforge/beatmap/internal/storage/gorm"
	"github.com/levelforge/beatmap/internal/storage/memory"
	pgstorage "github.com/levelforge/beatmap/internal/storage/postgres"
	sqlitestorage "github.com/levelforge/beatmap/internal/storage/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time interface checks
var (
	_ storage.Backend  = (*gormstorage.Backend)(nil)
	_ storage.Backend  = (*memory.Backend)(nil)
	_ storage.Exporter = (*memory.Backend)(nil)
	_ storage.Backend  = (*sqlitestorage.Backend)(nil)
	_ storage.Exporter = (*sqlitestorage.Backend)(nil)
	_ storage.Backend  = (*pgstorage.Backend)(nil)
)

func TestNewBackend(t *testing.T) {
	tests := []struct {
		kind string
		want any
	}{
		{"", &memory.Backend{}},
		{"memory", &memory.Backend{}},
		{"sqlite", &sqlitestorage.Backend{}},
		{"postgres", &pgstorage.Backend{}},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			b, err := storage.NewBackend(config.ArchiveConfig{Type: tt.kind}, zerolog.Nop())
			require.NoError(t, err)
			assert.IsType(t, tt.want, b)
		})
	}
}

func TestNewBackend_Unknown(t *testing.T) {
	_, err := storage.NewBackend(config.ArchiveConfig{Type: "influx"}, zerolog.Nop())
	assert.EqualError(t, err, "unknown archive type: influx")
}
