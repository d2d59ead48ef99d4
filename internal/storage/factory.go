// internal/storage/factory.go
package storage

import (
	"fmt"

	"github.com/levelforge/beatmap/internal/config"
	"github.com/levelforge/beatmap/internal/storage/memory"
	pgstorage "github.com/levelforge/beatmap/internal/storage/postgres"
	sqlitestorage "github.com/levelforge/beatmap/internal/storage/sqlite"
	"github.com/rs/zerolog"
)

// NewBackend creates an archive backend based on configuration
func NewBackend(cfg config.ArchiveConfig, log zerolog.Logger) (Backend, error) {
	switch cfg.Type {
	case "postgres":
		return pgstorage.New(cfg.Postgres, log), nil
	case "sqlite":
		return sqlitestorage.New(cfg.SQLite, log), nil
	case "memory", "":
		return memory.New(cfg.Memory), nil
	default:
		return nil, fmt.Errorf("unknown archive type: %s", cfg.Type)
	}
}
