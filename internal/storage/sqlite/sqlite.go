// Package sqlitestorage implements the storage.Backend interface using an
// in-memory SQLite database that is written to disk via VACUUM INTO on close.
package sqlitestorage

import (
	"fmt"
	"time"

	"github.com/levelforge/beatmap/internal/config"
	"github.com/levelforge/beatmap/internal/database"
	gormstorage "github.com/levelforge/beatmap/internal/storage/gorm"
	"github.com/rs/zerolog"
)

// Backend wraps the GORM backend for SQLite-specific behavior.
type Backend struct {
	*gormstorage.Backend
	cfg config.SQLiteConfig
	log zerolog.Logger
}

// New creates a new SQLite storage backend. The database is opened by Init.
func New(cfg config.SQLiteConfig, log zerolog.Logger) *Backend {
	return &Backend{
		Backend: gormstorage.New(gormstorage.Dependencies{Logger: log}),
		cfg:     cfg,
		log:     log,
	}
}

// Init opens the in-memory database and migrates it.
func (b *Backend) Init() error {
	db, err := database.OpenSqlite("")
	if err != nil {
		return fmt.Errorf("failed to create in-memory SQLite DB: %w", err)
	}
	b.Attach(db)
	return b.Backend.Init()
}

// Close dumps the database to the configured path and closes it.
func (b *Backend) Close() error {
	if b.DB() == nil {
		return nil
	}

	if b.cfg.Path != "" {
		start := time.Now()
		if err := database.DumpMemoryDBToDisk(b.DB(), b.cfg.Path); err != nil {
			b.log.Error().Err(err).Str("path", b.cfg.Path).Msg("Error dumping to disk")
			_ = b.Backend.Close()
			return err
		}
		b.log.Debug().Str("path", b.cfg.Path).Dur("took", time.Since(start)).Msg("Dumped to disk")
	}

	return b.Backend.Close()
}

// ExportedPaths returns the dump file, if one is configured.
func (b *Backend) ExportedPaths() []string {
	if b.cfg.Path == "" {
		return nil
	}
	return []string{b.cfg.Path}
}
