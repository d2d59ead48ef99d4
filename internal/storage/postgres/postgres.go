// Package postgres implements the storage.Backend interface on PostgreSQL.
package postgres

import (
	"github.com/levelforge/beatmap/internal/config"
	"github.com/levelforge/beatmap/internal/database"
	gormstorage "github.com/levelforge/beatmap/internal/storage/gorm"
	"github.com/rs/zerolog"
)

// Backend archives levels in a Postgres database.
type Backend struct {
	*gormstorage.Backend
	cfg config.PostgresConfig
	log zerolog.Logger
}

// New creates a new Postgres backend. The connection is made by Init.
func New(cfg config.PostgresConfig, log zerolog.Logger) *Backend {
	return &Backend{
		Backend: gormstorage.New(gormstorage.Dependencies{Logger: log}),
		cfg:     cfg,
		log:     log,
	}
}

// Init connects to the database and migrates the schema.
func (b *Backend) Init() error {
	db, err := database.OpenPostgres(b.cfg)
	if err != nil {
		return err
	}
	b.log.Info().Str("host", b.cfg.Host).Str("database", b.cfg.Database).Msg("Connected to postgres")
	b.Attach(db)
	return b.Backend.Init()
}
