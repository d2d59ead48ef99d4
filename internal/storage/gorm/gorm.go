// Package gormstorage implements the storage.Backend interface using GORM.
// It backs both the SQLite and Postgres archives.
package gormstorage

import (
	"errors"
	"fmt"
	"slices"

	"github.com/levelforge/beatmap/internal/database"
	"github.com/levelforge/beatmap/internal/model"
	"github.com/levelforge/beatmap/internal/model/convert"
	"github.com/levelforge/beatmap/pkg/beatmap"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// ErrNotReady is returned when the backend has no database connection.
var ErrNotReady = errors.New("database not initialized")

// Dependencies holds all dependencies for the GORM storage backend.
type Dependencies struct {
	DB     *gorm.DB
	Logger zerolog.Logger
}

// Backend implements storage.Backend on a GORM connection.
type Backend struct {
	deps Dependencies
}

// New creates a new GORM storage backend.
func New(deps Dependencies) *Backend {
	return &Backend{deps: deps}
}

// DB returns the underlying connection, nil before one is attached.
func (b *Backend) DB() *gorm.DB {
	return b.deps.DB
}

// Attach sets the connection used by later calls.
func (b *Backend) Attach(db *gorm.DB) {
	b.deps.DB = db
}

// Init migrates the archive schema.
func (b *Backend) Init() error {
	if b.deps.DB == nil {
		return ErrNotReady
	}
	return database.Migrate(b.deps.DB, b.deps.Logger)
}

// Close releases the connection pool.
func (b *Backend) Close() error {
	if b.deps.DB == nil {
		return nil
	}
	sqlDB, err := b.deps.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to access sql interface: %w", err)
	}
	return sqlDB.Close()
}

// Store archives bm together with wire, replacing any level with the same
// level id. A nil wire is encoded from bm with legacy padding.
func (b *Backend) Store(bm *beatmap.Beatmap, wire []byte) error {
	if b.deps.DB == nil {
		return ErrNotReady
	}

	if wire == nil {
		var err error
		if wire, err = bm.Encode(); err != nil {
			return fmt.Errorf("failed to encode level %q: %w", bm.LevelID, err)
		}
	}
	level := convert.ToLevel(bm, slices.Clone(wire))

	err := b.deps.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.Level
		res := tx.Where("level_id = ?", bm.LevelID).Limit(1).Find(&existing)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			if err := tx.Where("level_row_id = ?", existing.ID).Delete(&model.Difficulty{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
		}
		return tx.Create(&level).Error
	})
	if err != nil {
		return fmt.Errorf("failed to store level %q: %w", bm.LevelID, err)
	}

	b.deps.Logger.Debug().
		Str("levelId", bm.LevelID).
		Uint("row", level.ID).
		Int("difficulties", len(level.Difficulties)).
		Msg("Archived level")
	return nil
}

// Get loads the archived level with the given id.
func (b *Backend) Get(levelID string) (*beatmap.Beatmap, error) {
	if b.deps.DB == nil {
		return nil, ErrNotReady
	}

	var level model.Level
	err := b.deps.DB.Preload("Difficulties").Where("level_id = ?", levelID).First(&level).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load level %q: %w", levelID, err)
	}
	return convert.FromLevel(level), nil
}

// Wire returns the encoded record archived for levelID.
func (b *Backend) Wire(levelID string) ([]byte, error) {
	if b.deps.DB == nil {
		return nil, ErrNotReady
	}

	var level model.Level
	err := b.deps.DB.Select("wire").Where("level_id = ?", levelID).First(&level).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load level %q: %w", levelID, err)
	}
	return level.Wire, nil
}

// Count returns the number of archived levels.
func (b *Backend) Count() (int64, error) {
	if b.deps.DB == nil {
		return 0, ErrNotReady
	}

	var n int64
	if err := b.deps.DB.Model(&model.Level{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
