package postgres

import (
	"testing"

	"github.com/levelforge/beatmap/internal/config"
	gormstorage "github.com/levelforge/beatmap/internal/storage/gorm"
	"github.com/levelforge/beatmap/pkg/beatmap"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestStoreBeforeInit(t *testing.T) {
	b := New(config.PostgresConfig{Host: "localhost"}, zerolog.Nop())

	err := b.Store(&beatmap.Beatmap{LevelID: "Escape"}, nil)
	assert.ErrorIs(t, err, gormstorage.ErrNotReady)
	assert.NoError(t, b.Close())
}

func TestInit_Unreachable(t *testing.T) {
	b := New(config.PostgresConfig{
		Host:     "127.0.0.1",
		Port:     "1",
		Username: "postgres",
		Password: "postgres",
		Database: "beatmaps",
	}, zerolog.Nop())

	assert.Error(t, b.Init())
	assert.Nil(t, b.DB())
}
