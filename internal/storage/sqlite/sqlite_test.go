package sqlitestorage

import (
	"path/filepath"
	"testing"

	"github.com/levelforge/beatmap/internal/config"
	"github.com/levelforge/beatmap/internal/database"
	"github.com/levelforge/beatmap/pkg/beatmap"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseDumpsToDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.db")
	b := New(config.SQLiteConfig{Path: path}, zerolog.Nop())
	require.NoError(t, b.Init())

	require.NoError(t, b.Store(&beatmap.Beatmap{LevelID: "Escape", SongName: "Escape"}, nil))
	require.NoError(t, b.Store(&beatmap.Beatmap{LevelID: "Breezer", SongName: "Breezer"}, nil))
	require.NoError(t, b.Close())
	assert.Equal(t, []string{path}, b.ExportedPaths())

	db, err := database.OpenSqlite(path)
	require.NoError(t, err)
	var count int64
	require.NoError(t, db.Table("levels").Count(&count).Error)
	assert.Equal(t, int64(2), count)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func TestCloseWithoutPath(t *testing.T) {
	b := New(config.SQLiteConfig{}, zerolog.Nop())
	require.NoError(t, b.Init())
	require.NoError(t, b.Store(&beatmap.Beatmap{LevelID: "Escape"}, nil))

	n, err := b.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, b.Close())
	assert.Nil(t, b.ExportedPaths())
}

func TestCloseBeforeInit(t *testing.T) {
	b := New(config.SQLiteConfig{Path: "unused.db"}, zerolog.Nop())
	assert.NoError(t, b.Close())
}
