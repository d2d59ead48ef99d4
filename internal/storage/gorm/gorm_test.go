package gormstorage

import (
	"testing"

	"github.com/levelforge/beatmap/internal/database"
	"github.com/levelforge/beatmap/pkg/beatmap"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	db, err := database.OpenSqlite("")
	require.NoError(t, err)

	b := New(Dependencies{DB: db, Logger: zerolog.Nop()})
	require.NoError(t, b.Init())
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func testLevel(id string) *beatmap.Beatmap {
	return &beatmap.Beatmap{
		GameObject:     beatmap.Pointer{FileID: 0, PathID: 11},
		Script:         beatmap.Pointer{FileID: 1, PathID: 1200},
		EnabledFlag:    1,
		Name:           id + "Level",
		LevelID:        id,
		SongName:       "Song of " + id,
		SongAuthorName: "Someone",
		BeatsPerMinute: 128,
		ShufflePeriod:  0.5,
		DifficultyBeatmapSets: beatmap.NewDifficultyList(
			beatmap.Difficulty{Difficulty: 0, Rank: 1, NoteJumpSpeed: 10, BeatmapData: beatmap.Pointer{PathID: 40}},
			beatmap.Difficulty{Difficulty: 2, Rank: 5, NoteJumpSpeed: 12, NoteJumpOffset: -1, BeatmapData: beatmap.Pointer{PathID: 41}},
		),
	}
}

func TestNotReady(t *testing.T) {
	b := New(Dependencies{Logger: zerolog.Nop()})

	assert.ErrorIs(t, b.Init(), ErrNotReady)
	assert.ErrorIs(t, b.Store(testLevel("Escape"), nil), ErrNotReady)
	_, err := b.Get("Escape")
	assert.ErrorIs(t, err, ErrNotReady)
	assert.NoError(t, b.Close())
}

func TestStoreAndGet(t *testing.T) {
	b := newTestBackend(t)
	want := testLevel("Escape")

	require.NoError(t, b.Store(want, nil))

	got, err := b.Get("Escape")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	wire, err := b.Wire("Escape")
	require.NoError(t, err)
	expected, err := want.Encode()
	require.NoError(t, err)
	assert.Equal(t, expected, wire)
}

func TestStore_ReplacesSameLevelID(t *testing.T) {
	b := newTestBackend(t)

	require.NoError(t, b.Store(testLevel("Escape"), nil))
	updated := testLevel("Escape")
	updated.SongName = "Remix"
	updated.DifficultyBeatmapSets = beatmap.NewDifficultyList(beatmap.Difficulty{Difficulty: 4, Rank: 9})
	require.NoError(t, b.Store(updated, nil))
	require.NoError(t, b.Store(testLevel("Breezer"), nil))

	n, err := b.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	got, err := b.Get("Escape")
	require.NoError(t, err)
	assert.Equal(t, "Remix", got.SongName)
	assert.Equal(t, updated.DifficultyBeatmapSets, got.DifficultyBeatmapSets)

	var orphans int64
	require.NoError(t, b.DB().Table("difficulties").Count(&orphans).Error)
	assert.Equal(t, int64(3), orphans, "replaced difficulties are removed")
}

func TestStore_SizeMismatch(t *testing.T) {
	b := newTestBackend(t)
	bad := testLevel("Escape")
	bad.DifficultyBeatmapSets.Size = 7

	err := b.Store(bad, nil)
	assert.ErrorIs(t, err, beatmap.ErrSizeMismatch)

	n, err := b.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestGet_Missing(t *testing.T) {
	b := newTestBackend(t)
	_, err := b.Get("nope")
	assert.Error(t, err)
}

func TestStore_KeepsGivenWire(t *testing.T) {
	b := newTestBackend(t)
	bm := testLevel("Escape")
	bm.SongSubName = ""

	wire, err := bm.EncodeWith(beatmap.Options{Padding: beatmap.PadAligned})
	require.NoError(t, err)
	legacy, err := bm.Encode()
	require.NoError(t, err)
	require.NotEqual(t, legacy, wire)

	require.NoError(t, b.Store(bm, wire))
	wire[0] ^= 0xff

	got, err := b.Wire("Escape")
	require.NoError(t, err)
	wire[0] ^= 0xff
	assert.Equal(t, wire, got)
}
