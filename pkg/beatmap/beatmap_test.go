package beatmap

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBeatmap has no string whose length is a multiple of 4.
func testBeatmap() *Beatmap {
	return &Beatmap{
		GameObject:       Pointer{FileID: 0, PathID: 0},
		Script:           Pointer{FileID: 1, PathID: -8462358877567646184},
		EnabledFlag:      1,
		Name:             "LevelBeatmapLevel",
		LevelID:          "Level",
		SongName:         "Escape",
		SongSubName:      "ft. Summer",
		SongAuthorName:   "Jaroslav Beck",
		LevelAuthor:      "Freeek",
		AudioClip:        Pointer{FileID: 2, PathID: 42},
		CoverImage:       Pointer{FileID: 3, PathID: math.MaxInt64},
		EnvironmentScene: Pointer{FileID: -1, PathID: math.MinInt64},
		BeatsPerMinute:   175,
		SongTimeOffset:   -0.25,
		Shuffle:          0.1,
		ShufflePeriod:    0.5,
		PreviewStartTime: 12.5,
		PreviewDuration:  10,
		DifficultyBeatmapSets: NewDifficultyList(
			Difficulty{Difficulty: 0, Rank: 1, NoteJumpSpeed: 10, NoteJumpOffset: 0, BeatmapData: Pointer{FileID: 0, PathID: 100}},
			Difficulty{Difficulty: 4, Rank: 9, NoteJumpSpeed: 18, NoteJumpOffset: -1, BeatmapData: Pointer{FileID: 0, PathID: 101}},
		),
	}
}

func TestBeatmap_RoundTrip(t *testing.T) {
	b := testBeatmap()

	data, err := b.Encode()
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, b, got)

	again, err := got.Encode()
	require.NoError(t, err)
	assert.Equal(t, data, again, "wire form must be byte-identical")
}

func TestBeatmap_RoundTripAligned(t *testing.T) {
	b := testBeatmap()
	// Lengths that are multiples of 4, including empty.
	b.Name = "Easy"
	b.LevelID = ""
	b.SongSubName = "12345678"

	data, err := b.EncodeWith(Options{Padding: PadAligned})
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestBeatmap_LegacyPaddingMisalignsExactMultiples(t *testing.T) {
	b := testBeatmap()
	b.Name = "Easy"

	data, err := b.Encode()
	require.NoError(t, err)

	got, err := Decode(data)
	if err == nil {
		assert.NotEqual(t, b, got)
	}
}

func TestBeatmap_WireLayout(t *testing.T) {
	b := &Beatmap{
		GameObject:            Pointer{FileID: 1, PathID: 2},
		Script:                Pointer{FileID: 3, PathID: 4},
		EnabledFlag:           1,
		Name:                  "a",
		LevelID:               "b",
		SongName:              "c",
		SongSubName:           "d",
		SongAuthorName:        "e",
		LevelAuthor:           "f",
		AudioClip:             Pointer{FileID: 5, PathID: 6},
		CoverImage:            Pointer{FileID: 7, PathID: 8},
		EnvironmentScene:      Pointer{FileID: 9, PathID: 10},
		BeatsPerMinute:        1,
		SongTimeOffset:        2,
		Shuffle:               3,
		ShufflePeriod:         4,
		PreviewStartTime:      5,
		PreviewDuration:       6,
		DifficultyBeatmapSets: NewDifficultyList(Difficulty{Difficulty: 2, Rank: 5, NoteJumpSpeed: 12, NoteJumpOffset: 1, BeatmapData: Pointer{FileID: 11, PathID: 12}}),
	}

	var want bytes.Buffer
	le := func(v any) { require.NoError(t, binary.Write(&want, binary.LittleEndian, v)) }
	str := func(s string) { le(uint32(1)); want.WriteString(s); want.Write([]byte{0, 0, 0}) }

	le(int32(1))
	le(int64(2))
	le(int32(3))
	le(int64(4))
	le(uint32(1))
	for _, s := range []string{"a", "b", "c", "d", "e", "f"} {
		str(s)
	}
	le(int32(5))
	le(int64(6))
	le(int32(7))
	le(int64(8))
	le(int32(9))
	le(int64(10))
	for _, f := range []float32{1, 2, 3, 4, 5, 6} {
		le(f)
	}
	le(uint32(1))
	le(int32(2))
	le(int32(5))
	le(float32(12))
	le(int32(1))
	le(int32(11))
	le(int64(12))

	got, err := b.Encode()
	require.NoError(t, err)
	assert.Equal(t, want.Bytes(), got)
	assert.Len(t, got, 2*PointerSize+4+6*8+3*PointerSize+6*4+4+DifficultySize)
}

func TestRead_TruncatedReturnsNoPartialRecord(t *testing.T) {
	data, err := testBeatmap().Encode()
	require.NoError(t, err)

	for _, cut := range []int{0, 3, PointerSize, 40, len(data) / 2, len(data) - 1} {
		got, err := Decode(data[:cut])
		require.Error(t, err, "cut at %d", cut)
		assert.Nil(t, got)
		assert.True(t, errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF), "cut at %d: %v", cut, err)
	}
}

func TestRead_ErrorNamesField(t *testing.T) {
	data, err := testBeatmap().Encode()
	require.NoError(t, err)

	_, err = Decode(data[:2*PointerSize+2])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "m_Enabled")
}

func TestRead_InvalidUTF8(t *testing.T) {
	b := testBeatmap()
	b.SongName = "\xff\xfe\xfd"

	data, err := b.Encode()
	require.NoError(t, err)

	got, err := Decode(data)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, ErrInvalidData))
	assert.Contains(t, err.Error(), "_songName")
}

func TestWrite_SizeMismatchWritesNothing(t *testing.T) {
	b := testBeatmap()
	b.DifficultyBeatmapSets.Size = 5

	var buf bytes.Buffer
	err := b.Write(&buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSizeMismatch))
	assert.Zero(t, buf.Len())
}

type failingWriter struct {
	after int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, io.ErrShortWrite
	}
	w.after--
	return len(p), nil
}

func TestWrite_PropagatesWriterError(t *testing.T) {
	err := testBeatmap().Write(&failingWriter{after: 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, io.ErrShortWrite))
	assert.Contains(t, err.Error(), "m_Script")
}

func TestBeatmap_Enabled(t *testing.T) {
	b := &Beatmap{}
	assert.False(t, b.Enabled())
	b.EnabledFlag = 7
	assert.True(t, b.Enabled())
}

func TestBeatmap_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(testBeatmap())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	for _, key := range []string{
		"m_GameObject", "m_Script", "m_Enabled", "m_Name", "_levelID", "_songName",
		"_songSubName", "_songAuthorName", "_levelAuthorName", "_audioClip",
		"_coverImageTexture2D", "_environmentSceneInfo", "_beatsPerMinute",
		"_songTimeOffset", "_shuffle", "_shufflePeriod", "_previewStartTime",
		"_previewDuration", "_difficultyBeatmapSets",
	} {
		assert.Contains(t, doc, key)
	}
	assert.Len(t, doc, 19)

	sets := doc["_difficultyBeatmapSets"].(map[string]any)
	assert.Equal(t, float64(2), sets["size"])
	assert.Len(t, sets["Array"], 2)

	audio := doc["_audioClip"].(map[string]any)
	assert.Equal(t, float64(2), audio["FileID"])
	assert.Equal(t, float64(42), audio["PathID"])
}

func TestBeatmap_JSONRoundTrip(t *testing.T) {
	b := testBeatmap()

	data, err := json.Marshal(b)
	require.NoError(t, err)

	var got Beatmap
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *b, got)
}

func TestBeatmap_UnmarshalJSONMissingField(t *testing.T) {
	data, err := json.Marshal(testBeatmap())
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	delete(doc, "_shufflePeriod")
	data, err = json.Marshal(doc)
	require.NoError(t, err)

	got := Beatmap{Name: "untouched"}
	err = json.Unmarshal(data, &got)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingField))
	assert.Contains(t, err.Error(), "_shufflePeriod")
	assert.Equal(t, "untouched", got.Name, "no partial object on failure")
}

func TestBeatmap_UnmarshalJSONNestedMissingField(t *testing.T) {
	doc := `{"FileID": 1}`
	var p Pointer
	err := json.Unmarshal([]byte(doc), &p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingField))
	assert.Contains(t, err.Error(), "PathID")
}

func TestBeatmap_UnmarshalJSONWrongShape(t *testing.T) {
	for _, doc := range []string{`[]`, `null`, `{"m_GameObject": "nope"}`, `42`} {
		var b Beatmap
		assert.Error(t, json.Unmarshal([]byte(doc), &b), doc)
	}
}
