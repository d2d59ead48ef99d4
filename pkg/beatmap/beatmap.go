// Package beatmap reads and writes the engine-serialized level descriptor
// record. The layout is positional little-endian with no header or version:
// fields appear on the wire in declaration order of Beatmap.
package beatmap

import (
	"bytes"
	"io"
)

// Beatmap is the top-level level descriptor record.
type Beatmap struct {
	GameObject Pointer `json:"m_GameObject"`
	Script     Pointer `json:"m_Script"`
	// EnabledFlag is stored as a 32 bit value; any non-zero value is enabled.
	EnabledFlag uint32 `json:"m_Enabled"`

	Name           string `json:"m_Name"`
	LevelID        string `json:"_levelID"`
	SongName       string `json:"_songName"`
	SongSubName    string `json:"_songSubName"`
	SongAuthorName string `json:"_songAuthorName"`
	LevelAuthor    string `json:"_levelAuthorName"`

	AudioClip        Pointer `json:"_audioClip"`
	CoverImage       Pointer `json:"_coverImageTexture2D"`
	EnvironmentScene Pointer `json:"_environmentSceneInfo"`

	BeatsPerMinute   float32 `json:"_beatsPerMinute"`
	SongTimeOffset   float32 `json:"_songTimeOffset"`
	Shuffle          float32 `json:"_shuffle"`
	ShufflePeriod    float32 `json:"_shufflePeriod"`
	PreviewStartTime float32 `json:"_previewStartTime"`
	PreviewDuration  float32 `json:"_previewDuration"`

	DifficultyBeatmapSets DifficultyList `json:"_difficultyBeatmapSets"`
}

// Options control how a Beatmap is encoded.
type Options struct {
	Padding Padding
}

// Enabled reports the boolean meaning of EnabledFlag.
func (b *Beatmap) Enabled() bool {
	return b.EnabledFlag != 0
}

// Read decodes a Beatmap from r. On failure no partial record is returned.
func Read(r io.Reader) (*Beatmap, error) {
	fr := newFieldReader(r)

	b := &Beatmap{
		GameObject:  fr.pointer("m_GameObject"),
		Script:      fr.pointer("m_Script"),
		EnabledFlag: fr.uint32("m_Enabled"),

		Name:           fr.string("m_Name"),
		LevelID:        fr.string("_levelID"),
		SongName:       fr.string("_songName"),
		SongSubName:    fr.string("_songSubName"),
		SongAuthorName: fr.string("_songAuthorName"),
		LevelAuthor:    fr.string("_levelAuthorName"),

		AudioClip:        fr.pointer("_audioClip"),
		CoverImage:       fr.pointer("_coverImageTexture2D"),
		EnvironmentScene: fr.pointer("_environmentSceneInfo"),

		BeatsPerMinute:   fr.float32("_beatsPerMinute"),
		SongTimeOffset:   fr.float32("_songTimeOffset"),
		Shuffle:          fr.float32("_shuffle"),
		ShufflePeriod:    fr.float32("_shufflePeriod"),
		PreviewStartTime: fr.float32("_previewStartTime"),
		PreviewDuration:  fr.float32("_previewDuration"),

		DifficultyBeatmapSets: fr.difficultyList("_difficultyBeatmapSets"),
	}
	if fr.err != nil {
		return nil, fr.err
	}
	return b, nil
}

// Decode is Read over an in-memory buffer.
func Decode(data []byte) (*Beatmap, error) {
	return Read(bytes.NewReader(data))
}

// Write encodes b to w with legacy string padding.
func (b *Beatmap) Write(w io.Writer) error {
	return b.WriteWith(w, Options{Padding: PadLegacy})
}

// WriteWith encodes b to w using opts. The difficulty list is validated
// before any byte is written.
func (b *Beatmap) WriteWith(w io.Writer, opts Options) error {
	if err := b.DifficultyBeatmapSets.validate(); err != nil {
		return err
	}

	fw := newFieldWriter(w, opts.Padding)

	fw.pointer("m_GameObject", b.GameObject)
	fw.pointer("m_Script", b.Script)
	fw.uint32("m_Enabled", b.EnabledFlag)

	fw.string("m_Name", b.Name)
	fw.string("_levelID", b.LevelID)
	fw.string("_songName", b.SongName)
	fw.string("_songSubName", b.SongSubName)
	fw.string("_songAuthorName", b.SongAuthorName)
	fw.string("_levelAuthorName", b.LevelAuthor)

	fw.pointer("_audioClip", b.AudioClip)
	fw.pointer("_coverImageTexture2D", b.CoverImage)
	fw.pointer("_environmentSceneInfo", b.EnvironmentScene)

	fw.float32("_beatsPerMinute", b.BeatsPerMinute)
	fw.float32("_songTimeOffset", b.SongTimeOffset)
	fw.float32("_shuffle", b.Shuffle)
	fw.float32("_shufflePeriod", b.ShufflePeriod)
	fw.float32("_previewStartTime", b.PreviewStartTime)
	fw.float32("_previewDuration", b.PreviewDuration)

	fw.difficultyList("_difficultyBeatmapSets", b.DifficultyBeatmapSets)

	return fw.err
}

// Encode returns the wire form of b with legacy string padding.
func (b *Beatmap) Encode() ([]byte, error) {
	return b.EncodeWith(Options{Padding: PadLegacy})
}

// EncodeWith returns the wire form of b using opts.
func (b *Beatmap) EncodeWith(opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := b.WriteWith(&buf, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a Beatmap document. Every field must be present.
func (b *Beatmap) UnmarshalJSON(data []byte) error {
	var v Beatmap
	err := decodeFields(data, []field{
		{"m_GameObject", &v.GameObject},
		{"m_Script", &v.Script},
		{"m_Enabled", &v.EnabledFlag},
		{"m_Name", &v.Name},
		{"_levelID", &v.LevelID},
		{"_songName", &v.SongName},
		{"_songSubName", &v.SongSubName},
		{"_songAuthorName", &v.SongAuthorName},
		{"_levelAuthorName", &v.LevelAuthor},
		{"_audioClip", &v.AudioClip},
		{"_coverImageTexture2D", &v.CoverImage},
		{"_environmentSceneInfo", &v.EnvironmentScene},
		{"_beatsPerMinute", &v.BeatsPerMinute},
		{"_songTimeOffset", &v.SongTimeOffset},
		{"_shuffle", &v.Shuffle},
		{"_shufflePeriod", &v.ShufflePeriod},
		{"_previewStartTime", &v.PreviewStartTime},
		{"_previewDuration", &v.PreviewDuration},
		{"_difficultyBeatmapSets", &v.DifficultyBeatmapSets},
	})
	if err != nil {
		return err
	}
	*b = v
	return nil
}
