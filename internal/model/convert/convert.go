// Package convert maps beatmap records to and from their database models.
package convert

import (
	"sort"

	"github.com/levelforge/beatmap/internal/model"
	"github.com/levelforge/beatmap/pkg/beatmap"
	"gorm.io/datatypes"
)

// ToLevel converts a beatmap and its wire form to a Level row.
func ToLevel(b *beatmap.Beatmap, wire []byte) model.Level {
	l := model.Level{
		LevelID:          b.LevelID,
		Name:             b.Name,
		SongName:         b.SongName,
		SongSubName:      b.SongSubName,
		SongAuthorName:   b.SongAuthorName,
		LevelAuthorName:  b.LevelAuthor,
		Enabled:          b.EnabledFlag,
		GameObject:       datatypes.NewJSONType(b.GameObject),
		Script:           datatypes.NewJSONType(b.Script),
		AudioClip:        datatypes.NewJSONType(b.AudioClip),
		CoverImage:       datatypes.NewJSONType(b.CoverImage),
		EnvironmentScene: datatypes.NewJSONType(b.EnvironmentScene),
		BeatsPerMinute:   b.BeatsPerMinute,
		SongTimeOffset:   b.SongTimeOffset,
		Shuffle:          b.Shuffle,
		ShufflePeriod:    b.ShufflePeriod,
		PreviewStartTime: b.PreviewStartTime,
		PreviewDuration:  b.PreviewDuration,
		DifficultyCount:  b.DifficultyBeatmapSets.Size,
		Difficulties:     make([]model.Difficulty, 0, len(b.DifficultyBeatmapSets.Array)),
		Wire:             wire,
	}

	for i, d := range b.DifficultyBeatmapSets.Array {
		l.Difficulties = append(l.Difficulties, model.Difficulty{
			Position:       i,
			Difficulty:     d.Difficulty,
			Rank:           d.Rank,
			NoteJumpSpeed:  d.NoteJumpSpeed,
			NoteJumpOffset: d.NoteJumpOffset,
			BeatmapData:    datatypes.NewJSONType(d.BeatmapData),
		})
	}

	return l
}

// FromLevel rebuilds a beatmap from a Level row. Difficulties are ordered by
// Position regardless of the order they were loaded in.
func FromLevel(l model.Level) *beatmap.Beatmap {
	diffs := append([]model.Difficulty(nil), l.Difficulties...)
	sort.SliceStable(diffs, func(i, j int) bool { return diffs[i].Position < diffs[j].Position })

	list := beatmap.DifficultyList{
		Array: make([]beatmap.Difficulty, 0, len(diffs)),
		Size:  l.DifficultyCount,
	}
	for _, d := range diffs {
		list.Array = append(list.Array, beatmap.Difficulty{
			Difficulty:     d.Difficulty,
			Rank:           d.Rank,
			NoteJumpSpeed:  d.NoteJumpSpeed,
			NoteJumpOffset: d.NoteJumpOffset,
			BeatmapData:    d.BeatmapData.Data(),
		})
	}

	return &beatmap.Beatmap{
		GameObject:            l.GameObject.Data(),
		Script:                l.Script.Data(),
		EnabledFlag:           l.Enabled,
		Name:                  l.Name,
		LevelID:               l.LevelID,
		SongName:              l.SongName,
		SongSubName:           l.SongSubName,
		SongAuthorName:        l.SongAuthorName,
		LevelAuthor:           l.LevelAuthorName,
		AudioClip:             l.AudioClip.Data(),
		CoverImage:            l.CoverImage.Data(),
		EnvironmentScene:      l.EnvironmentScene.Data(),
		BeatsPerMinute:        l.BeatsPerMinute,
		SongTimeOffset:        l.SongTimeOffset,
		Shuffle:               l.Shuffle,
		ShufflePeriod:         l.ShufflePeriod,
		PreviewStartTime:      l.PreviewStartTime,
		PreviewDuration:       l.PreviewDuration,
		DifficultyBeatmapSets: list,
	}
}
