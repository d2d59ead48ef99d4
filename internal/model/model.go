package model

import (
	"time"

	"github.com/levelforge/beatmap/pkg/beatmap"
	"gorm.io/datatypes"
)

////////////////////////
// DATABASE STRUCTURES //
////////////////////////

// DatabaseModels is a list of all the structs exported here which represent tables in the database schema
var DatabaseModels = []interface{}{
	&Level{},
	&Difficulty{},
}

// Pointer is a beatmap cross-reference stored as a JSON column.
type Pointer = datatypes.JSONType[beatmap.Pointer]

// Level is one archived beatmap record. LevelID is unique; archiving the
// same level again replaces the row.
type Level struct {
	ID        uint      `json:"id" gorm:"primarykey;autoIncrement;"`
	CreatedAt time.Time `json:"createdAt" gorm:"NOT NULL;"`
	UpdatedAt time.Time `json:"updatedAt"`

	LevelID         string `json:"levelId" gorm:"size:255;uniqueIndex;NOT NULL"`
	Name            string `json:"name" gorm:"size:255"`
	SongName        string `json:"songName" gorm:"size:255;index"`
	SongSubName     string `json:"songSubName" gorm:"size:255"`
	SongAuthorName  string `json:"songAuthorName" gorm:"size:255;index"`
	LevelAuthorName string `json:"levelAuthorName" gorm:"size:255;index"`
	Enabled         uint32 `json:"enabled"`

	GameObject       Pointer `json:"gameObject"`
	Script           Pointer `json:"script"`
	AudioClip        Pointer `json:"audioClip"`
	CoverImage       Pointer `json:"coverImage"`
	EnvironmentScene Pointer `json:"environmentScene"`

	BeatsPerMinute   float32 `json:"beatsPerMinute"`
	SongTimeOffset   float32 `json:"songTimeOffset"`
	Shuffle          float32 `json:"shuffle"`
	ShufflePeriod    float32 `json:"shufflePeriod"`
	PreviewStartTime float32 `json:"previewStartTime"`
	PreviewDuration  float32 `json:"previewDuration"`

	DifficultyCount uint32       `json:"difficultyCount"`
	Difficulties    []Difficulty `json:"difficulties" gorm:"foreignKey:LevelRowID;constraint:OnDelete:CASCADE;"`

	// Wire is the encoded record as it was archived.
	Wire []byte `json:"-"`
}

// TableName returns the table name for Level.
func (*Level) TableName() string {
	return "levels"
}

// Difficulty is one entry of a level's difficulty list. Position keeps the
// list order.
type Difficulty struct {
	ID             uint    `json:"id" gorm:"primarykey;autoIncrement;"`
	LevelRowID     uint    `json:"levelRowId" gorm:"index:idx_difficulty_level_position,priority:1;NOT NULL"`
	Position       int     `json:"position" gorm:"index:idx_difficulty_level_position,priority:2"`
	Difficulty     int32   `json:"difficulty"`
	Rank           int32   `json:"rank"`
	NoteJumpSpeed  float32 `json:"noteJumpSpeed"`
	NoteJumpOffset int32   `json:"noteJumpOffset"`
	BeatmapData    Pointer `json:"beatmapData"`
}

// TableName returns the table name for Difficulty.
func (*Difficulty) TableName() string {
	return "difficulties"
}
