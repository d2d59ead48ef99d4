// internal/storage/memory/memory.go
package memory

import (
	"slices"
	"sync"

	"github.com/levelforge/beatmap/internal/config"
	"github.com/levelforge/beatmap/internal/util"
	"github.com/levelforge/beatmap/pkg/beatmap"
)

// Backend keeps archived beatmaps in memory and exports them as JSON
// documents when closed.
type Backend struct {
	cfg config.MemoryConfig

	levels map[string]*beatmap.Beatmap // keyed by file base name
	order  []string

	exported []string
	mu       sync.Mutex
}

// New creates a new memory backend
func New(cfg config.MemoryConfig) *Backend {
	return &Backend{
		cfg:    cfg,
		levels: make(map[string]*beatmap.Beatmap),
	}
}

// Init initializes the backend
func (b *Backend) Init() error {
	return nil
}

// Close exports every stored beatmap.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.exportAll()
}

// Store copies bm into the backend. Exports are JSON documents, so wire is
// not kept.
func (b *Backend) Store(bm *beatmap.Beatmap, _ []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := fileBase(bm)
	if _, ok := b.levels[key]; !ok {
		b.order = append(b.order, key)
	}

	c := *bm
	c.DifficultyBeatmapSets.Array = slices.Clone(bm.DifficultyBeatmapSets.Array)
	b.levels[key] = &c
	return nil
}

// Len returns the number of distinct levels stored.
func (b *Backend) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.levels)
}

// ExportedPaths returns the files written by the last Close.
func (b *Backend) ExportedPaths() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.exported)
}

func fileBase(bm *beatmap.Beatmap) string {
	name := bm.LevelID
	if name == "" {
		name = bm.Name
	}
	return util.SanitizeFileName(name, "beatmap")
}
