// internal/storage/memory/export.go
package memory

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/levelforge/beatmap/pkg/beatmap"
)

// exportAll writes each stored beatmap to its own JSON file, gzipped when
// CompressOutput is set. Caller must hold b.mu.
func (b *Backend) exportAll() error {
	if len(b.order) == 0 {
		return nil
	}

	// Ensure output directory exists
	if err := os.MkdirAll(b.cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	b.exported = b.exported[:0]
	for _, key := range b.order {
		filename := key + ".json"
		if b.cfg.CompressOutput {
			filename += ".gz"
		}
		outputPath := filepath.Join(b.cfg.OutputDir, filename)

		var err error
		if b.cfg.CompressOutput {
			err = b.writeGzipJSON(outputPath, b.levels[key])
		} else {
			err = b.writeJSON(outputPath, b.levels[key])
		}
		if err != nil {
			return err
		}
		b.exported = append(b.exported, outputPath)
	}

	return nil
}

func (b *Backend) writeJSON(path string, data *beatmap.Beatmap) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

func (b *Backend) writeGzipJSON(path string, data *beatmap.Beatmap) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	gzWriter := gzip.NewWriter(f)
	encoder := json.NewEncoder(gzWriter)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := gzWriter.Close(); err != nil {
		return fmt.Errorf("failed to finish gzip stream: %w", err)
	}
	return f.Close()
}
