// internal/storage/storage.go
package storage

import "github.com/levelforge/beatmap/pkg/beatmap"

// Backend is the interface all archive implementations must satisfy
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// Store archives b together with wire, the binary record that was read
	// or written for it. A nil wire is re-encoded from b. Archiving a level
	// with the same level id again replaces the earlier copy.
	Store(b *beatmap.Beatmap, wire []byte) error
}

// Exporter is an optional interface for backends that write files.
type Exporter interface {
	ExportedPaths() []string
}
