// Package convert turns binary beatmap records into JSON documents and back.
package convert

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/levelforge/beatmap/internal/storage"
	"github.com/levelforge/beatmap/pkg/beatmap"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ErrTrailingData is returned by FromJSON when input continues after the
// document.
var ErrTrailingData = errors.New("trailing characters after document")

// Mode names a conversion direction.
type Mode string

const (
	ModeToJSON   Mode = "to_json"
	ModeFromJSON Mode = "from_json"
)

// Options configure a Converter.
type Options struct {
	// Indent is the per-level indent of emitted documents.
	Indent  string
	Padding beatmap.Padding
	// Archive, when set, receives every converted beatmap.
	Archive storage.Backend
	Logger  *slog.Logger
}

// Converter runs conversions between the binary and JSON forms.
type Converter struct {
	opts Options
	in   *instruments
}

// New creates a Converter.
func New(opts Options) (*Converter, error) {
	in, err := newInstruments()
	if err != nil {
		return nil, fmt.Errorf("failed to create instruments: %w", err)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Converter{opts: opts, in: in}, nil
}

// Run dispatches to ToJSON or FromJSON by mode.
func (c *Converter) Run(ctx context.Context, mode Mode, r io.Reader, w io.Writer) error {
	var err error
	switch mode {
	case ModeToJSON:
		_, err = c.ToJSON(ctx, r, w)
	case ModeFromJSON:
		_, err = c.FromJSON(ctx, r, w)
	default:
		err = fmt.Errorf("unknown mode %q", mode)
	}
	return err
}

// ToJSON decodes one binary record from r and writes its JSON document to w.
// Nothing is written when decoding fails.
func (c *Converter) ToJSON(ctx context.Context, r io.Reader, w io.Writer) (*beatmap.Beatmap, error) {
	b, err := c.toJSON(ctx, r, w)
	c.record(ctx, ModeToJSON, err)
	return b, err
}

func (c *Converter) toJSON(ctx context.Context, r io.Reader, w io.Writer) (*beatmap.Beatmap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	c.in.bytes.Record(ctx, int64(len(data)), metric.WithAttributes(modeAttr(ModeToJSON)))

	b, err := beatmap.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode beatmap: %w", err)
	}

	doc, err := json.MarshalIndent(b, "", c.opts.Indent)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	if err := c.archive(b, data); err != nil {
		return nil, err
	}

	if _, err := w.Write(doc); err != nil {
		return nil, fmt.Errorf("failed to write document: %w", err)
	}

	c.opts.Logger.Debug("Converted beatmap to JSON",
		"levelId", b.LevelID,
		"inputBytes", len(data),
		"difficulties", len(b.DifficultyBeatmapSets.Array))
	return b, nil
}

// FromJSON reads one JSON document from r and writes its binary record to w.
// Nothing is written when the document is invalid or cannot be encoded.
func (c *Converter) FromJSON(ctx context.Context, r io.Reader, w io.Writer) (*beatmap.Beatmap, error) {
	b, err := c.fromJSON(ctx, r, w)
	c.record(ctx, ModeFromJSON, err)
	return b, err
}

func (c *Converter) fromJSON(ctx context.Context, r io.Reader, w io.Writer) (*beatmap.Beatmap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(r)
	var b beatmap.Beatmap
	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, ErrTrailingData
	}

	var buf bytes.Buffer
	if err := b.WriteWith(&buf, beatmap.Options{Padding: c.opts.Padding}); err != nil {
		return nil, fmt.Errorf("failed to encode beatmap: %w", err)
	}
	c.in.bytes.Record(ctx, int64(buf.Len()), metric.WithAttributes(modeAttr(ModeFromJSON)))

	if err := c.archive(&b, buf.Bytes()); err != nil {
		return nil, err
	}

	n, err := buf.WriteTo(w)
	if err != nil {
		return nil, fmt.Errorf("failed to write beatmap: %w", err)
	}

	c.opts.Logger.Debug("Converted JSON to beatmap",
		"levelId", b.LevelID,
		"outputBytes", n,
		"padding", c.opts.Padding.String())
	return &b, nil
}

func (c *Converter) archive(b *beatmap.Beatmap, wire []byte) error {
	if c.opts.Archive == nil {
		return nil
	}
	if err := c.opts.Archive.Store(b, wire); err != nil {
		return fmt.Errorf("failed to archive %q: %w", b.LevelID, err)
	}
	return nil
}

func (c *Converter) record(ctx context.Context, mode Mode, err error) {
	attrs := metric.WithAttributes(modeAttr(mode))
	if err != nil {
		c.in.failures.Add(ctx, 1, attrs)
		c.opts.Logger.Error("Conversion failed", "mode", string(mode), "error", err)
		return
	}
	c.in.conversions.Add(ctx, 1, attrs)
}

func modeAttr(mode Mode) attribute.KeyValue {
	return attribute.String("mode", string(mode))
}
