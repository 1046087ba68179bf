// Package otf2 is the archive facade over the trace format's chunked,
// per-location record streams (spec.md §1): it owns the archive-wide
// clock properties and chunk-size configuration, and the collection of
// open per-location readers and writers, opened and closed as a unit.
package otf2

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/tracefmt/otf2go/defs"
	"github.com/tracefmt/otf2go/idref"
	"github.com/tracefmt/otf2go/mapping"
	"github.com/tracefmt/otf2go/record"
	"github.com/tracefmt/otf2go/trace"
)

const defaultChunkSize = 1 << 20 // 1 MiB, the teacher's section-buffer default order of magnitude

// Archive is the root handle over a trace: its clock properties, its
// chunk-size budget, and every per-location stream opened against it.
// The zero value is not usable; construct with Open.
type Archive struct {
	chunkSize int
	clock     record.ClockProperties
	logger    *zap.Logger

	readers map[idref.LocationRef]*trace.EventReader
	writers map[idref.LocationRef]*trace.EventWriter
	ctxs    map[idref.LocationRef]*mapping.Context

	closed bool
}

// OpenOption configures an Archive at Open time.
type OpenOption func(*Archive)

// WithChunkSize overrides the default per-chunk byte budget used by any
// writer this Archive creates.
func WithChunkSize(n int) OpenOption {
	return func(a *Archive) { a.chunkSize = n }
}

// WithClockProperties installs the archive-wide timer resolution, global
// offset, and trace length (spec.md §4.8).
func WithClockProperties(cp record.ClockProperties) OpenOption {
	return func(a *Archive) { a.clock = cp }
}

// WithLogger installs a structured logger; Open uses zap.NewNop() if
// none is supplied.
func WithLogger(l *zap.Logger) OpenOption {
	return func(a *Archive) { a.logger = l }
}

// Open creates an Archive ready to have locations registered against it.
func Open(opts ...OpenOption) (*Archive, error) {
	a := &Archive{
		chunkSize: defaultChunkSize,
		readers:   make(map[idref.LocationRef]*trace.EventReader),
		writers:   make(map[idref.LocationRef]*trace.EventWriter),
		ctxs:      make(map[idref.LocationRef]*mapping.Context),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = zap.NewNop()
	}
	a.logger.Debug("otf2: archive opened", zap.Int("chunk_size", a.chunkSize))
	return a, nil
}

// ClockProperties returns the archive-wide clock properties installed at
// Open, or via SetClockProperties.
func (a *Archive) ClockProperties() record.ClockProperties { return a.clock }

// SetClockProperties updates the archive-wide clock properties, used by
// a writer once the trace's span is known (spec.md §4.8).
func (a *Archive) SetClockProperties(cp record.ClockProperties) { a.clock = cp }

// OpenLocationReader registers a location's chunk source and returns an
// EventReader over it, building a fresh mapping.Context for that
// location's identifier and clock translation (spec.md §4.5).
func (a *Archive) OpenLocationReader(loc idref.LocationRef, src trace.ChunkSource) (*trace.EventReader, error) {
	if a.closed {
		return nil, newError("OpenLocationReader", ErrCodeClosed, nil)
	}
	if _, exists := a.readers[loc]; exists {
		return nil, newError("OpenLocationReader", ErrCodeInvalidInput, nil)
	}
	ctx := mapping.NewContext()
	r := trace.NewEventReader(loc, src, ctx)
	a.readers[loc] = r
	a.ctxs[loc] = ctx
	return r, nil
}

// OpenLocationWriter registers a location's chunk sink and returns an
// EventWriter over it, using the Archive's configured chunk size.
func (a *Archive) OpenLocationWriter(loc idref.LocationRef, sink trace.ChunkSink) (*trace.EventWriter, error) {
	if a.closed {
		return nil, newError("OpenLocationWriter", ErrCodeClosed, nil)
	}
	if _, exists := a.writers[loc]; exists {
		return nil, newError("OpenLocationWriter", ErrCodeInvalidInput, nil)
	}
	w := trace.NewEventWriter(loc, sink, a.chunkSize)
	a.writers[loc] = w
	return w, nil
}

// OpenDefinitionReader returns a defs.Reader over the archive's
// global-definitions stream.
func (a *Archive) OpenDefinitionReader(src trace.ChunkSource) (*defs.Reader, error) {
	if a.closed {
		return nil, newError("OpenDefinitionReader", ErrCodeClosed, nil)
	}
	return defs.NewReader(src), nil
}

// OpenDefinitionWriter returns a defs.Writer over the archive's
// global-definitions stream, using the Archive's configured chunk size.
func (a *Archive) OpenDefinitionWriter(sink trace.ChunkSink) (*defs.Writer, error) {
	if a.closed {
		return nil, newError("OpenDefinitionWriter", ErrCodeClosed, nil)
	}
	return defs.NewWriter(sink, a.chunkSize), nil
}

// MappingContext returns the mapping.Context built for loc by
// OpenLocationReader, letting a caller preload mapping tables or clock
// samples obtained from a separate per-location-definitions pass.
func (a *Archive) MappingContext(loc idref.LocationRef) (*mapping.Context, bool) {
	ctx, ok := a.ctxs[loc]
	return ctx, ok
}

// Locations reports every location currently registered for reading.
func (a *Archive) Locations() []idref.LocationRef {
	out := make([]idref.LocationRef, 0, len(a.readers))
	for loc := range a.readers {
		out = append(out, loc)
	}
	return out
}

// Close closes every open writer, aggregating failures rather than
// stopping at the first (spec.md: every location's stream must be given
// a chance to flush, even if a sibling fails). Readers have no close-time
// work (their ChunkSource is owned by the caller) and are simply
// forgotten.
func (a *Archive) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true

	var err error
	for loc, w := range a.writers {
		if cerr := w.Close(); cerr != nil {
			a.logger.Warn("otf2: error closing location writer", zap.Uint64("location", uint64(loc)), zap.Error(cerr))
			err = multierr.Append(err, newError("Close", classify(cerr), cerr))
		}
	}
	a.readers = nil
	a.writers = nil
	a.ctxs = nil
	return err
}
