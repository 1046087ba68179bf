package otf2

import (
	"errors"
	"fmt"

	"github.com/tracefmt/otf2go/chunk"
	"github.com/tracefmt/otf2go/mapping"
)

// ErrorCode categorizes a trace-library failure, grounded on the same
// string-code taxonomy style used for storage errors elsewhere in this
// ecosystem (base failure category, plus domain-specific refinements).
type ErrorCode string

const (
	// ErrCodeIO covers failures reading or writing the underlying chunk
	// storage (file, network, or in-memory source/sink).
	ErrCodeIO ErrorCode = "IO_ERROR"

	// ErrCodeFormat covers malformed trace data: a record whose framing,
	// compressed-integer encoding, or string termination does not match
	// the wire contract.
	ErrCodeFormat ErrorCode = "FORMAT_ERROR"

	// ErrCodeMapping covers a missing identifier-mapping entry for a
	// domain that does have an installed mapping table.
	ErrCodeMapping ErrorCode = "MAPPING_ERROR"

	// ErrCodeClosed is returned by an Archive's OpenLocationReader,
	// OpenLocationWriter, OpenDefinitionReader and OpenDefinitionWriter
	// after Close. Stream handles do not report it.
	ErrCodeClosed ErrorCode = "CLOSED"

	// ErrCodeInvalidInput covers caller errors: bad configuration,
	// out-of-range identifiers, or operations invoked out of sequence.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Error is the taxonomy every operation in this package returns on
// failure: a stable Code for programmatic handling, the Op that failed,
// and the underlying cause.
type Error struct {
	Code ErrorCode
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("otf2: %s: %s: %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("otf2: %s: %s", e.Op, e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(op string, code ErrorCode, err error) *Error {
	return &Error{Code: code, Op: op, Err: err}
}

// classify maps a lower-level package's own sentinel error to the
// ErrorCode it represents in spec.md §7's taxonomy, for call sites (like
// Close, which aggregates per-location writer failures) that only learn
// of the failure after it has already crossed a package boundary. A
// cause without a recognized mapping is classified as I/O, since that is
// the only failure category a facade-level method can default to without
// mis-describing it as a caller mistake.
func classify(err error) ErrorCode {
	var mappingErr *mapping.ErrMappingNotFound
	if errors.As(err, &mappingErr) {
		return ErrCodeMapping
	}
	if errors.Is(err, chunk.ErrUnderrun) || errors.Is(err, chunk.ErrBadCompression) {
		return ErrCodeFormat
	}
	return ErrCodeIO
}
