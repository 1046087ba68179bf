// Package chunk implements the trace format's byte-level wire
// encoding: a chunked, cursor-based reader/writer over compressed and
// fixed-width integers, IEEE-754 floats, and the two in-band sentinels
// that terminate a chunk (EndOfChunk) or a stream (EndOfFile).
package chunk

import (
	"encoding/binary"
	"math"
)

// Reserved record-type tag values. Every other tag belongs to the record
// catalog (package record).
const (
	EndOfChunk byte = 0xFE
	EndOfFile  byte = 0xFF
)

// Reader decodes primitives from a single resident chunk of bytes. It does
// not itself fetch new chunks: that is the caller's job (rebinding it with
// Reset), driven by observing an EndOfChunk record-type byte. A Reader that runs out of
// bytes mid-field reports ErrUnderrun; per the format's contract, a
// truncated stream is a read error, never a silently accepted short read.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps a fully loaded chunk's bytes for decoding.
func NewReader(data []byte) *Reader {
	return &Reader{buf: data}
}

// Reset rebinds the reader to a new chunk and resets the cursor, reusing
// the Reader value across chunk boundaries.
func (r *Reader) Reset(data []byte) {
	r.buf = data
	r.pos = 0
}

// GetPosition returns an opaque cursor value that can later be restored
// with SetPosition, used to skip past unknown trailing fields of a
// forward-compatible record.
func (r *Reader) GetPosition() int { return r.pos }

// SetPosition restores a cursor previously obtained from GetPosition.
func (r *Reader) SetPosition(p int) { r.pos = p }

// Remaining reports how many bytes are left in the current chunk.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

// Guarantee ensures n bytes are resident at the current position, or
// returns ErrUnderrun. It never advances the chunk-load boundary: the
// caller must react to EndOfChunk itself and supply a new chunk via Reset.
func (r *Reader) Guarantee(n int) error {
	if r.Remaining() < n {
		return ErrUnderrun
	}
	return nil
}

// GuaranteeCompressed ensures one full compressed primitive of the given
// declared width (2, 4, or 8 bytes) is resident, without consuming it.
func (r *Reader) GuaranteeCompressed(width int) error {
	if err := r.Guarantee(1); err != nil {
		return err
	}
	l := int(r.buf[r.pos])
	if l > width {
		return ErrBadCompression
	}
	return r.Guarantee(1 + l)
}

// GuaranteeRecord ensures a compressed record_data_length prefix is
// resident, consumes it, and ensures that many payload bytes are
// resident. It returns the end-of-record cursor position so the caller
// can unconditionally seek there once done decoding known fields,
// regardless of how many of them it actually understood.
func (r *Reader) GuaranteeRecord() (endPos int, dataLen uint64, err error) {
	if err := r.GuaranteeCompressed(8); err != nil {
		return 0, 0, err
	}
	n, err := r.ReadU64()
	if err != nil {
		return 0, 0, err
	}
	if err := r.Guarantee(int(n)); err != nil {
		return 0, 0, err
	}
	return r.pos + int(n), n, nil
}

// PeekTime reads the next 8 bytes as a big-endian timestamp without
// advancing the cursor, letting a caller (typically the global merger)
// inspect an upcoming timestamp before committing to decode the record.
func (r *Reader) PeekTime() (uint64, error) {
	if err := r.Guarantee(8); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(r.buf[r.pos : r.pos+8]), nil
}

// ReadRecordType consumes one byte and returns it unexamined; the caller
// is responsible for checking it against EndOfChunk, EndOfFile, or the
// record catalog.
func (r *Reader) ReadRecordType() (byte, error) {
	if err := r.Guarantee(1); err != nil {
		return 0, err
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// ReadTimestampFull reads a fixed-width big-endian 64-bit timestamp, the
// framing used for every event record's leading time field.
func (r *Reader) ReadTimestampFull() (uint64, error) {
	return r.ReadU64Full()
}

// ReadU8 reads a single uninterpreted byte.
func (r *Reader) ReadU8() (uint8, error) {
	if err := r.Guarantee(1); err != nil {
		return 0, err
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// ReadU16 reads a compressed 16-bit unsigned integer.
func (r *Reader) ReadU16() (uint16, error) {
	x, n, err := takeCompressed(r.buf[r.pos:], 2)
	if err != nil {
		return 0, err
	}
	r.pos += n
	return uint16(x), nil
}

// ReadU32 reads a compressed 32-bit unsigned integer.
func (r *Reader) ReadU32() (uint32, error) {
	x, n, err := takeCompressed(r.buf[r.pos:], 4)
	if err != nil {
		return 0, err
	}
	r.pos += n
	return uint32(x), nil
}

// ReadU64 reads a compressed 64-bit unsigned integer.
func (r *Reader) ReadU64() (uint64, error) {
	x, n, err := takeCompressed(r.buf[r.pos:], 8)
	if err != nil {
		return 0, err
	}
	r.pos += n
	return x, nil
}

// ReadI64 reads a zig-zag compressed signed 64-bit integer.
func (r *Reader) ReadI64() (int64, error) {
	x, n, err := takeCompressed(r.buf[r.pos:], 8)
	if err != nil {
		return 0, err
	}
	r.pos += n
	return unzigzag(x), nil
}

// ReadU16Full, ReadU32Full, ReadU64Full read fixed-width big-endian
// integers, used where a record's framing needs a stable interpretation
// independent of runtime value (notably the record_data_length prefix's
// on-wire cousins used by writers that pre-reserve space).
func (r *Reader) ReadU16Full() (uint16, error) {
	if err := r.Guarantee(2); err != nil {
		return 0, err
	}
	x := binary.BigEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return x, nil
}

func (r *Reader) ReadU32Full() (uint32, error) {
	if err := r.Guarantee(4); err != nil {
		return 0, err
	}
	x := binary.BigEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return x, nil
}

func (r *Reader) ReadU64Full() (uint64, error) {
	if err := r.Guarantee(8); err != nil {
		return 0, err
	}
	x := binary.BigEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return x, nil
}

// ReadF32 reads a fixed big-endian IEEE-754 single-precision float.
func (r *Reader) ReadF32() (float32, error) {
	x, err := r.ReadU32Full()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(x), nil
}

// ReadF64 reads a fixed big-endian IEEE-754 double-precision float.
func (r *Reader) ReadF64() (float64, error) {
	x, err := r.ReadU64Full()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(x), nil
}

// ReadBytes copies the next n bytes verbatim.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.Guarantee(n); err != nil {
		return nil, err
	}
	b := make([]byte, n)
	copy(b, r.buf[r.pos:r.pos+n])
	r.pos += n
	return b, nil
}

// ReadString reads a NUL-terminated string, the on-wire form for every
// String-domain identifier's backing text in the global-definitions
// stream.
func (r *Reader) ReadString() (string, error) {
	for i := r.pos; i < len(r.buf); i++ {
		if r.buf[i] == 0 {
			s := string(r.buf[r.pos:i])
			r.pos = i + 1
			return s, nil
		}
	}
	return "", ErrUnderrun
}
