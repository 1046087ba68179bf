package chunk

import (
	"encoding/binary"
	"math"
)

// Writer accumulates one chunk's worth of encoded bytes, tracking a
// per-chunk byte budget and emitting an EndOfChunk sentinel on Flush.
// Mirrors Reader's primitive set byte-for-byte.
type Writer struct {
	buf       []byte
	chunkSize int
}

// NewWriter creates a Writer with a budget of chunkSize bytes (the
// sentinel byte counts against the budget). The Writer never flushes by
// itself: callers check Fits and call Flush.
func NewWriter(chunkSize int) *Writer {
	return &Writer{buf: make([]byte, 0, chunkSize), chunkSize: chunkSize}
}

// Len reports the number of bytes written to the current chunk so far,
// not including the eventual EndOfChunk/EndOfFile sentinel.
func (w *Writer) Len() int { return len(w.buf) }

// Fits reports whether n additional bytes can be written before the chunk
// must be flushed (reserving one byte for the eventual sentinel).
func (w *Writer) Fits(n int) bool {
	return len(w.buf)+n+1 <= w.chunkSize
}

// Bytes returns the chunk's contents written so far, without the
// terminating sentinel.
func (w *Writer) Bytes() []byte { return w.buf }

// Reset clears the writer for reuse as the next chunk.
func (w *Writer) Reset() { w.buf = w.buf[:0] }

// WriteRecordType appends a single, uncompressed record-type tag byte.
func (w *Writer) WriteRecordType(tag byte) { w.buf = append(w.buf, tag) }

// WriteU8 appends a single uninterpreted byte.
func (w *Writer) WriteU8(x uint8) { w.buf = append(w.buf, x) }

// WriteU16 appends a compressed 16-bit unsigned integer.
func (w *Writer) WriteU16(x uint16) { w.buf = appendCompressed(w.buf, uint64(x), 2) }

// WriteU32 appends a compressed 32-bit unsigned integer.
func (w *Writer) WriteU32(x uint32) { w.buf = appendCompressed(w.buf, uint64(x), 4) }

// WriteU64 appends a compressed 64-bit unsigned integer.
func (w *Writer) WriteU64(x uint64) { w.buf = appendCompressed(w.buf, x, 8) }

// WriteI64 appends a zig-zag compressed signed 64-bit integer.
func (w *Writer) WriteI64(x int64) { w.buf = appendCompressed(w.buf, zigzag(x), 8) }

// WriteU16Full, WriteU32Full, WriteU64Full append fixed-width big-endian
// integers.
func (w *Writer) WriteU16Full(x uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], x)
	w.buf = append(w.buf, b[:]...)
}

func (w *Writer) WriteU32Full(x uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], x)
	w.buf = append(w.buf, b[:]...)
}

func (w *Writer) WriteU64Full(x uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], x)
	w.buf = append(w.buf, b[:]...)
}

// WriteTimestampFull writes the fixed-width timestamp leading every event
// record.
func (w *Writer) WriteTimestampFull(ts uint64) { w.WriteU64Full(ts) }

// WriteF32, WriteF64 append fixed big-endian IEEE-754 floats.
func (w *Writer) WriteF32(f float32) { w.WriteU32Full(math.Float32bits(f)) }
func (w *Writer) WriteF64(f float64) { w.WriteU64Full(math.Float64bits(f)) }

// WriteBytes appends raw bytes verbatim.
func (w *Writer) WriteBytes(b []byte) { w.buf = append(w.buf, b...) }

// WriteString appends a NUL-terminated string.
func (w *Writer) WriteString(s string) {
	w.buf = append(w.buf, s...)
	w.buf = append(w.buf, 0)
}

// ReserveRecordLength reserves space for a compressed record_data_length
// prefix sized for the worst case (9 bytes: 1 length byte + 8 magnitude
// bytes) and returns its offset, to be patched by PatchRecordLength once
// the payload has been written. Using a fixed-width placeholder avoids
// needing to buffer the payload separately just to learn its length.
func (w *Writer) ReserveRecordLength() int {
	off := len(w.buf)
	w.buf = append(w.buf, make([]byte, 9)...)
	return off
}

// PatchRecordLength fills in a length prefix reserved by
// ReserveRecordLength now that the payload ending at the current write
// position is known. It always emits the full 9-byte form (L=8) so the
// reserved space is never resized, keeping every other offset in the
// chunk stable.
func (w *Writer) PatchRecordLength(off int) {
	payloadLen := uint64(len(w.buf) - off - 9)
	w.buf[off] = 8
	binary.BigEndian.PutUint64(w.buf[off+1:off+9], payloadLen)
}

// Flush appends the EndOfChunk sentinel and returns the finished chunk's
// bytes, ready to be handed to the archive's chunk pool; the writer is
// reset and ready to accumulate the next chunk.
func (w *Writer) Flush() []byte {
	w.buf = append(w.buf, EndOfChunk)
	out := make([]byte, len(w.buf))
	copy(out, w.buf)
	w.Reset()
	return out
}

// Close appends the EndOfFile sentinel (instead of EndOfChunk) and
// returns the finished chunk's bytes; called once, on the last chunk of
// a stream.
func (w *Writer) Close() []byte {
	w.buf = append(w.buf, EndOfFile)
	out := make([]byte, len(w.buf))
	copy(out, w.buf)
	w.Reset()
	return out
}
