package chunk

import "errors"

// ErrUnderrun is returned when a read or guarantee call needs more bytes
// than the current chunk can supply. Reader never fetches another chunk
// itself; the stream readers in trace and defs load the next chunk when
// reading a record-type byte hits ErrUnderrun.
var ErrUnderrun = errors.New("chunk: buffer underrun")

// ErrBadCompression is returned when a compressed integer's length byte
// exceeds the declared width of the field being decoded.
var ErrBadCompression = errors.New("chunk: invalid compression size")

// ErrChunkFull reports that a write would overflow the configured chunk
// size. No function in this package returns it: Writer never refuses a
// write, and callers check Writer.Fits before writing.
var ErrChunkFull = errors.New("chunk: write would overflow chunk size")
