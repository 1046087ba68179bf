package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressedRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 255, 256, 65535, 1 << 20, 1<<32 - 1, 1 << 40, 1<<64 - 1}
	for _, v := range values {
		w := NewWriter(4096)
		w.WriteU64(v)
		r := NewReader(w.Bytes())
		got, err := r.ReadU64()
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestCompressedZeroIsOneByte(t *testing.T) {
	w := NewWriter(4096)
	w.WriteU64(0)
	assert.Equal(t, []byte{0}, w.Bytes())
}

func TestZigZagRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 127, -128, 1 << 40, -(1 << 40)}
	for _, v := range values {
		w := NewWriter(4096)
		w.WriteI64(v)
		r := NewReader(w.Bytes())
		got, err := r.ReadI64()
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestReadU32RejectsOversizedCompression(t *testing.T) {
	// length byte declares 8 magnitude bytes in a 4-byte-wide field.
	r := NewReader([]byte{8, 0, 0, 0, 0, 0, 0, 0, 1})
	_, err := r.ReadU32()
	assert.ErrorIs(t, err, ErrBadCompression)
}

func TestReadUnderrunOnTruncatedStream(t *testing.T) {
	// length byte claims 4 magnitude bytes, only 2 are present.
	r := NewReader([]byte{4, 1, 2})
	_, err := r.ReadU32()
	assert.ErrorIs(t, err, ErrUnderrun)
}

func TestGuaranteeRecordReturnsEndPosForSkipping(t *testing.T) {
	w := NewWriter(4096)
	off := w.ReserveRecordLength()
	w.WriteU32(42)
	w.WriteString("trailing field a future reader understands")
	w.PatchRecordLength(off)

	r := NewReader(w.Bytes())
	endPos, dataLen, err := r.GuaranteeRecord()
	require.NoError(t, err)
	assert.Equal(t, len(w.Bytes()), endPos)
	assert.EqualValues(t, dataLen, endPos-r.GetPosition())

	// A reader understanding only the first field skips the rest via endPos.
	got, err := r.ReadU32()
	require.NoError(t, err)
	assert.EqualValues(t, 42, got)
	r.SetPosition(endPos)
	assert.Equal(t, 0, r.Remaining())
}

func TestFlushAppendsEndOfChunkSentinel(t *testing.T) {
	w := NewWriter(8)
	w.WriteU8(1)
	data := w.Flush()
	assert.Equal(t, EndOfChunk, data[len(data)-1])

	r := NewReader(data)
	got, err := r.ReadU8()
	require.NoError(t, err)
	assert.EqualValues(t, 1, got)
	tag, err := r.ReadRecordType()
	require.NoError(t, err)
	assert.Equal(t, EndOfChunk, tag)
}

func TestEndOfFileSentinelOnFinalChunk(t *testing.T) {
	w := NewWriter(4096)
	w.WriteU8(7)
	data := w.Close()
	assert.Equal(t, EndOfFile, data[len(data)-1])

	r := NewReader(data)
	_, err := r.ReadU8()
	require.NoError(t, err)
	tag, err := r.ReadRecordType()
	require.NoError(t, err)
	assert.Equal(t, EndOfFile, tag)
}
