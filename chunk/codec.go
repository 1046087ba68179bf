package chunk

// Compressed integer codec shared by Reader and Writer.
//
// Wire form for an unsigned value of declared width W bytes (2, 4, or 8):
// one length byte L in [0, W] followed by L big-endian bytes holding the
// value's minimal big-endian representation. The value zero is therefore
// one byte total (L == 0, no magnitude bytes). Signed 64-bit values are
// zig-zag encoded to an unsigned 64-bit value before the same compression
// is applied.

// minBytes returns the number of bytes needed to hold x in minimal
// big-endian form (0 for x == 0).
func minBytes(x uint64) int {
	n := 0
	for x != 0 {
		n++
		x >>= 8
	}
	return n
}

// appendCompressed appends the compressed encoding of x (declared width
// bytes, one of 2, 4, 8) to dst and returns the extended slice.
func appendCompressed(dst []byte, x uint64, width int) []byte {
	l := minBytes(x)
	dst = append(dst, byte(l))
	for i := l - 1; i >= 0; i-- {
		dst = append(dst, byte(x>>(uint(i)*8)))
	}
	return dst
}

// takeCompressed decodes a compressed integer of declared width bytes from
// buf, returning the value and the number of bytes consumed (1 + L).
func takeCompressed(buf []byte, width int) (x uint64, n int, err error) {
	if len(buf) < 1 {
		return 0, 0, ErrUnderrun
	}
	l := int(buf[0])
	if l > width {
		return 0, 0, ErrBadCompression
	}
	if len(buf) < 1+l {
		return 0, 0, ErrUnderrun
	}
	for i := 0; i < l; i++ {
		x = x<<8 | uint64(buf[1+i])
	}
	return x, 1 + l, nil
}

func zigzag(v int64) uint64 {
	return (uint64(v) << 1) ^ uint64(v>>63)
}

func unzigzag(x uint64) int64 {
	return int64(x>>1) ^ -int64(x&1)
}

// compressedSize returns the on-wire byte count for x at the given
// declared width. Writer does not call it; its budget check is Fits.
func compressedSize(x uint64, width int) int {
	return 1 + minBytes(x)
}
