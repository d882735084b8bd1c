package wasm

import "errors"

var errBadVarint = errors.New("malformed LEB128 integer")

// readUvarint decodes an unsigned LEB128 integer from b starting at off.
// It returns the value and the offset of the first byte after it.
func readUvarint(b []byte, off int) (uint64, int, error) {
	var result uint64
	var shift uint
	for {
		if off >= len(b) {
			return 0, 0, errBadVarint
		}
		c := b[off]
		off++
		result |= uint64(c&0x7f) << shift
		if c&0x80 == 0 {
			return result, off, nil
		}
		shift += 7
		if shift >= 64 {
			return 0, 0, errBadVarint
		}
	}
}

// appendUvarint appends v to dst in unsigned LEB128 encoding.
func appendUvarint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}
