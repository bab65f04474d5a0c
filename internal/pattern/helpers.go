/*
 * dramstorm - Pattern test helpers.
 *
 * Copyright 2026, The dramstorm authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package pattern

// splatByte builds a width-byte vector with every byte equal to b.
func splatByte(width int, b byte) []byte {
	v := make([]byte, width)
	for i := range v {
		v[i] = b
	}
	return v
}

// splatLane64 builds a width-byte vector by repeating the little-endian
// encoding of a 64-bit lane value across every 8-byte lane.
func splatLane64(width int, lane uint64) []byte {
	v := make([]byte, width)
	for off := 0; off < width; off += 8 {
		putUint64LE(v[off:off+8], lane)
	}
	return v
}

// repeat8 replicates an 8-bit value into every byte of a 64-bit lane.
func repeat8(b uint8) uint64 {
	lane := uint64(b)
	return lane | lane<<8 | lane<<16 | lane<<24 | lane<<32 | lane<<40 | lane<<48 | lane<<56
}

// repeat16 replicates a 16-bit value into every halfword of a 64-bit lane.
func repeat16(h uint16) uint64 {
	lane := uint64(h)
	return lane | lane<<16 | lane<<32 | lane<<48
}

// invert returns the bitwise complement of every byte in v.
func invert(v []byte) []byte {
	out := make([]byte, len(v))
	for i, b := range v {
		out[i] = ^b
	}
	return out
}

func putUint64LE(b []byte, v uint64) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}
