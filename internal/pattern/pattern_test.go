package pattern

/*
 * dramstorm - Pattern test catalog tests.
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

import "testing"

func TestSplatByteFillsAllBytes(t *testing.T) {
	v := splatByte(64, 0xAA)
	for i, b := range v {
		if b != 0xAA {
			t.Fatalf("byte %d = %#x, want 0xAA", i, b)
		}
	}
}

func TestSplatLane64RepeatsLane(t *testing.T) {
	v := splatLane64(64, 0x0102030405060708)
	want := []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}
	for lane := 0; lane < 8; lane++ {
		for i, w := range want {
			if got := v[lane*8+i]; got != w {
				t.Fatalf("lane %d byte %d = %#x, want %#x", lane, i, got, w)
			}
		}
	}
}

func TestInvertIsBitwiseComplement(t *testing.T) {
	v := []byte{0x00, 0xFF, 0x0F, 0xAA}
	inv := invert(v)
	want := []byte{0xFF, 0x00, 0xF0, 0x55}
	for i := range want {
		if inv[i] != want[i] {
			t.Fatalf("invert[%d] = %#x, want %#x", i, inv[i], want[i])
		}
	}
	// invert is its own inverse.
	if back := invert(inv); back[0] != v[0] || back[1] != v[1] {
		t.Fatalf("invert(invert(v)) != v")
	}
}

func TestRepeat8AndRepeat16(t *testing.T) {
	if got := repeat8(0xAB); got != 0xABABABABABABABAB {
		t.Fatalf("repeat8(0xAB) = %#x", got)
	}
	if got := repeat16(0xABCD); got != 0xABCDABCDABCDABCD {
		t.Fatalf("repeat16(0xABCD) = %#x", got)
	}
}
