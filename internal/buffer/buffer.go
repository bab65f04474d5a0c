/*
 * dramstorm - Pinned, aligned buffer allocator.
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

// Package buffer acquires the test buffer: round a requested byte
// count down to an aligned, worker-partitionable size, allocate it,
// and pin it in physical memory, shrinking and retrying on pin
// failure. The buffer is owned exclusively by the engine between
// Acquire and Release.
package buffer

import (
	"github.com/dramstorm/dramstorm/internal/dramerr"
	"github.com/dramstorm/dramstorm/internal/platform"
)

// Buffer is a page-aligned, physically-resident region of memory owned
// exclusively by the core between Acquire and Release.
type Buffer struct {
	mem []byte
}

// Base returns the buffer's backing slice.
func (b *Buffer) Base() []byte {
	return b.mem
}

// Size returns the accepted size in bytes.
func (b *Buffer) Size() int64 {
	return int64(len(b.mem))
}

// Acquire rounds requested down to a multiple of alignment = cpu_count
// * page_size, allocates it, and attempts to pin it. On pin failure it
// frees the region and retries with requested -= platform.ShrinkStep,
// continuing until a pin succeeds or the remaining size reaches zero,
// in which case it returns dramerr.ErrNoMemoryPinned.
func Acquire(requested int64) (*Buffer, error) {
	alignment := platform.Alignment()
	if alignment <= 0 {
		return nil, dramerr.ErrNoMemoryPinned
	}

	size := roundDown(requested, alignment)
	for size > 0 {
		mem, ok := platform.AlignedAlloc(alignment, size)
		if ok {
			if platform.Pin(mem) {
				return &Buffer{mem: mem}, nil
			}
			platform.AlignedFree(mem)
		}
		size = roundDown(size-platform.ShrinkStep, alignment)
	}
	return nil, dramerr.ErrNoMemoryPinned
}

// Release unpins and frees the buffer. It is a no-op once called, to
// make double-release during cleanup harmless.
func (b *Buffer) Release() {
	if b == nil || b.mem == nil {
		return
	}
	platform.Unpin(b.mem)
	platform.AlignedFree(b.mem)
	b.mem = nil
}

func roundDown(n, alignment int64) int64 {
	if n <= 0 {
		return 0
	}
	return (n / alignment) * alignment
}
