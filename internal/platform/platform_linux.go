//go:build linux

/*
 * dramstorm - Platform host queries, Linux.
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

package platform

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// PageSize returns the host's page size in bytes.
func PageSize() int {
	return unix.Getpagesize()
}

func cpuCountAffinity() int {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return 0
	}
	return set.Count()
}

// AlignedAlloc reserves size bytes aligned to alignment using an
// anonymous mmap. mmap only guarantees page alignment (4096 bytes),
// not alignment to the larger A = cpu_count * page_size the engine
// requires, so the mapping is over-allocated by alignment bytes and
// the slack before and after the aligned region is unmapped, leaving
// a single mapping that starts exactly on the requested boundary.
// AlignedFree then munmaps exactly the trimmed slice it was handed.
func AlignedAlloc(alignment, size int64) ([]byte, bool) {
	if size <= 0 || alignment <= 0 {
		return nil, false
	}
	raw, err := unix.Mmap(-1, 0, int(size+alignment), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, false
	}

	base := uintptr(unsafe.Pointer(&raw[0]))
	aligned := (base + uintptr(alignment) - 1) / uintptr(alignment) * uintptr(alignment)
	head := int64(aligned - base)

	if head > 0 {
		if err := unix.Munmap(raw[:head]); err != nil {
			_ = unix.Munmap(raw)
			return nil, false
		}
	}
	tail := head + size
	if tail < int64(len(raw)) {
		if err := unix.Munmap(raw[tail:]); err != nil {
			_ = unix.Munmap(raw[head:tail])
			return nil, false
		}
	}
	return raw[head:tail], true
}

// AlignedFree releases a region returned by AlignedAlloc.
func AlignedFree(b []byte) {
	if len(b) == 0 {
		return
	}
	_ = unix.Munmap(b)
}

// Pin locks b into physical memory so it cannot be paged out.
func Pin(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	return unix.Mlock(b) == nil
}

// Unpin reverses Pin.
func Unpin(b []byte) {
	if len(b) == 0 {
		return
	}
	_ = unix.Munlock(b)
}

// Memory reports current-available and total host physical memory, in
// bytes, used by config/sizespec to resolve "%" and "%t" size specs.
func Memory() (available, total uint64, ok bool) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, 0, false
	}
	unit := uint64(info.Unit)
	if unit == 0 {
		unit = 1
	}
	total = uint64(info.Totalram) * unit
	available = uint64(info.Freeram)*unit + uint64(info.Bufferram)*unit
	return available, total, true
}
