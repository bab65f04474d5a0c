//go:build !linux

/*
 * dramstorm - Platform host queries, non-Linux fallback.
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

// PageSize returns a conservative default page size; non-linux hosts
// are not a deployment target for this engine (it needs mlock-style
// pinning), but the core still links and reports NoMemoryPinned.
func PageSize() int {
	return 4096
}

func cpuCountAffinity() int {
	return 0
}

// AlignedAlloc is unimplemented outside linux: it always fails, which
// surfaces as dramerr.ErrNoMemoryPinned once the caller's shrink loop
// runs out of budget.
func AlignedAlloc(alignment, size int64) ([]byte, bool) {
	return nil, false
}

// AlignedFree is a no-op outside linux.
func AlignedFree(b []byte) {}

// Pin always fails outside linux.
func Pin(b []byte) bool { return false }

// Unpin is a no-op outside linux.
func Unpin(b []byte) {}

// Memory reports zero, false outside linux.
func Memory() (available, total uint64, ok bool) {
	return 0, 0, false
}
