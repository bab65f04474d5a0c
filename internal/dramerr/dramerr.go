/*
 * dramstorm - Sentinel errors.
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

// Package dramerr declares the error taxonomy for the stress engine.
//
// NoSIMD, NoMemoryPinned and BadConfigLine are preparation-time errors:
// the caller should treat them as fatal and exit with a nonzero status.
// MissingConfig is recovered locally by the config loader. DataMismatch
// is never actually returned as an error at runtime (a miscompare only
// ever increments the error counter and emits a log line) but the
// sentinel exists so tests can classify a failure without a second
// taxonomy.
package dramerr

import "errors"

var (
	// ErrNoSIMD means the host exposes neither AVX-512 nor AVX2; the
	// engine refuses to run.
	ErrNoSIMD = errors.New("dramerr: no usable SIMD ISA (need AVX-512 BW/F or AVX2)")

	// ErrNoMemoryPinned means every pin attempt failed down to zero
	// remaining bytes.
	ErrNoMemoryPinned = errors.New("dramerr: could not pin any non-zero buffer size")

	// ErrMissingConfig means the selection config file does not exist.
	// Callers fall back to the default-all selection.
	ErrMissingConfig = errors.New("dramerr: config file missing")

	// ErrBadConfigLine means a config line was malformed: unknown test
	// name, unknown token, or a bad integer.
	ErrBadConfigLine = errors.New("dramerr: malformed config line")

	// ErrDataMismatch classifies a verify-phase miscompare. Not used as
	// a returned error; see package doc.
	ErrDataMismatch = errors.New("dramerr: data mismatch")
)
