/*
 * dramstorm - Buffer size-spec parser.
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

// Package sizespec parses the buffer size-spec format: a decimal
// number optionally suffixed by K/M/G (SI, base 1000),
// Ki/Mi/Gi (binary, base 1024), % (fraction of available memory), or
// %t (fraction of total memory). Case-insensitive.
package sizespec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dramstorm/dramstorm/internal/dramerr"
	"github.com/dramstorm/dramstorm/internal/platform"
)

// Bytes is a parsed byte count.
type Bytes uint64

const (
	si  = 1000
	bin = 1024
)

// MemoryQuery reports the host's available and total physical memory,
// for resolving `%` and `%t` specs. internal/platform.Memory matches
// this signature and is the production implementation; tests supply a
// fake.
type MemoryQuery func() (available, total uint64, ok bool)

// Parse interprets spec using internal/platform.Memory as the memory
// source.
func Parse(spec string) (Bytes, error) {
	return ParseWithMemory(spec, platform.Memory)
}

// ParseWithMemory interprets spec, resolving any percentage suffix
// against the given memory query.
func ParseWithMemory(spec string, mem MemoryQuery) (Bytes, error) {
	s := strings.TrimSpace(spec)
	if s == "" {
		return 0, fmt.Errorf("%w: empty size spec", dramerr.ErrBadConfigLine)
	}
	lower := strings.ToLower(s)

	if strings.HasSuffix(lower, "%t") {
		return parsePercent(s[:len(s)-2], mem, true)
	}
	if strings.HasSuffix(lower, "%") {
		return parsePercent(s[:len(s)-1], mem, false)
	}

	mult, digits := uint64(1), s
	switch {
	case hasSuffixFold(s, "ki"):
		mult, digits = bin, s[:len(s)-2]
	case hasSuffixFold(s, "mi"):
		mult, digits = bin*bin, s[:len(s)-2]
	case hasSuffixFold(s, "gi"):
		mult, digits = bin*bin*bin, s[:len(s)-2]
	case hasSuffixFold(s, "k"):
		mult, digits = si, s[:len(s)-1]
	case hasSuffixFold(s, "m"):
		mult, digits = si*si, s[:len(s)-1]
	case hasSuffixFold(s, "g"):
		mult, digits = si*si*si, s[:len(s)-1]
	}

	n, err := strconv.ParseFloat(strings.TrimSpace(digits), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid size spec %q: %v", dramerr.ErrBadConfigLine, spec, err)
	}
	return Bytes(n * float64(mult)), nil
}

func parsePercent(digits string, mem MemoryQuery, total bool) (Bytes, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(digits), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid percentage %q", dramerr.ErrBadConfigLine, digits)
	}
	available, totalMem, ok := mem()
	if !ok {
		return 0, fmt.Errorf("%w: could not query host memory for a percentage size spec", dramerr.ErrBadConfigLine)
	}
	base := available
	if total {
		base = totalMem
	}
	return Bytes(float64(base) * n / 100), nil
}

func hasSuffixFold(s, suffix string) bool {
	if len(s) < len(suffix) {
		return false
	}
	return strings.EqualFold(s[len(s)-len(suffix):], suffix)
}
