package sizespec

/*
 * dramstorm - Buffer size-spec parser tests.
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

func fakeMemory(available, total uint64) MemoryQuery {
	return func() (uint64, uint64, bool) { return available, total, true }
}

func TestParsePlainDecimal(t *testing.T) {
	got, err := Parse("1048576")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got != 1048576 {
		t.Fatalf("got %d, want 1048576", got)
	}
}

func TestParseSIAndBinarySuffixes(t *testing.T) {
	cases := []struct {
		spec string
		want Bytes
	}{
		{"1K", 1000},
		{"1M", 1_000_000},
		{"1G", 1_000_000_000},
		{"1Ki", 1024},
		{"1Mi", 1024 * 1024},
		{"1Gi", 1024 * 1024 * 1024},
		{"4Gi", 4 * 1024 * 1024 * 1024},
	}
	for _, c := range cases {
		got, err := Parse(c.spec)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", c.spec, err)
		}
		if got != c.want {
			t.Fatalf("Parse(%q) = %d, want %d", c.spec, got, c.want)
		}
	}
}

func TestParseIsCaseInsensitive(t *testing.T) {
	got, err := Parse("4gi")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got != 4*1024*1024*1024 {
		t.Fatalf("got %d, want 4GiB", got)
	}
}

func TestParsePercentOfAvailable(t *testing.T) {
	got, err := ParseWithMemory("50%", fakeMemory(2000, 8000))
	if err != nil {
		t.Fatalf("ParseWithMemory returned error: %v", err)
	}
	if got != 1000 {
		t.Fatalf("got %d, want 1000 (50%% of 2000 available)", got)
	}
}

func TestParsePercentOfTotal(t *testing.T) {
	got, err := ParseWithMemory("25%t", fakeMemory(2000, 8000))
	if err != nil {
		t.Fatalf("ParseWithMemory returned error: %v", err)
	}
	if got != 2000 {
		t.Fatalf("got %d, want 2000 (25%% of 8000 total)", got)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse("not-a-size"); err == nil {
		t.Fatalf("Parse accepted garbage input")
	}
}

func TestParseRejectsEmpty(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Fatalf("Parse accepted an empty spec")
	}
}
