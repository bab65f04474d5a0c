package testselect

/*
 * dramstorm - Test-selection config file parser tests.
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

import (
	"strings"
	"testing"

	"github.com/dramstorm/dramstorm/internal/catalog"
)

func TestParseBasicSelection(t *testing.T) {
	const src = `
# a comment line
walking1
checkerboard loops=0
basic_tests loops=3
`
	sel, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(sel) != 3 {
		t.Fatalf("got %d selections, want 3", len(sel))
	}
	if sel[0].Kind != catalog.Walking1 || sel[0].LoopsOverride != nil {
		t.Fatalf("sel[0] = %+v", sel[0])
	}
	if sel[1].Kind != catalog.Checkerboard || sel[1].LoopsOverride == nil || *sel[1].LoopsOverride != 0 {
		t.Fatalf("sel[1] = %+v", sel[1])
	}
	if sel[2].Kind != catalog.BasicTests || sel[2].LoopsOverride == nil || *sel[2].LoopsOverride != 3 {
		t.Fatalf("sel[2] = %+v", sel[2])
	}
}

func TestParseRejectsUnknownTest(t *testing.T) {
	_, err := Parse(strings.NewReader("not_a_real_test\n"))
	if err == nil {
		t.Fatalf("Parse accepted an unknown test name")
	}
}

func TestParseRejectsUnexpectedToken(t *testing.T) {
	_, err := Parse(strings.NewReader("walking1 bogus=1\n"))
	if err == nil {
		t.Fatalf("Parse accepted an unexpected token")
	}
}

func TestParseRejectsNegativeLoops(t *testing.T) {
	_, err := Parse(strings.NewReader("walking1 loops=-1\n"))
	if err == nil {
		t.Fatalf("Parse accepted a negative loops override")
	}
}

func TestParseFileMissingIsEmptySelection(t *testing.T) {
	sel, err := ParseFile("/no/such/file/dramstorm-testselect.conf")
	if err != nil {
		t.Fatalf("ParseFile on a missing file returned an error: %v", err)
	}
	if sel != nil {
		t.Fatalf("ParseFile on a missing file returned %v, want nil", sel)
	}
}

func TestParseEmptyInputIsEmptySelection(t *testing.T) {
	sel, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse on empty input returned an error: %v", err)
	}
	if len(sel) != 0 {
		t.Fatalf("Parse on empty input returned %d entries, want 0", len(sel))
	}
}
