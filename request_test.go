// seehuhn.de/go/dda - line and curve rasterization
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package dda

import (
	"errors"
	"strconv"
	"testing"
)

func TestParseLineRequest(t *testing.T) {
	req, err := ParseLineRequest(ModeSymmetric, "  1.5 -2\n3e1\t4 ")
	if err != nil {
		t.Fatal(err)
	}
	want := LineRequest{Mode: ModeSymmetric, P1: Pt(1.5, -2), P2: Pt(30, 4)}
	if req != want {
		t.Errorf("got %v, want %v", req, want)
	}
}

func TestParseCurveRequest(t *testing.T) {
	req, err := ParseCurveRequest("0 0 0 1 1 1 1 0")
	if err != nil {
		t.Fatal(err)
	}
	want := CurveRequest{P0: Pt(0, 0), P1: Pt(0, 1), P2: Pt(1, 1), P3: Pt(1, 0)}
	if req != want {
		t.Errorf("got %v, want %v", req, want)
	}
	if b := req.Bezier(); b.P1 != want.P1 || b.P2 != want.P2 {
		t.Errorf("Bezier() = %v", b)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		text string
		err  error
	}{
		{"", ErrFieldCount},
		{"1 2 3", ErrFieldCount},
		{"1 2 3 4 5", ErrFieldCount},
		{"a 2 3 4", strconv.ErrSyntax},
		{"1 2 1e999 4", strconv.ErrRange},
		{"NaN 0 0 0", ErrNotFinite},
		{"0 0 -Inf 0", ErrNotFinite},
	}
	for _, c := range cases {
		_, err := ParseLineRequest(ModeSimple, c.text)
		if !errors.Is(err, c.err) {
			t.Errorf("%q: got error %v, want %v", c.text, err, c.err)
		}
	}

	if _, err := ParseCurveRequest("1 2 3 4"); !errors.Is(err, ErrFieldCount) {
		t.Errorf("curve: got error %v, want %v", err, ErrFieldCount)
	}
}

func TestMode(t *testing.T) {
	for _, m := range []Mode{ModeNone, ModeSimple, ModeSymmetric} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}

	if m, err := ParseMode(" Symmetric "); err != nil || m != ModeSymmetric {
		t.Errorf("case/space: got %v, %v", m, err)
	}
	if _, err := ParseMode("bresenham"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("got error %v, want %v", err, ErrUnknownMode)
	}
	if s := Mode(7).String(); s != "Mode(7)" {
		t.Errorf("got %q", s)
	}

	if _, ok := ModeSimple.Rasterizer().(Simple); !ok {
		t.Error("ModeSimple does not map to Simple")
	}
	if _, ok := ModeSymmetric.Rasterizer().(Symmetric); !ok {
		t.Error("ModeSymmetric does not map to Symmetric")
	}
	if r := ModeNone.Rasterizer(); r != nil {
		t.Errorf("ModeNone maps to %T", r)
	}
}
