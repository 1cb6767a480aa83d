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
	"slices"
	"testing"

	"seehuhn.de/go/geom/rect"
)

func TestFlatten(t *testing.T) {
	m := Mesh{
		{Pos: Pt3(1, 2, 9), Color: Color{R: 1, G: 0.5, B: 0}},
		{Pos: Pt(-3, 4), Color: Color{R: 0, G: 0, B: 1}},
	}
	pos, col := m.Flatten()
	if want := []float32{1, 2, -3, 4}; !slices.Equal(pos, want) {
		t.Errorf("positions: got %v, want %v", pos, want)
	}
	if want := []float32{1, 0.5, 0, 0, 0, 1}; !slices.Equal(col, want) {
		t.Errorf("colors: got %v, want %v", col, want)
	}
}

func TestBounds(t *testing.T) {
	if b := (Mesh{}).Bounds(); b != (rect.Rect{}) {
		t.Errorf("empty mesh: got %v", b)
	}

	m := Segment(Pt(3, -1), Pt(-2, 5), SegmentColor)
	want := rect.Rect{LLx: -2, LLy: -1, URx: 3, URy: 5}
	if b := m.Bounds(); b != want {
		t.Errorf("got %v, want %v", b, want)
	}
}

func TestPixelQuads(t *testing.T) {
	m := PixelQuads([]Point{Pt(0, 0), Pt(5, -2)}, PixelColor)
	if len(m) != 8 {
		t.Fatalf("got %d vertices, want 8", len(m))
	}

	want := []Point{
		Pt(-0.5, -0.5), Pt(0.5, -0.5), Pt(0.5, 0.5), Pt(-0.5, 0.5),
		Pt(4.5, -2.5), Pt(5.5, -2.5), Pt(5.5, -1.5), Pt(4.5, -1.5),
	}
	for i, v := range m {
		if v.Pos != want[i] {
			t.Errorf("vertex %d: got %v, want %v", i, v.Pos, want[i])
		}
		if v.Color != PixelColor {
			t.Errorf("vertex %d: got color %v", i, v.Color)
		}
	}

	if m := PixelQuads(nil, PixelColor); len(m) != 0 {
		t.Errorf("no points: got %d vertices", len(m))
	}
}

func TestPointRound(t *testing.T) {
	cases := []struct {
		in, want Point
	}{
		{Pt(0.5, -0.5), Pt(1, -1)},
		{Pt(1.49, -2.51), Pt(1, -3)},
		{Pt3(2.5, 3.5, 0.7), Pt3(3, 4, 0.7)},
		{Pt(-0.2, -0.4), Pt(0, 0)},
	}
	for _, c := range cases {
		if got := c.in.Round(); got != c.want {
			t.Errorf("%v.Round() = %v, want %v", c.in, got, c.want)
		}
	}
}
