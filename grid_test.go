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
)

func TestDrawGridSize4(t *testing.T) {
	vertices, colors := DrawGrid(4)

	if n := GridLines(4); n != 5 {
		t.Fatalf("GridLines(4) = %d, want 5", n)
	}
	if len(vertices) != 40 {
		t.Fatalf("len(vertices) = %d, want 40", len(vertices))
	}
	if len(colors) != 60 {
		t.Fatalf("len(colors) = %d, want 60", len(colors))
	}

	// vertical lines first, then horizontal ones
	var xs, ys []float32
	for i := 0; i < 20; i += 4 {
		x0, y0, x1, y1 := vertices[i], vertices[i+1], vertices[i+2], vertices[i+3]
		if x0 != x1 || y0 != -2 || y1 != 2 {
			t.Errorf("vertical line %d: (%g,%g)-(%g,%g)", i/4, x0, y0, x1, y1)
		}
		xs = append(xs, x0)
	}
	for i := 20; i < 40; i += 4 {
		x0, y0, x1, y1 := vertices[i], vertices[i+1], vertices[i+2], vertices[i+3]
		if y0 != y1 || x0 != -2 || x1 != 2 {
			t.Errorf("horizontal line %d: (%g,%g)-(%g,%g)", i/4-5, x0, y0, x1, y1)
		}
		ys = append(ys, y0)
	}
	want := []float32{-2, -1, 0, 1, 2}
	if !slices.Equal(xs, want) {
		t.Errorf("vertical lines at %v, want %v", xs, want)
	}
	if !slices.Equal(ys, want) {
		t.Errorf("horizontal lines at %v, want %v", ys, want)
	}

	for i := 0; i < len(colors); i += 3 {
		if colors[i] != 0.3 || colors[i+1] != 0.3 || colors[i+2] != 0.3 {
			t.Fatalf("color %d: %v", i/3, colors[i:i+3])
		}
	}
}

func TestGridLines(t *testing.T) {
	cases := []struct {
		size float64
		want int
	}{
		{-1, 0},
		{0, 0},
		{0.5, 2},
		{1, 2},
		{4, 5},
		{5, 6},
		{6.5, 8},
		{40, 41},
	}
	for _, c := range cases {
		if got := GridLines(c.size); got != c.want {
			t.Errorf("GridLines(%g) = %d, want %d", c.size, got, c.want)
		}
		v, col := DrawGrid(c.size)
		if len(v) != 8*c.want || len(col) != 12*c.want {
			t.Errorf("DrawGrid(%g): %d vertex and %d color values, want %d and %d",
				c.size, len(v), len(col), 8*c.want, 12*c.want)
		}
	}
}

func TestGridFractional(t *testing.T) {
	m := GridMesh(6.5, GridColor)
	n := GridLines(6.5)

	var xs []float64
	for i := 0; i < 2*n; i += 2 {
		xs = append(xs, m[i].Pos.X)
	}
	want := []float64{-3.25, -2.25, -1.25, -0.25, 0.75, 1.75, 2.75, 3.25}
	if !slices.Equal(xs, want) {
		t.Errorf("got %v, want %v", xs, want)
	}

	b := m.Bounds()
	if b.LLx != -3.25 || b.LLy != -3.25 || b.URx != 3.25 || b.URy != 3.25 {
		t.Errorf("bounds %v", b)
	}
}

func TestGridDeterministic(t *testing.T) {
	v1, c1 := DrawGrid(40)
	v2, c2 := DrawGrid(40)
	if !slices.Equal(v1, v2) || !slices.Equal(c1, c2) {
		t.Error("DrawGrid is not deterministic")
	}
	// fresh buffers on every call
	v1[0] = 1000
	if v2[0] == 1000 {
		t.Error("DrawGrid returned shared buffers")
	}
}
