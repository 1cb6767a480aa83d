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

import "math"

// GridLines returns the number of grid lines along each axis for a grid
// of the given size.
//
// Lines are placed at unit spacing starting at -size/2.  If size is not an
// integer, one more line is added at +size/2 so that both boundaries are
// always present.  Non-positive sizes give 0.
func GridLines(size float64) int {
	if !(size > 0) {
		return 0
	}
	whole := math.Floor(size / gridSpacing)
	n := int(whole) + 1
	if whole*gridSpacing != size {
		n++
	}
	return n
}

// GridMesh returns the reference grid for the square [-size/2, size/2]²
// as a line list: first the vertical lines from left to right, then the
// horizontal lines from bottom to top.  Each line contributes two
// vertices.
func GridMesh(size float64, c Color) Mesh {
	n := GridLines(size)
	if n == 0 {
		return nil
	}
	h := size / 2

	m := make(Mesh, 0, 4*n)
	for i := range n {
		x := gridCoord(i, n, h)
		m = append(m, Vertex{Pos: Pt(x, -h), Color: c}, Vertex{Pos: Pt(x, h), Color: c})
	}
	for i := range n {
		y := gridCoord(i, n, h)
		m = append(m, Vertex{Pos: Pt(-h, y), Color: c}, Vertex{Pos: Pt(h, y), Color: c})
	}
	return m
}

// gridCoord returns the position of line i out of n.  The last line is
// placed exactly on the upper boundary.
func gridCoord(i, n int, h float64) float64 {
	if i == n-1 {
		return h
	}
	return -h + float64(i)*gridSpacing
}

// DrawGrid returns the reference grid of the given size, centered at the
// origin, as flat line-list buffers: vertices holds (x, y) for each
// endpoint, colors holds (r, g, b) for each endpoint.  All lines have
// color GridColor.
//
// The grid has 2*GridLines(size) segments, so len(vertices) is
// 8*GridLines(size) and len(colors) is 12*GridLines(size).  size must be
// positive; otherwise both buffers are empty.
func DrawGrid(size float64) (vertices, colors []float32) {
	return GridMesh(size, GridColor).Flatten()
}

// gridSpacing is the distance between neighbouring grid lines.
const gridSpacing = 1.0
