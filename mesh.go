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
	"seehuhn.de/go/geom/rect"
)

// Vertex is a point together with its color.
type Vertex struct {
	Pos   Point
	Color Color
}

// Mesh is an ordered list of vertices.  How consecutive vertices are
// connected (line list, polyline or quads) depends on where the mesh is
// used; see [Frame].
type Mesh []Vertex

// Flatten converts the mesh into the flat buffers expected by a renderer.
// positions holds two values (x, y) per vertex, colors holds three
// values (r, g, b) per vertex.  Both slices are newly allocated.
func (m Mesh) Flatten() (positions, colors []float32) {
	positions = make([]float32, 0, 2*len(m))
	colors = make([]float32, 0, 3*len(m))
	for _, v := range m {
		positions = append(positions, float32(v.Pos.X), float32(v.Pos.Y))
		colors = append(colors, float32(v.Color.R), float32(v.Color.G), float32(v.Color.B))
	}
	return positions, colors
}

// Bounds returns the smallest rectangle containing all vertex positions.
// The zero rectangle is returned for an empty mesh.
func (m Mesh) Bounds() rect.Rect {
	if len(m) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{
		LLx: m[0].Pos.X, LLy: m[0].Pos.Y,
		URx: m[0].Pos.X, URy: m[0].Pos.Y,
	}
	for _, v := range m[1:] {
		b.LLx = min(b.LLx, v.Pos.X)
		b.LLy = min(b.LLy, v.Pos.Y)
		b.URx = max(b.URx, v.Pos.X)
		b.URy = max(b.URy, v.Pos.Y)
	}
	return b
}

// Segment returns the ideal line segment from p1 to p2 as a two-vertex
// line list.
func Segment(p1, p2 Point, c Color) Mesh {
	return Mesh{{Pos: p1, Color: c}, {Pos: p2, Color: c}}
}

// PixelQuads expands every point into a unit square centered on it.
// Each square contributes four vertices in counter-clockwise order,
// suitable for drawing as a triangle fan.
func PixelQuads(points []Point, c Color) Mesh {
	m := make(Mesh, 0, 4*len(points))
	for _, p := range points {
		m = append(m,
			Vertex{Pos: Pt(p.X-pixelHalf, p.Y-pixelHalf), Color: c},
			Vertex{Pos: Pt(p.X+pixelHalf, p.Y-pixelHalf), Color: c},
			Vertex{Pos: Pt(p.X+pixelHalf, p.Y+pixelHalf), Color: c},
			Vertex{Pos: Pt(p.X-pixelHalf, p.Y+pixelHalf), Color: c},
		)
	}
	return m
}

// pixelHalf is half the side length of the square drawn for each
// rasterized sample.
const pixelHalf = 0.5
