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
	"seehuhn.de/go/geom/vec"
)

// Point is a position in the plane, with an optional Z component.
//
// All components must be finite.  The functions in this package do not
// check for NaN or infinite values; passing them gives undefined results.
type Point struct {
	X, Y, Z float64
}

// Pt returns the 2D point (x, y) with Z set to zero.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Pt3 returns the point (x, y, z).
func Pt3(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Round returns the point with X and Y rounded to the nearest integer,
// with halfway cases rounded away from zero.  Z is left unchanged.
func (p Point) Round() Point {
	return Point{X: round(p.X), Y: round(p.Y), Z: p.Z}
}

// Vec2 returns the X and Y components as a vector.
func (p Point) Vec2() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// fromVec2 converts a vector back to a point with Z = 0.
func fromVec2(v vec.Vec2) Point {
	return Point{X: v.X, Y: v.Y}
}

// Color is an RGB color with components in the range [0, 1].
//
// Color has the same shape as Point, but the two are kept apart so that
// a position cannot be passed where a color is expected.
type Color struct {
	R, G, B float64
}

// Colors used for the different kinds of output.
var (
	// PixelColor fills the quads emitted for rasterized pixels.
	PixelColor = Color{R: 1, G: 0, B: 1}

	// SegmentColor is used for the ideal (continuous) line segment.
	SegmentColor = Color{R: 1, G: 1, B: 1}

	// CurveColor is assigned to every vertex produced by DrawCurve.
	CurveColor = Color{R: 0, G: 1, B: 0}

	// GridColor is assigned to every vertex produced by DrawGrid.
	GridColor = Color{R: 0.3, G: 0.3, B: 0.3}
)
