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

// LineRasterizer converts a line segment into a sequence of integer
// sample points.
//
// Implementations accept the endpoints in either order.  Only the X and Y
// components are used; the returned samples have Z = 0.
type LineRasterizer interface {
	PlotLine(p1, p2 Point) []Point
}

// Simple is the basic incremental DDA line rasterizer.
//
// The number of steps is the extent of the segment along its dominant
// axis, measured between the rounded endpoints.  Starting at p1, the
// rasterizer adds a constant increment per step and rounds each position
// to the nearest integer.  The output has steps+1 points, starts at the
// rounded p1 and ends at the rounded p2.
type Simple struct{}

// PlotLine implements the [LineRasterizer] interface.
func (Simple) PlotLine(p1, p2 Point) []Point {
	steps := stepCount(p1, p2)
	if steps == 0 {
		return []Point{sample(p1.X, p1.Y)}
	}

	n := float64(steps)
	xInc := (p2.X - p1.X) / n
	yInc := (p2.Y - p1.Y) / n

	points := make([]Point, 0, steps+1)
	x, y := p1.X, p1.Y
	for range steps {
		points = append(points, sample(x, y))
		x += xInc
		y += yInc
	}
	// Take the last sample from p2, so that accumulated rounding errors
	// cannot move it away from the endpoint.
	points = append(points, sample(p2.X, p2.Y))
	return points
}

// Symmetric is a DDA line rasterizer whose output does not depend on the
// order of the endpoints: PlotLine(p1, p2) is exactly the reverse of
// PlotLine(p2, p1).
//
// The step count is the same as for [Simple].  Positions are accumulated
// from the midpoint of the segment outwards in both directions, so that
// rounding errors are distributed evenly between the two halves instead
// of growing from one endpoint towards the other.
type Symmetric struct{}

// PlotLine implements the [LineRasterizer] interface.
func (Symmetric) PlotLine(p1, p2 Point) []Point {
	steps := stepCount(p1, p2)
	if steps == 0 {
		return []Point{sample(p1.X, p1.Y)}
	}

	n := float64(steps)
	xInc := (p2.X - p1.X) / n
	yInc := (p2.Y - p1.Y) / n
	midX := (p1.X + p2.X) / 2
	midY := (p1.Y + p2.Y) / 2

	// lo walks towards p1, hi towards p2.  For an even number of steps the
	// middle sample lies on the midpoint, for an odd number the two middle
	// samples lie half a step on either side.
	//
	// Swapping p1 and p2 negates xInc and yInc exactly and leaves the
	// midpoint unchanged.  Since IEEE rounding is symmetric under negation,
	// the offsets ax, ay are negated exactly as well and the result is the
	// exact reverse.
	var ax, ay float64
	lo, hi := steps/2, steps/2
	if steps%2 == 1 {
		hi++
		ax, ay = xInc/2, yInc/2
	}

	// Inner samples are clamped to the box spanned by the rounded
	// endpoints.  Without this, an endpoint on a rounding tie can round
	// differently from its neighbour and the line would step backwards.
	// The box does not depend on the order of p1 and p2.
	first := sample(p1.X, p1.Y)
	last := sample(p2.X, p2.Y)
	xMin, xMax := min(first.X, last.X), max(first.X, last.X)
	yMin, yMax := min(first.Y, last.Y), max(first.Y, last.Y)
	clamp := func(p Point) Point {
		p.X = max(xMin, min(xMax, p.X))
		p.Y = max(yMin, min(yMax, p.Y))
		return p
	}

	points := make([]Point, steps+1)
	for lo >= 0 {
		points[hi] = clamp(sample(midX+ax, midY+ay))
		points[lo] = clamp(sample(midX-ax, midY-ay))
		lo--
		hi++
		ax += xInc
		ay += yInc
	}
	points[0] = first
	points[steps] = last
	return points
}

// stepCount returns the number of unit steps along the dominant axis
// between the rounded endpoints.  The result is symmetric in p1 and p2.
func stepCount(p1, p2 Point) int {
	dx := math.Abs(round(p2.X) - round(p1.X))
	dy := math.Abs(round(p2.Y) - round(p1.Y))
	return int(max(dx, dy))
}

// sample returns the integer sample closest to (x, y).
func sample(x, y float64) Point {
	return Pt(x, y).Round()
}

// round rounds half away from zero.  Adding zero turns -0 into +0.
func round(x float64) float64 {
	return math.Round(x) + 0
}
