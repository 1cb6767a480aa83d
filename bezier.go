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
	"math"
)

// Bezier is a cubic Bézier curve.  P0 and P3 are the endpoints, P1 and P2
// are the control points.  Only the X and Y components are used.
type Bezier struct {
	P0, P1, P2, P3 Point
}

// Eval returns the point on the curve at parameter t, for t in [0, 1].
// Eval(0) is P0 and Eval(1) is P3.
func (b Bezier) Eval(t float64) Point {
	p0, p1, p2, p3 := b.P0.Vec2(), b.P1.Vec2(), b.P2.Vec2(), b.P3.Vec2()

	// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
	omt := 1 - t
	omt2 := omt * omt
	omt3 := omt2 * omt
	t2 := t * t
	t3 := t2 * t
	pt := p0.Mul(omt3).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t3))
	return fromVec2(pt)
}

// Mesh evaluates the curve at n+1 uniformly spaced parameter values
// and returns the resulting polyline, with every vertex set to color c.
// Values of n below 1 are treated as 1.
func (b Bezier) Mesh(n int, c Color) Mesh {
	n = max(n, 1)
	m := make(Mesh, n+1)
	for i := range n + 1 {
		t := float64(i) / float64(n)
		m[i] = Vertex{Pos: b.Eval(t), Color: c}
	}
	return m
}

// Segments returns the number of uniform segments needed so that the
// polyline deviates from the curve by at most flatness, using Wang's
// formula.  The result is at least 1.  flatness must be > 0.
func (b Bezier) Segments(flatness float64) int {
	p0, p1, p2, p3 := b.P0.Vec2(), b.P1.Vec2(), b.P2.Vec2(), b.P3.Vec2()

	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	n := 1
	m := max(d1.Length(), d2.Length())
	if m > 0 {
		// n = ceil(sqrt(3 * m / (4 * ε)))
		nFloat := math.Sqrt(3 * m / (4 * flatness))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}
	return n
}

// DrawCurve samples the cubic Bézier curve with control points p0, ..., p3
// at CurveSegments+1 uniformly spaced parameter values.
//
// The result is a polyline as two parallel flat buffers: positions holds
// (x, y) for each vertex, colors holds (r, g, b) for each vertex.  Every
// vertex has color CurveColor.  The first position is p0, the last is p3.
func DrawCurve(p0, p1, p2, p3 Point) (positions, colors []float32) {
	b := Bezier{P0: p0, P1: p1, P2: p2, P3: p3}
	return b.Mesh(CurveSegments, CurveColor).Flatten()
}

// CurveSegments is the number of uniform parameter steps used by
// DrawCurve.  Each curve therefore has CurveSegments+1 vertices.
// At the default view this is well below one pixel per segment.
const CurveSegments = 100
