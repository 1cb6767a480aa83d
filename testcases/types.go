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

package testcases

import (
	"seehuhn.de/go/dda"
)

// TestCase defines a single input for the rasterizers.
type TestCase struct {
	Name string    // lowercase a-z, 0-9 and _ only
	Op   Operation // what to draw
}

// Operation is the drawing operation of a test case.
type Operation interface {
	isOperation()
}

// Line rasterizes a line segment.
type Line struct {
	Mode   dda.Mode
	P1, P2 dda.Point
}

func (Line) isOperation() {}

// Curve evaluates a cubic Bézier curve.
type Curve struct {
	P0, P1, P2, P3 dda.Point
}

func (Curve) isOperation() {}

// Grid draws only the reference grid.
type Grid struct {
	Size float64
}

func (Grid) isOperation() {}

// Frame composes the frame for the test case.  Line and curve cases are
// drawn on the grid of s; grid cases use their own size.
func (tc TestCase) Frame(s dda.Scene) (dda.Frame, error) {
	switch op := tc.Op.(type) {
	case Line:
		return s.Line(dda.LineRequest{Mode: op.Mode, P1: op.P1, P2: op.P2})
	case Curve:
		return s.Curve(dda.CurveRequest{P0: op.P0, P1: op.P1, P2: op.P2, P3: op.P3}), nil
	case Grid:
		return dda.Frame{Lines: dda.GridMesh(op.Size, dda.GridColor)}, nil
	}
	return dda.Frame{}, nil
}

// pt is a helper to create a dda.Point from x, y coordinates.
func pt(x, y float64) dda.Point {
	return dda.Pt(x, y)
}
