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

// Package dda converts line segments and cubic Bézier curves into
// discrete vertices for display.
//
// Two line rasterizers are provided: [Simple], the basic incremental DDA,
// and [Symmetric], a variant whose output does not depend on the order of
// the endpoints.  [DrawCurve] samples a cubic Bézier curve and [DrawGrid]
// generates a reference grid in the same coordinate space.
//
// All functions are pure: they allocate fresh output on every call and
// keep no state between calls, so they can be used from several
// goroutines at once.  Inputs must be finite; NaN and infinite values are
// not checked and give undefined results.
package dda

//go:generate go run ./testcases/export

import "fmt"

// Frame collects everything needed to draw one picture.
type Frame struct {
	// Lines is a line list: vertices 2i and 2i+1 form a segment.
	Lines Mesh

	// Strip is a polyline connecting consecutive vertices.
	Strip Mesh

	// Quads holds groups of four vertices, each group a filled square
	// given in triangle fan order.
	Quads Mesh
}

// Scene composes frames from requests.
type Scene struct {
	// GridSize is the extent of the reference grid.
	// Values <= 0 omit the grid.
	GridSize float64

	// Flatness, if positive, is the maximal distance between a curve and
	// its polyline.  The number of segments is then chosen per curve by
	// Bezier.Segments.  Otherwise curves use CurveSegments segments.
	Flatness float64
}

// NewScene returns a scene with a grid of size DefaultGridSize.
func NewScene() Scene {
	return Scene{GridSize: DefaultGridSize}
}

// Line rasterizes the line described by req.  The frame contains the grid
// and the ideal segment in Lines, and one quad per rasterized sample in
// Quads.  For ModeNone the quads are omitted.
func (s Scene) Line(req LineRequest) (Frame, error) {
	var pixels []Point
	switch req.Mode {
	case ModeNone:
		// no rasterization
	case ModeSimple, ModeSymmetric:
		pixels = req.Mode.Rasterizer().PlotLine(req.P1, req.P2)
	default:
		return Frame{}, fmt.Errorf("%w: %s", ErrUnknownMode, req.Mode)
	}

	lines := GridMesh(s.GridSize, GridColor)
	lines = append(lines, Segment(req.P1, req.P2, SegmentColor)...)
	f := Frame{
		Lines: lines,
		Quads: PixelQuads(pixels, PixelColor),
	}

	Logger().Debug("line frame",
		"mode", req.Mode,
		"pixels", len(pixels),
		"lineVertices", len(f.Lines))
	return f, nil
}

// Curve evaluates the curve described by req.  The frame contains the grid
// in Lines and the sampled curve in Strip.
func (s Scene) Curve(req CurveRequest) Frame {
	b := req.Bezier()
	n := CurveSegments
	if s.Flatness > 0 {
		n = b.Segments(s.Flatness)
	}
	f := Frame{
		Lines: GridMesh(s.GridSize, GridColor),
		Strip: b.Mesh(n, CurveColor),
	}

	Logger().Debug("curve frame",
		"segments", n,
		"stripVertices", len(f.Strip),
		"lineVertices", len(f.Lines))
	return f
}

// DefaultGridSize is the grid extent used by NewScene.
const DefaultGridSize = 40
