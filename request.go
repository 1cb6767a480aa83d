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
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Mode selects the line rasterizer.
type Mode int

// Supported modes.  ModeNone draws the ideal segment without pixels.
const (
	ModeNone Mode = iota
	ModeSimple
	ModeSymmetric
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeSimple:
		return "simple"
	case ModeSymmetric:
		return "symmetric"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Rasterizer returns the line rasterizer for the mode.
// It returns nil for ModeNone and for unknown modes.
func (m Mode) Rasterizer() LineRasterizer {
	switch m {
	case ModeSimple:
		return Simple{}
	case ModeSymmetric:
		return Symmetric{}
	default:
		return nil
	}
}

// ParseMode converts a mode name, as returned by Mode.String, back into
// a Mode.  Case is ignored.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return ModeNone, nil
	case "simple":
		return ModeSimple, nil
	case "symmetric":
		return ModeSymmetric, nil
	}
	return ModeNone, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// LineRequest describes a line to rasterize.
type LineRequest struct {
	Mode   Mode
	P1, P2 Point
}

// CurveRequest describes a cubic Bézier curve to evaluate.
type CurveRequest struct {
	P0, P1, P2, P3 Point
}

// Bezier returns the curve described by the request.
func (r CurveRequest) Bezier() Bezier {
	return Bezier{P0: r.P0, P1: r.P1, P2: r.P2, P3: r.P3}
}

// Errors returned when parsing requests.
var (
	ErrFieldCount  = errors.New("dda: wrong number of values")
	ErrNotFinite   = errors.New("dda: value is not finite")
	ErrUnknownMode = errors.New("dda: unknown mode")
)

// ParseLineRequest parses the endpoints of a line from text of the form
// "x1 y1 x2 y2".  Values are separated by white space.
func ParseLineRequest(mode Mode, text string) (LineRequest, error) {
	v, err := parseFloats(text, 4)
	if err != nil {
		return LineRequest{}, err
	}
	req := LineRequest{
		Mode: mode,
		P1:   Pt(v[0], v[1]),
		P2:   Pt(v[2], v[3]),
	}
	return req, nil
}

// ParseCurveRequest parses the four control points of a cubic Bézier
// curve from text of the form "x0 y0 x1 y1 x2 y2 x3 y3".
func ParseCurveRequest(text string) (CurveRequest, error) {
	v, err := parseFloats(text, 8)
	if err != nil {
		return CurveRequest{}, err
	}
	req := CurveRequest{
		P0: Pt(v[0], v[1]),
		P1: Pt(v[2], v[3]),
		P2: Pt(v[4], v[5]),
		P3: Pt(v[6], v[7]),
	}
	return req, nil
}

// parseFloats parses exactly n finite, white space separated numbers.
func parseFloats(text string, n int) ([]float64, error) {
	fields := strings.Fields(text)
	if len(fields) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), n)
	}

	v := make([]float64, n)
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("dda: field %d: %w", i+1, err)
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: field %d is %q", ErrNotFinite, i+1, f)
		}
		v[i] = x
	}
	return v, nil
}
