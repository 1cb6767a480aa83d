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

import "seehuhn.de/go/dda"

// lineCases returns the line test cases, all rasterized with the given mode.
func lineCases(mode dda.Mode) []TestCase {
	lines := []struct {
		name   string
		p1, p2 dda.Point
	}{
		// Octants, starting at the origin
		{"octant_1", pt(0, 0), pt(20, 7)},
		{"octant_2", pt(0, 0), pt(7, 20)},
		{"octant_3", pt(0, 0), pt(-7, 20)},
		{"octant_4", pt(0, 0), pt(-20, 7)},
		{"octant_5", pt(0, 0), pt(-20, -7)},
		{"octant_6", pt(0, 0), pt(-7, -20)},
		{"octant_7", pt(0, 0), pt(7, -20)},
		{"octant_8", pt(0, 0), pt(20, -7)},

		// Axis-aligned and diagonal
		{"horizontal", pt(-15, 3), pt(15, 3)},
		{"vertical", pt(-4, -15), pt(-4, 15)},
		{"diagonal", pt(-12, -12), pt(12, 12)},
		{"antidiagonal", pt(-12, 12), pt(12, -12)},

		// Slope 1/2, where every other sample lies exactly halfway
		{"half_slope", pt(0, 0), pt(4, 2)},
		{"half_slope_reversed", pt(4, 2), pt(0, 0)},

		// Fractional endpoints
		{"fractional", pt(-10.3, 2.6), pt(13.7, -8.4)},
		{"fractional_ties", pt(-9.5, -3.5), pt(10.5, 6.5)},

		// Degenerate
		{"point", pt(3, -2), pt(3, -2)},
		{"subpixel", pt(0.1, 0.2), pt(0.3, 0.4)},
	}

	cases := make([]TestCase, len(lines))
	for i, l := range lines {
		cases[i] = TestCase{
			Name: l.name,
			Op:   Line{Mode: mode, P1: l.p1, P2: l.p2},
		}
	}
	return cases
}
