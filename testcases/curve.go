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

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name: "arch",
		Op:   Curve{P0: pt(0, 0), P1: pt(0, 1), P2: pt(1, 1), P3: pt(1, 0)},
	},
	{
		Name: "arch_large",
		Op:   Curve{P0: pt(-20, -10), P1: pt(-20, 20), P2: pt(20, 20), P3: pt(20, -10)},
	},
	{
		Name: "scurve", // S-curve with inflection
		Op:   Curve{P0: pt(-20, -15), P1: pt(-20, 15), P2: pt(20, -15), P3: pt(20, 15)},
	},
	{
		Name: "loop", // self-intersecting loop
		Op:   Curve{P0: pt(-20, 0), P1: pt(25, 20), P2: pt(-25, 20), P3: pt(20, 0)},
	},
	{
		Name: "cusp", // control points crossed
		Op:   Curve{P0: pt(-20, -15), P1: pt(20, 15), P2: pt(-20, 15), P3: pt(20, -15)},
	},
	{
		Name: "nearly_straight",
		Op:   Curve{P0: pt(-20, 0), P1: pt(-7, 0.5), P2: pt(7, 0.5), P3: pt(20, 0)},
	},
	{
		Name: "quarter_circle",
		Op:   Curve{P0: pt(20, 0), P1: pt(20, 20*kappa), P2: pt(20*kappa, 20), P3: pt(0, 20)},
	},
	{
		Name: "degenerate", // all control points coincident
		Op:   Curve{P0: pt(5, 5), P1: pt(5, 5), P2: pt(5, 5), P3: pt(5, 5)},
	},
}
