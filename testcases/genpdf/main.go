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

// Command genpdf writes one PDF file per test case.
// Lines and quads are drawn as vector paths; for curve cases the exact
// Bézier curve is drawn underneath the sampled polyline.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/dda"
	"seehuhn.de/go/dda/preview"
	"seehuhn.de/go/dda/testcases"
)

func main() {
	outDir := flag.String("dir", "testdata/pdf", "output directory")
	size := flag.Float64("size", 500, "page width and height in points")
	lineWidth := flag.Float64("lw", 0.5, "line width in points")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	dda.SetLogger(logger)

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	scene := dda.NewScene()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")
			if err := generatePDF(scene, tc, pdfPath, *size, *lineWidth); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			logger.Info("wrote", "file", pdfPath)
		}
	}
}

func generatePDF(s dda.Scene, tc testcases.TestCase, pdfPath string, size, lineWidth float64) error {
	frame, err := tc.Frame(s)
	if err != nil {
		return err
	}

	paper := &pdf.Rectangle{
		URx: size,
		URy: size,
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, size, size)
	page.Fill()

	// Map the preview view onto the page.  Both PDF user space and the
	// plane have the y axis pointing up.
	view := preview.DefaultView
	scale := size / (view.URx - view.LLx)
	page.Transform(matrix.Matrix{scale, 0, 0, scale, -view.LLx * scale, -view.LLy * scale})

	for i := 0; i+3 < len(frame.Quads); i += 4 {
		q := frame.Quads[i : i+4]
		page.SetFillColor(gray(q[0].Color))
		drawPath(page, polyline(q, true))
		page.Fill()
	}

	page.SetLineWidth(lineWidth / scale)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	if c, ok := tc.Op.(testcases.Curve); ok {
		page.SetStrokeColor(color.DeviceGray(1))
		drawPath(page, cubic(c))
		page.Stroke()
	}

	for i := 0; i+1 < len(frame.Lines); i += 2 {
		page.SetStrokeColor(gray(frame.Lines[i].Color))
		drawPath(page, polyline(frame.Lines[i:i+2], false))
		page.Stroke()
	}

	if len(frame.Strip) > 1 {
		page.SetStrokeColor(gray(frame.Strip[0].Color))
		drawPath(page, polyline(frame.Strip, false))
		page.Stroke()
	}

	return page.Close()
}

// polyline returns the path through the vertex positions of m.
// If closed is set, the path is closed back to the first vertex.
func polyline(m dda.Mesh, closed bool) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(m) == 0 {
			return
		}
		var buf [1]vec.Vec2
		for i, v := range m {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			buf[0] = v.Pos.Vec2()
			if !yield(cmd, buf[:]) {
				return
			}
		}
		if closed {
			yield(path.CmdClose, nil)
		}
	}
}

// cubic returns the exact Bézier curve of a curve test case.
func cubic(c testcases.Curve) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [3]vec.Vec2
		buf[0] = c.P0.Vec2()
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		buf[0], buf[1], buf[2] = c.P1.Vec2(), c.P2.Vec2(), c.P3.Vec2()
		yield(path.CmdCubeTo, buf[:3])
	}
}

// drawPath adds the path p to the current path of the page.
func drawPath(page *document.Page, p path.Path) {
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

// gray converts an RGB color to a gray level using the Rec. 601 luma
// weights.
func gray(c dda.Color) color.Color {
	return color.DeviceGray(0.299*c.R + 0.587*c.G + 0.114*c.B)
}
