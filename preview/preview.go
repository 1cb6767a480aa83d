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

// Package preview draws frames into images.
//
// This is a software stand-in for a real renderer, used to inspect the
// output of the rasterizers and to produce reference images.
package preview

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/dda"
)

// DefaultView is the region of the plane shown by a new Renderer.
var DefaultView = rect.Rect{LLx: -25, LLy: -25, URx: 25, URy: 25}

// Renderer draws frames into RGBA images.
type Renderer struct {
	// Width and Height are the image size in pixels.
	Width, Height int

	// View is the region of the plane mapped onto the image.
	// The y axis points up in the plane and down in the image.
	View rect.Rect

	// Background fills the image before anything is drawn.
	Background color.Color

	// LineWidth is the width of lines in device pixels.
	LineWidth float64
}

// New returns a Renderer for images of the given size, showing DefaultView.
func New(width, height int) *Renderer {
	return &Renderer{
		Width:      width,
		Height:     height,
		View:       DefaultView,
		Background: color.Black,
		LineWidth:  1,
	}
}

// CTM returns the transformation from plane coordinates to device pixels.
func (r *Renderer) CTM() matrix.Matrix {
	sx := float64(r.Width) / (r.View.URx - r.View.LLx)
	sy := float64(r.Height) / (r.View.URy - r.View.LLy)
	return matrix.Matrix{sx, 0, 0, -sy, -r.View.LLx * sx, r.View.URy * sy}
}

// Render draws the frame into a new image: first the quads, then the
// line list, then the polyline.
func (r *Renderer) Render(f dda.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)

	p := &painter{
		img: img,
		ras: vector.NewRasterizer(r.Width, r.Height),
		ctm: r.CTM(),
		w:   r.LineWidth,
	}
	for i := 0; i+3 < len(f.Quads); i += 4 {
		p.fillQuad(f.Quads[i : i+4])
	}
	for i := 0; i+1 < len(f.Lines); i += 2 {
		p.strokeSegment(f.Lines[i], f.Lines[i+1])
	}
	for i := 0; i+1 < len(f.Strip); i++ {
		p.strokeSegment(f.Strip[i], f.Strip[i+1])
	}

	dda.Logger().Debug("preview rendered",
		"width", r.Width, "height", r.Height,
		"quads", len(f.Quads)/4,
		"segments", len(f.Lines)/2+max(len(f.Strip)-1, 0))
	return img
}

// painter holds the state shared by the drawing helpers of one Render call.
type painter struct {
	img *image.RGBA
	ras *vector.Rasterizer
	ctm matrix.Matrix
	w   float64
}

// transform maps a point from the plane to device space.
func (p *painter) transform(pt dda.Point) vec.Vec2 {
	return vec.Vec2{
		X: p.ctm[0]*pt.X + p.ctm[2]*pt.Y + p.ctm[4],
		Y: p.ctm[1]*pt.X + p.ctm[3]*pt.Y + p.ctm[5],
	}
}

// fillQuad fills the polygon with four corners vs, using the color of the
// first vertex.
func (p *painter) fillQuad(vs []dda.Vertex) {
	var pts [4]vec.Vec2
	for i, v := range vs {
		pts[i] = p.transform(v.Pos)
	}
	p.fill(pts[:], vs[0].Color)
}

// strokeSegment draws the segment a-b as a rectangle of width p.w, using
// the color of a.
func (p *painter) strokeSegment(a, b dda.Vertex) {
	a0 := p.transform(a.Pos)
	b0 := p.transform(b.Pos)

	d := b0.Sub(a0)
	l := d.Length()
	if l < zeroLengthThreshold {
		return
	}
	n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(p.w / (2 * l))

	pts := [4]vec.Vec2{a0.Add(n), b0.Add(n), b0.Sub(n), a0.Sub(n)}
	p.fill(pts[:], a.Color)
}

// fill fills the closed polygon pts with color c.
func (p *painter) fill(pts []vec.Vec2, c dda.Color) {
	p.ras.Reset(p.img.Rect.Dx(), p.img.Rect.Dy())
	p.ras.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		p.ras.LineTo(float32(pt.X), float32(pt.Y))
	}
	p.ras.ClosePath()
	p.ras.Draw(p.img, p.img.Bounds(), image.NewUniform(toRGBA(c)), image.Point{})
}

// toRGBA converts a color with components in [0, 1] to 8-bit RGBA.
func toRGBA(c dda.Color) color.RGBA {
	return color.RGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: 255,
	}
}

func to8(x float64) uint8 {
	return uint8(max(0, min(255, int(x*255+0.5))))
}

// zeroLengthThreshold is the minimum device-space length of a segment.
// Shorter segments are not drawn.
const zeroLengthThreshold = 1e-10
