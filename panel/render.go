// seehuhn.de/go/turtle - turtle graphics for Go
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

package panel

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/turtle/raster"
)

// Renderer paints the lines of one Paint call.
//
// Paint calls Begin once, then Line for every segment in insertion order,
// then End.  Coordinates passed to Line are image coordinates, with y
// increasing downwards and pixel (x, y) covering [x, x+1) × [y, y+1).
// A Panel never uses its renderer from more than one goroutine at a time.
type Renderer interface {
	Begin(dst draw.Image, background color.Color)
	Line(from, to vec.Vec2, c color.Color)
	End() error
}

// RasterRenderer paints anti-aliased lines using a [raster.Rasteriser].
type RasterRenderer struct {
	// Width is the line width in pixels.
	Width float64

	// Cap is the cap style at both ends of each line.  With square caps
	// (the default), a line of zero length still marks one pixel.
	Cap graphics.LineCapStyle

	r    *raster.Rasteriser
	dst  draw.Image
	src  *image.Uniform
	mask *image.Alpha
	emit func(y, xMin int, coverage []float32)
}

// NewRasterRenderer returns a renderer for one pixel wide lines with square
// caps.
func NewRasterRenderer() *RasterRenderer {
	rr := &RasterRenderer{
		Width: 1,
		Cap:   graphics.LineCapSquare,
		src:   image.NewUniform(color.Black),
	}
	rr.emit = rr.composite
	return rr
}

// Begin implements the [Renderer] interface.
func (rr *RasterRenderer) Begin(dst draw.Image, background color.Color) {
	b := dst.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	if rr.r == nil {
		rr.r = raster.NewRasteriser(clip)
	} else {
		rr.r.Reset(clip)
	}
	rr.r.Width = rr.Width
	rr.r.Cap = rr.Cap

	if rr.mask == nil || rr.mask.Rect.Dx() < b.Dx() {
		rr.mask = image.NewAlpha(image.Rect(0, 0, b.Dx(), 1))
	}

	draw.Draw(dst, b, image.NewUniform(background), image.Point{}, draw.Src)
	rr.dst = dst
}

// Line implements the [Renderer] interface.
func (rr *RasterRenderer) Line(from, to vec.Vec2, c color.Color) {
	rr.src.C = c
	rr.r.StrokeLine(from, to, rr.emit)
}

// End implements the [Renderer] interface.
func (rr *RasterRenderer) End() error {
	rr.dst = nil
	return nil
}

// composite blends one row of coverage values in the current colour
// over the destination image.
func (rr *RasterRenderer) composite(y, xMin int, coverage []float32) {
	for i, c := range coverage {
		rr.mask.Pix[i] = uint8(min(c*255+0.5, 255))
	}
	r := image.Rect(xMin, y, xMin+len(coverage), y+1)
	draw.DrawMask(rr.dst, r, rr.src, image.Point{}, rr.mask, image.Point{}, draw.Over)
}
