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

// Package ggrender implements a panel renderer on top of the gg 2D
// graphics library.
package ggrender

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Renderer paints panel lines into a gg context and copies the result into
// the destination image.  It implements the panel.Renderer interface.
type Renderer struct {
	// Width is the line width in pixels.
	Width float64

	// Cap is the cap style at both ends of each line.
	Cap graphics.LineCapStyle

	ctx *gg.Context
	dst draw.Image
	err error
}

// New returns a renderer for one pixel wide lines with square caps.
func New() *Renderer {
	return &Renderer{
		Width: 1,
		Cap:   graphics.LineCapSquare,
	}
}

// Begin implements the panel.Renderer interface.
func (r *Renderer) Begin(dst draw.Image, background color.Color) {
	b := dst.Bounds()
	r.dst = dst
	r.err = nil

	w, h := max(b.Dx(), 1), max(b.Dy(), 1)
	if r.ctx == nil {
		r.ctx = gg.NewContext(w, h)
	} else if err := r.ctx.Resize(w, h); err != nil {
		r.err = fmt.Errorf("ggrender: resize to %d×%d: %w", w, h, err)
		return
	}

	r.ctx.ClearWithColor(gg.FromColor(background))
	r.ctx.SetLineWidth(r.Width)
	r.ctx.SetLineCap(lineCap(r.Cap))
}

// Line implements the panel.Renderer interface.
func (r *Renderer) Line(from, to vec.Vec2, c color.Color) {
	if r.err != nil {
		return
	}
	r.ctx.SetColor(c)
	r.ctx.DrawLine(from.X, from.Y, to.X, to.Y)
	if err := r.ctx.Stroke(); err != nil {
		r.err = fmt.Errorf("ggrender: stroke: %w", err)
	}
}

// End implements the panel.Renderer interface.  It returns the first error
// encountered since Begin.
func (r *Renderer) End() error {
	dst := r.dst
	r.dst = nil
	if r.err != nil {
		return r.err
	}
	draw.Draw(dst, dst.Bounds(), r.ctx.Image(), image.Point{}, draw.Src)
	return nil
}

// Close releases the resources held by the gg context.
func (r *Renderer) Close() error {
	if r.ctx == nil {
		return nil
	}
	err := r.ctx.Close()
	r.ctx = nil
	return err
}

func lineCap(c graphics.LineCapStyle) gg.LineCap {
	switch c {
	case graphics.LineCapRound:
		return gg.LineCapRound
	case graphics.LineCapButt:
		return gg.LineCapButt
	default:
		return gg.LineCapSquare
	}
}
