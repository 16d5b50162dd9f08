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

// Package raster converts line segments to anti-aliased pixel coverage.
//
// A Rasteriser strokes one straight segment at a time, using the configured
// width and cap style, and delivers coverage values in the range [0, 1]
// row by row.  All coordinates are device coordinates: pixel (x, y) covers
// the unit square [x, x+1) × [y, y+1).
package raster

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a non-horizontal polygon edge in device coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasteriser converts line segments and polygons to pixel coverage values.
// The caller creates one instance and reuses it; internal buffers grow as
// needed but never shrink.
//
// A Rasteriser must not be used by more than one goroutine at a time.
type Rasteriser struct {
	// Clip is the output region in device coordinates.
	// Must have integer-aligned coordinates.
	Clip rect.Rect

	// Flatness is the tolerance, in pixels, used when approximating
	// round caps by polygons.  Must be > 0.
	Flatness float64

	// Width is the stroke width in pixels.  Must be > 0.
	Width float64

	// Cap is the cap style used at both ends of a stroked segment.
	Cap graphics.LineCapStyle

	cover     []float32  // cover change per pixel; reused as output
	area      []float32  // area within pixel
	edges     []edge     // edges of the current polygon
	outline   []vec.Vec2 // stroke outline of the current segment
	crossings []float64  // y values where an edge crosses pixel boundaries

	bboxEmpty          bool
	bboxXMin, bboxXMax float64
	bboxYMin, bboxYMax float64
}

// NewRasteriser creates a new Rasteriser with the given clip rectangle,
// width 1, square caps and the default flatness.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		Clip:     clip,
		Flatness: defaultFlatness,
		Width:    1,
		Cap:      graphics.LineCapSquare,
	}
}

// Reset restores the default parameters and sets a new clip rectangle,
// keeping the capacity of all internal buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapSquare

	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.outline = r.outline[:0]
	r.crossings = r.crossings[:0]
}

// FillPolygon rasterises the closed polygon with the given vertices using
// the nonzero winding rule.  The coverage slice passed to emit is only valid
// for the duration of the callback.
func (r *Rasteriser) FillPolygon(pts []vec.Vec2, emit func(y, xMin int, coverage []float32)) {
	if len(pts) < 3 {
		return
	}
	r.edges = r.edges[:0]
	r.bboxEmpty = true
	for i := range pts {
		r.addEdge(pts[i], pts[(i+1)%len(pts)])
	}
	r.fill(emit)
}

// addEdge records the edge p0→p1 and grows the bounding box.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	dy := p1.Y - p0.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / dy,
	})

	if r.bboxEmpty {
		r.bboxXMin, r.bboxXMax = min(p0.X, p1.X), max(p0.X, p1.X)
		r.bboxYMin, r.bboxYMax = min(p0.Y, p1.Y), max(p0.Y, p1.Y)
		r.bboxEmpty = false
		return
	}
	r.bboxXMin = min(r.bboxXMin, p0.X, p1.X)
	r.bboxXMax = max(r.bboxXMax, p0.X, p1.X)
	r.bboxYMin = min(r.bboxYMin, p0.Y, p1.Y)
	r.bboxYMax = max(r.bboxYMax, p0.Y, p1.Y)
}

// bounds returns the pixel range touched by the current edges, clamped to
// the clip rectangle.
func (r *Rasteriser) bounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	// clamp before converting, so that far away points cannot overflow
	xMin = int(max(math.Floor(r.bboxXMin), r.Clip.LLx))
	xMax = int(min(math.Floor(r.bboxXMax)+1, r.Clip.URx))
	yMin = int(max(math.Floor(r.bboxYMin), r.Clip.LLy))
	yMax = int(min(math.Floor(r.bboxYMax)+1, r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// fill scans the bounding box row by row and emits the nonzero coverage.
func (r *Rasteriser) fill(emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.bounds()
	if !ok {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	for y := yMin; y < yMax; y++ {
		yTop, yBot := float64(y), float64(y+1)

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := range r.edges {
			e := &r.edges[i]
			if max(e.y0, e.y1) <= yTop || min(e.y0, e.y1) >= yBot {
				continue
			}
			r.accumulateEdge(e, y, xMin, xMax)
			touched = true
		}
		if !touched {
			continue
		}

		integrateScanline(r.cover, r.area)
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

// Coverage accumulation model:
//
// For each pixel we track
//
//	cover: signed vertical extent of edges crossing this pixel column
//	area:  cover weighted by how far left inside the pixel the crossing is
//
// integrateScanline turns these into the signed area of the polygon inside
// each pixel: coverage = accumulated cover of the pixels to the left + area.

// accumulateEdge adds the contribution of e within scanline y to the row
// buffers, which are indexed by x - bboxXMin.
func (r *Rasteriser) accumulateEdge(e *edge, y int, bboxXMin, bboxXMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xLeft := e.x0 + e.dxdy*(yTop-e.y0)
	xRight := e.x0 + e.dxdy*(yBot-e.y0)
	if xLeft > xRight {
		xLeft, xRight = xRight, xLeft
	}
	// Columns left of the box all fold into cover[0] and columns right of
	// it are dropped, so the edge only needs splitting inside the box.
	pixLeft := clampPix(xLeft, bboxXMin, bboxXMax)
	pixRight := clampPix(xRight, bboxXMin, bboxXMax)

	if pixRight < bboxXMin {
		// entirely left of the box: full coverage from the first column on
		c := sign * float32(yBot-yTop)
		r.cover[0] += c
		r.area[0] += c
		return
	}
	if pixLeft >= bboxXMax {
		return
	}

	if pixLeft == pixRight {
		r.accumulateSpan(e, yTop, yBot, sign, pixLeft, bboxXMin, bboxXMax)
		return
	}

	// Split the edge where it crosses vertical pixel boundaries.
	r.crossings = append(r.crossings[:0], yTop, yBot)
	dydx := 1 / e.dxdy
	for x := pixLeft + 1; x <= pixRight; x++ {
		yAtX := e.y0 + dydx*(float64(x)-e.x0)
		if yAtX > yTop && yAtX < yBot {
			r.crossings = append(r.crossings, yAtX)
		}
	}
	slices.Sort(r.crossings)

	for i := range len(r.crossings) - 1 {
		y0, y1 := r.crossings[i], r.crossings[i+1]
		if y1 <= y0 {
			continue
		}
		xMid := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
		r.accumulateSpan(e, y0, y1, sign, clampPix(xMid, bboxXMin, bboxXMax), bboxXMin, bboxXMax)
	}
}

// accumulateSpan adds the part of e between yTop and yBot, which lies
// within pixel column pix.
func (r *Rasteriser) accumulateSpan(e *edge, yTop, yBot float64, sign float32, pix, bboxXMin, bboxXMax int) {
	c := sign * float32(yBot-yTop)
	if pix < bboxXMin {
		r.cover[0] += c
		r.area[0] += c
		return
	}
	if pix >= bboxXMax {
		return
	}

	xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
	xFrac := xMid - float64(pix)

	idx := pix - bboxXMin
	r.cover[idx] += c
	r.area[idx] += c * float32(1-xFrac)
}

// clampPix returns the pixel column containing x, limited to the range
// bboxXMin-1 to bboxXMax.
func clampPix(x float64, bboxXMin, bboxXMax int) int {
	x = min(max(x, float64(bboxXMin-1)), float64(bboxXMax))
	return int(math.Floor(x))
}

// integrateScanline converts accumulated cover/area values to coverage
// using the nonzero winding rule.  The cover slice is overwritten.
func integrateScanline(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]

		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the non-zero part of coverage and its offset,
// or nil if all values are zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is the default polygon approximation tolerance for
	// round caps, in pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent for an edge to
	// contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the length below which a segment is treated as
	// a single point.
	zeroLengthThreshold = 1e-10
)
