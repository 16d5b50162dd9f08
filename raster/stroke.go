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

package raster

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// StrokeLine rasterises the straight segment from a to b using Width and
// Cap.  The emit callback receives coverage row by row; its slice argument
// is valid only during the call.
//
// A segment of zero length produces a disc for round caps, an axis-aligned
// square for square caps and nothing for butt caps.
func (r *Rasteriser) StrokeLine(a, b vec.Vec2, emit func(y, xMin int, coverage []float32)) {
	d := r.Width / 2
	r.outline = r.outline[:0]

	seg := b.Sub(a)
	length := seg.Length()
	if length < zeroLengthThreshold {
		east := vec.Vec2{X: 1, Y: 0}
		switch r.Cap {
		case graphics.LineCapRound:
			r.addArc(a, d, east, 2*math.Pi, true)
		case graphics.LineCapSquare:
			r.addSquare(a, east, d)
		}
	} else {
		t := seg.Mul(1 / length)       // unit tangent
		n := vec.Vec2{X: -t.Y, Y: t.X} // unit normal (90° CCW)

		// +N side forward, cap at b, -N side backward, cap at a
		r.outline = append(r.outline, a.Add(n.Mul(d)), b.Add(n.Mul(d)))
		r.addCap(b, t, d)
		r.outline = append(r.outline, b.Sub(n.Mul(d)), a.Sub(n.Mul(d)))
		r.addCap(a, t.Mul(-1), d)
	}

	r.FillPolygon(r.outline, emit)
}

// addCap appends the cap at P to the outline.  T is the outward tangent
// direction and d is half the stroke width.
func (r *Rasteriser) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}

	switch r.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.outline = append(r.outline, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))

	case graphics.LineCapRound:
		// semicircle from +N through T to -N
		r.addArc(P, d, N, -math.Pi, false)
	}
}

// addArc appends arc vertices to the outline.  startDir is the unit vector
// from center to the start of the arc, sweep is in radians (positive = CCW).
func (r *Rasteriser) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	n := 1
	if radius > r.Flatness {
		// A chord spanning angle θ deviates from the circle by r(1-cos(θ/2)).
		angleStep := 2 * math.Acos(1-r.Flatness/radius)
		n = max(int(math.Ceil(math.Abs(sweep)/angleStep)), 1)
	}
	// a full circle needs at least a triangle
	if math.Abs(sweep) >= 2*math.Pi {
		n = max(n, 3)
	}

	dt := sweep / float64(n)
	i0 := 1
	if includeStart {
		i0 = 0
	}
	for i := i0; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}

// addSquare appends a square of side 2d centred at center, oriented by T.
func (r *Rasteriser) addSquare(center, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	r.outline = append(r.outline,
		center.Add(T.Mul(d)).Add(N.Mul(d)),
		center.Add(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Add(N.Mul(d)),
	)
}
