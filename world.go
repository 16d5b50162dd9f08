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

package turtle

import (
	"errors"
	"image/color"
)

// World is a drawing surface for turtles: it records and renders straight
// line segments and knows its size in pixels.
//
// Coordinates are in pixels, with the origin in the bottom left corner and
// y increasing upwards.  Several turtles may share one World.
type World interface {
	// Clear discards all lines drawn so far.
	Clear()

	// DrawLine records a line from (x1, y1) to (x2, y2) in colour c and
	// renders it, unless repainting is suspended.
	DrawLine(x1, y1, x2, y2 int, c color.Color)

	// Size returns the dimensions of the drawing area.
	Size() (width, height int)

	// SuspendRepaint stops rendering after each new line until
	// ResumeRepaint is called.
	SuspendRepaint()

	// ResumeRepaint renders all lines and returns to rendering after
	// each new line.
	ResumeRepaint()
}

// ErrNoWorld is the panic value used when a turtle needs its World but none
// is set.
var ErrNoWorld = errors.New("turtle: no world")
