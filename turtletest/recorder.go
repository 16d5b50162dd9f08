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

// Package turtletest provides an in-memory turtle world for tests.
package turtletest

import "image/color"

// Segment is a line recorded by a Recorder.
type Segment struct {
	X1, Y1, X2, Y2 int
	Color          color.Color
}

// Recorder is a turtle world which records the lines drawn, without
// rendering anything.  The zero value is not usable, use NewRecorder.
//
// A Recorder is not safe for concurrent use.
type Recorder struct {
	Segments []Segment

	// Repaints counts the renders the world would have performed.
	Repaints int

	// Clears counts the calls to Clear.
	Clears int

	Batching bool

	width, height int
}

// NewRecorder returns an empty recorder of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

// Clear implements the turtle.World interface.
func (r *Recorder) Clear() {
	r.Segments = nil
	r.Clears++
	r.Repaints++
}

// DrawLine implements the turtle.World interface.
func (r *Recorder) DrawLine(x1, y1, x2, y2 int, c color.Color) {
	r.Segments = append(r.Segments, Segment{X1: x1, Y1: y1, X2: x2, Y2: y2, Color: c})
	if !r.Batching {
		r.Repaints++
	}
}

// Size implements the turtle.World interface.
func (r *Recorder) Size() (width, height int) {
	return r.width, r.height
}

// SuspendRepaint implements the turtle.World interface.
func (r *Recorder) SuspendRepaint() {
	r.Batching = true
}

// ResumeRepaint implements the turtle.World interface.
func (r *Recorder) ResumeRepaint() {
	if !r.Batching {
		return
	}
	r.Batching = false
	r.Repaints++
}
