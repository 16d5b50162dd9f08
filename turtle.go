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

// Package turtle implements turtle graphics: a pen with a position and a
// heading which draws straight lines on a [World] as it moves.
//
// Example:
//
//	t := turtle.NewDefault()
//	t.Turn(45)
//	t.Move(100)
//
// Headings are in degrees, with 0 pointing east and angles increasing
// anticlockwise.  Headings are never normalised: after Turn(270) and
// Turn(180) the heading is 450.
package turtle

import (
	"image/color"
	"math"

	"golang.org/x/image/colornames"

	"seehuhn.de/go/turtle/panel"
)

// Turtle draws turtle graphics in a [World].
//
// A Turtle must not be used by more than one goroutine at a time.  Different
// turtles may be used concurrently only if their World allows it.
type Turtle struct {
	world   World
	x, y    float64
	heading float64
	pen     color.Color
	down    bool
}

// New creates a turtle in the given world.  The turtle starts in the
// centre of the world, facing east, with a black pen which is down.
// Options can change the initial pen and heading.
//
// New panics with [ErrNoWorld] if world is nil.
func New(world World, opts ...Option) *Turtle {
	t := &Turtle{}
	t.SetWorld(world)
	t.reset()
	for _, opt := range opts {
		opt(t)
	}
	t.Center()
	return t
}

// NewDefault creates a turtle in a new, thread-safe 500×500 [panel.Panel].
// Use [Turtle.World] to retrieve the panel, or pass the same panel to
// [New] to let several turtles share it.
func NewDefault(opts ...Option) *Turtle {
	return New(panel.New(), opts...)
}

// reset moves the turtle to (0, 0), facing east, with a black pen which is
// down.
func (t *Turtle) reset() {
	t.x = 0
	t.y = 0
	t.heading = 0
	t.SetColor(colornames.Black)
	t.SetPenDown(true)
}

// Turn turns the turtle anticlockwise by delta degrees.
// Negative values turn clockwise.
func (t *Turtle) Turn(delta float64) { t.heading += delta }

// SetDirection points the turtle in the given direction, where 0 is east,
// 90 north, 180 west and 270 south.
func (t *Turtle) SetDirection(deg float64) { t.heading = deg }

// Move moves the turtle dist pixels in the direction it is facing.  If the
// pen is down a line is drawn from the start to the end position.
// Negative distances move backwards.
func (t *Turtle) Move(dist float64) {
	sin, cos := math.Sincos(t.heading * (math.Pi / 180))
	t.MoveTo(t.x+cos*dist, t.y+sin*dist)
}

// MoveTo moves the turtle to (x, y) without changing its heading.  If the
// pen is down a line is drawn as it goes.
func (t *Turtle) MoveTo(x, y float64) {
	if t.down {
		t.mustWorld().DrawLine(round(t.x), round(t.y), round(x), round(y), t.pen)
	}
	t.x = x
	t.y = y
}

// round converts a turtle coordinate to the nearest pixel.
// Only the drawn endpoints are rounded, the pose keeps full precision.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Clear removes all drawing from the turtle's world.
// The turtle itself is not moved.
func (t *Turtle) Clear() { t.mustWorld().Clear() }

// PenUp lifts the pen, so that moving does not draw.
func (t *Turtle) PenUp() { t.down = false }

// PenDown lowers the pen, so that moving draws a line.
func (t *Turtle) PenDown() { t.down = true }

// SetPenDown lowers the pen if down is true and lifts it otherwise.
func (t *Turtle) SetPenDown(down bool) { t.down = down }

// IsDown reports whether the pen is down.
func (t *Turtle) IsDown() bool { return t.down }

// SetColor sets the pen colour for lines drawn from now on.
func (t *Turtle) SetColor(c color.Color) { t.pen = c }

// Color returns the current pen colour.
func (t *Turtle) Color() color.Color { return t.pen }

// Center moves the turtle to the middle of its world without drawing.
// The pen state is unchanged afterwards.
func (t *Turtle) Center() {
	w, h := t.mustWorld().Size()
	t.jump(float64(w/2), float64(h/2))
}

// Origin moves the turtle to (0, 0), the bottom left corner of its world,
// without drawing.  The pen state is unchanged afterwards.
func (t *Turtle) Origin() {
	t.mustWorld()
	t.jump(0, 0)
}

// jump moves to (x, y) with the pen temporarily lifted.
func (t *Turtle) jump(x, y float64) {
	wasDown := t.IsDown()
	t.PenUp()
	t.MoveTo(x, y)
	t.SetPenDown(wasDown)
}

// X returns the turtle's current x position.
func (t *Turtle) X() float64 { return t.x }

// Y returns the turtle's current y position.
func (t *Turtle) Y() float64 { return t.y }

// Position returns the turtle's current position.
func (t *Turtle) Position() (x, y float64) { return t.x, t.y }

// Heading returns the direction the turtle is facing, in degrees.
func (t *Turtle) Heading() float64 { return t.heading }

// SetWorld moves the turtle into a different world, keeping its position,
// heading and pen.  It returns t to allow chaining.
func (t *Turtle) SetWorld(world World) *Turtle {
	t.world = world
	return t
}

// World returns the turtle's world.
func (t *Turtle) World() World { return t.world }

// StartBatchDrawing stops rendering lines until [Turtle.EndBatchDrawing] is
// called.  This is much faster when a large number of lines is drawn, and is
// required for worlds which are not thread-safe.
func (t *Turtle) StartBatchDrawing() { t.mustWorld().SuspendRepaint() }

// EndBatchDrawing renders all lines drawn since [Turtle.StartBatchDrawing].
func (t *Turtle) EndBatchDrawing() { t.mustWorld().ResumeRepaint() }

// Clone returns a new turtle with the same position, heading and pen, in the
// same world.  The two turtles move independently afterwards.
func (t *Turtle) Clone() *Turtle {
	c := *t
	return &c
}

// mustWorld returns the turtle's world, and panics with ErrNoWorld if there
// is none.
func (t *Turtle) mustWorld() World {
	if t.world == nil {
		panic(ErrNoWorld)
	}
	return t.world
}
