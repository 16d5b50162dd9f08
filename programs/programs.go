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

// Package programs contains named turtle programs for the turtle command.
package programs

import (
	"image/color"
	"slices"
	"strings"

	"golang.org/x/image/colornames"

	"seehuhn.de/go/turtle"
)

// Program is a turtle drawing which can be selected by name.
type Program struct {
	Name        string
	Description string

	// Bulk is set for programs which do all their drawing between
	// StartBatchDrawing and EndBatchDrawing.  Such programs can use a
	// world which is not thread-safe.
	Bulk bool

	// Run draws the picture, starting from the turtle's current position,
	// heading and pen.  The turtle command places it in the centre of its
	// world with the configured pen, by default facing east with the pen
	// down.
	Run func(t *turtle.Turtle)
}

// All maps program names to programs.
var All = map[string]Program{
	"initials": {
		Name:        "initials",
		Description: "the letters K and N",
		Run:         Initials,
	},
	"rainbow": {
		Name:        "rainbow",
		Description: "a square, a triangle, a rectangle and a cross in four colours",
		Run:         Rainbow,
	},
	"spiral": {
		Name:        "spiral",
		Description: "a square spiral",
		Run:         Spiral,
	},
	"star": {
		Name:        "star",
		Description: "a five pointed star",
		Run:         Star,
	},
	"bulk": {
		Name:        "bulk",
		Description: "a spiral made of thousands of short lines",
		Bulk:        true,
		Run:         BulkSpiral,
	},
}

// Names returns the names of all programs in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(All))
	for name := range All {
		names = append(names, name)
	}
	slices.SortFunc(names, strings.Compare)
	return names
}

// Initials draws the letters K and N in blue.
func Initials(t *turtle.Turtle) {
	t.SetColor(colornames.Blue)

	// K
	t.PenUp()
	t.Turn(180)
	t.Move(30)
	t.Turn(-90)
	t.PenDown()
	t.Move(50)
	t.PenUp()
	t.Turn(180)
	t.Move(25)
	t.Turn(45)
	t.PenDown()
	t.Move(35)
	t.PenUp()
	t.Turn(180)
	t.Move(35)
	t.Turn(-90)
	t.PenDown()
	t.Move(35)

	// N
	t.PenUp()
	t.Turn(-45)
	t.Move(20)
	t.PenDown()
	t.Turn(-90)
	t.Move(50)
	t.PenUp()
	t.Turn(180)
	t.Move(50)
	t.Turn(-145)
	t.PenDown()
	t.Move(60)
	t.Turn(180)
	t.Turn(-35)
	t.Move(50)
}

// Rainbow draws a blue square, a green triangle, a yellow rectangle and a
// red cross.
func Rainbow(t *turtle.Turtle) {
	t.SetColor(colornames.Blue)
	t.PenUp()
	t.Turn(-135)
	t.Move(310)
	t.Turn(135)
	t.PenDown()
	for range 4 {
		t.Move(100)
		t.Turn(90)
	}

	t.Turn(90)
	t.PenUp()
	t.SetColor(colornames.Lime)
	t.Move(350)
	t.Turn(-90)
	t.PenDown()
	for range 3 {
		t.Move(100)
		t.Turn(120)
	}

	t.PenUp()
	t.Move(300)
	t.SetColor(colornames.Yellow)
	t.PenDown()
	for _, side := range []float64{100, 50, 100} {
		t.Move(side)
		t.Turn(90)
	}
	t.Move(50)

	t.PenUp()
	t.Move(240)
	t.SetColor(colornames.Red)
	t.PenDown()
	t.Turn(45)
	t.Move(150)
	t.PenUp()
	t.Turn(135)
	t.Move(105)
	t.PenDown()
	t.Turn(135)
	t.Move(150)
}

// Spiral draws a square spiral from the centre outwards.
func Spiral(t *turtle.Turtle) {
	for i := 1; i <= spiralSteps; i++ {
		t.Move(float64(4 * i))
		t.Turn(90)
	}
}

const spiralSteps = 60

// Star draws a five pointed star, ending where it started.
func Star(t *turtle.Turtle) {
	x, y := t.Position()
	t.SetColor(colornames.Goldenrod)
	t.PenUp()
	t.MoveTo(x-starSide/2, y+starSide/6)
	t.SetDirection(0)
	t.PenDown()
	for range 5 {
		t.Move(starSide)
		t.Turn(-144)
	}
}

const starSide = 200

var bulkPalette = []color.Color{
	colornames.Crimson,
	colornames.Darkorange,
	colornames.Gold,
	colornames.Seagreen,
	colornames.Royalblue,
	colornames.Darkviolet,
}

// BulkSpiral draws a spiral of many short lines.  All drawing happens in a
// single batch.
func BulkSpiral(t *turtle.Turtle) {
	t.StartBatchDrawing()
	defer t.EndBatchDrawing()

	for i := range bulkSteps {
		t.SetColor(bulkPalette[i/500%len(bulkPalette)])
		t.Move(float64(i) * 0.004)
		t.Turn(5)
	}
}

const bulkSteps = 5000
