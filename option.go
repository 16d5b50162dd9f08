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

import "image/color"

// Option configures a new Turtle.
type Option func(*Turtle)

// WithColor sets the initial pen colour.  The default is black.
func WithColor(c color.Color) Option {
	return func(t *Turtle) { t.SetColor(c) }
}

// WithPenDown sets the initial pen state.  The default is down.
func WithPenDown(down bool) Option {
	return func(t *Turtle) { t.SetPenDown(down) }
}

// WithHeading sets the initial heading in degrees.  The default is 0 (east).
func WithHeading(deg float64) Option {
	return func(t *Turtle) { t.SetDirection(deg) }
}
