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
	"image/color"

	"github.com/charmbracelet/log"
)

// Option configures a new Panel.
type Option func(*Panel)

// WithSize sets the panel dimensions in pixels.
func WithSize(width, height int) Option {
	return func(p *Panel) {
		p.width = width
		p.height = height
	}
}

// WithThreadSafe selects whether the panel may be painted while lines are
// being added.  The default is true.
func WithThreadSafe(threadSafe bool) Option {
	return func(p *Panel) { p.threadSafe = threadSafe }
}

// WithBackground sets the colour Paint fills the image with before drawing
// the lines.  The default is white.
func WithBackground(c color.Color) Option {
	return func(p *Panel) { p.background = c }
}

// WithRenderer sets the renderer used by Paint.
// The default is a new [RasterRenderer].
func WithRenderer(r Renderer) Option {
	return func(p *Panel) { p.renderer = r }
}

// WithRepaintFunc registers a function which is called every time the panel
// requests a repaint.  The function is called on the goroutine which caused
// the repaint and must not block.
func WithRepaintFunc(fn func()) Option {
	return func(p *Panel) { p.onRepaint = fn }
}

// WithLogger sets the logger for debug messages.
// By default nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(p *Panel) { p.logger = l }
}
