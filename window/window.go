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

// Package window shows a [panel.Panel] in a desktop window.
//
// The window repaints the panel on the ebiten render goroutine, while turtle
// programs draw into the panel from other goroutines.
package window

import (
	"context"
	"image"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"seehuhn.de/go/turtle/panel"
)

// Window presents a panel.  It implements the ebiten.Game interface.
type Window struct {
	panel  *panel.Panel
	logger *log.Logger
	ctx    context.Context

	frame   *image.RGBA
	screen  *ebiten.Image
	valid   bool
	painted uint64 // repaint counter at the last successful paint
	err     error
}

// Option configures a new Window.
type Option func(*Window)

// WithLogger sets the logger for paint statistics and errors.
func WithLogger(l *log.Logger) Option {
	return func(w *Window) { w.logger = l }
}

// New creates a window showing p.
func New(p *panel.Panel, opts ...Option) *Window {
	width, height := p.Size()
	w := &Window{
		panel: p,
		frame: image.NewRGBA(image.Rect(0, 0, width, height)),
		ctx:   context.Background(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = log.New(io.Discard)
	}
	return w
}

// Run opens the window and blocks until it is closed or ctx is cancelled.
// This must be called from the main goroutine.
func (w *Window) Run(ctx context.Context, title string) error {
	w.ctx = ctx
	width, height := w.panel.Size()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	w.logger.Debug("opening window", "title", title, "width", width, "height", height)
	return ebiten.RunGame(w)
}

// Update implements the ebiten.Game interface.
func (w *Window) Update() error {
	if w.err != nil {
		return w.err
	}
	if w.ctx.Err() != nil {
		return ebiten.Termination
	}
	return nil
}

// Draw implements the ebiten.Game interface.
func (w *Window) Draw(screen *ebiten.Image) {
	changed, err := w.refresh()
	if err != nil {
		w.err = err
		return
	}
	if changed {
		if w.screen == nil {
			b := w.frame.Bounds()
			w.screen = ebiten.NewImage(b.Dx(), b.Dy())
		}
		w.screen.WritePixels(w.frame.Pix)
	}
	if w.screen != nil {
		screen.DrawImage(w.screen, nil)
	}
}

// Layout implements the ebiten.Game interface.  The window content always
// has the size of the panel.
func (w *Window) Layout(_, _ int) (int, int) {
	b := w.frame.Bounds()
	return b.Dx(), b.Dy()
}

// refresh repaints the frame if the panel has requested a repaint since the
// last paint.  It reports whether the frame has changed.
func (w *Window) refresh() (bool, error) {
	n := w.panel.Repaints()
	if w.valid && n == w.painted {
		return false, nil
	}

	painted, err := w.panel.Paint(w.frame)
	if err != nil {
		w.logger.Error("cannot paint", "err", err)
		return false, err
	}
	if !painted {
		return false, nil
	}

	w.logger.Debug("painted", "segments", w.panel.Len(), "repaints", n-w.painted)
	w.painted = n
	w.valid = true
	return true, nil
}
