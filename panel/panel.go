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

// Package panel implements a turtle world which stores line segments and
// paints them into an image.
//
// A Panel does not show anything on screen by itself.  A presentation layer
// (for example the window package) registers a repaint callback and calls
// [Panel.Paint] from its own goroutine whenever the callback fires.
//
// # Thread safety
//
// By default a Panel keeps its segments in a copy-on-write list, so that
// Paint may run concurrently with DrawLine and Clear.  Every new segment
// copies the whole list, which gets slow after a few thousand lines.
// Panels created with WithThreadSafe(false) append in constant time, but
// must only be painted while no lines are being added.  This is the case
// if all drawing happens between SuspendRepaint and ResumeRepaint, because
// Paint does not read the segments while repainting is suspended.
package panel

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Default panel dimensions in pixels.
const (
	DefaultWidth  = 500
	DefaultHeight = 500
)

// ErrClosed is the panic value used when a closed Panel is used.
var ErrClosed = errors.New("panel: use of closed panel")

// Segment is a straight line recorded by a Panel.  Coordinates are in
// pixels, with y increasing upwards from the bottom edge of the panel.
type Segment struct {
	X1, Y1, X2, Y2 int
	Color          color.Color
}

// Panel is a turtle world which keeps all lines drawn in insertion order
// and paints them on request.
//
// The Panel methods may be called concurrently; see the package
// documentation for the restrictions of panels which are not thread-safe.
type Panel struct {
	width, height int
	threadSafe    bool
	background    color.Color
	logger        *log.Logger
	onRepaint     func()

	// toDevice maps panel coordinates to image coordinates.
	toDevice matrix.Matrix

	store    segmentStore
	batching atomic.Bool
	closed   atomic.Bool
	repaints atomic.Uint64

	paintMu  sync.Mutex // serialises Paint and SuspendRepaint, protects renderer
	renderer Renderer
}

// New creates a new, empty panel.  Without options, the panel is 500×500
// pixels, thread-safe, and paints black-on-white lines using a
// [RasterRenderer].
func New(opts ...Option) *Panel {
	p := &Panel{
		width:      DefaultWidth,
		height:     DefaultHeight,
		threadSafe: true,
		background: color.White,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.threadSafe {
		p.store = &cowStore{}
	} else {
		p.store = &sliceStore{}
	}
	if p.renderer == nil {
		p.renderer = NewRasterRenderer()
	}
	if p.logger == nil {
		p.logger = log.New(io.Discard)
	}

	// Flip the y axis and move integer coordinates to pixel centres.
	p.toDevice = matrix.Matrix{1, 0, 0, -1, 0.5, float64(p.height) + 0.5}

	return p
}

// DrawLine appends a line from (x1, y1) to (x2, y2) in colour c.
// Unless repainting is suspended, a repaint is requested.
func (p *Panel) DrawLine(x1, y1, x2, y2 int, c color.Color) {
	p.checkOpen()
	p.store.add(Segment{X1: x1, Y1: y1, X2: x2, Y2: y2, Color: c})
	if !p.batching.Load() {
		p.repaint()
	}
}

// Clear removes all lines and requests a repaint.  This happens even if
// repainting is suspended.
func (p *Panel) Clear() {
	p.checkOpen()
	p.store.reset()
	p.logger.Debug("panel cleared")
	p.repaint()
}

// Size returns the panel dimensions in pixels.
func (p *Panel) Size() (width, height int) {
	p.checkOpen()
	return p.width, p.height
}

// SuspendRepaint stops repainting after each new line until ResumeRepaint
// is called.  Calling SuspendRepaint while suspended has no effect.
//
// SuspendRepaint waits for a Paint call in progress to finish, so that no
// Paint reads the segments after SuspendRepaint has returned.
func (p *Panel) SuspendRepaint() {
	p.checkOpen()
	p.paintMu.Lock()
	defer p.paintMu.Unlock()
	if p.batching.CompareAndSwap(false, true) {
		p.logger.Debug("repaint suspended", "segments", len(p.store.snapshot()))
	}
}

// ResumeRepaint requests a single repaint which shows all lines, and
// returns to repainting after each new line.  Calling ResumeRepaint while
// not suspended has no effect.
func (p *Panel) ResumeRepaint() {
	p.checkOpen()
	if p.batching.CompareAndSwap(true, false) {
		p.logger.Debug("repaint resumed", "segments", len(p.store.snapshot()))
		p.repaint()
	}
}

// Batching reports whether repainting is currently suspended.
func (p *Panel) Batching() bool {
	return p.batching.Load()
}

// ThreadSafe reports whether the panel may be painted while lines are added.
func (p *Panel) ThreadSafe() bool {
	return p.threadSafe
}

// Repaints returns the number of repaints requested so far.  Presentation
// layers can compare this with the value at their last Paint to decide
// whether the image is out of date.
func (p *Panel) Repaints() uint64 {
	return p.repaints.Load()
}

// Len returns the number of stored segments.
func (p *Panel) Len() int {
	return len(p.store.snapshot())
}

// Segments returns a copy of the stored segments in insertion order.
func (p *Panel) Segments() []Segment {
	return slices.Clone(p.store.snapshot())
}

// Close marks the panel as torn down.  All later calls to DrawLine, Clear,
// Size, SuspendRepaint, ResumeRepaint and Paint panic with [ErrClosed].
func (p *Panel) Close() {
	if !p.closed.Swap(true) {
		p.logger.Debug("panel closed", "segments", len(p.store.snapshot()))
	}
}

// Paint renders all stored segments into dst, which should have the panel's
// size and its origin at (0, 0).  The background is filled first and the
// segments are painted in insertion order, so later lines cover earlier
// ones.
//
// While repainting is suspended, Paint leaves dst unchanged and returns
// false.
func (p *Panel) Paint(dst draw.Image) (bool, error) {
	p.checkOpen()
	p.paintMu.Lock()
	defer p.paintMu.Unlock()
	if p.batching.Load() {
		return false, nil
	}

	segs := p.store.snapshot()
	p.renderer.Begin(dst, p.background)
	for i := range segs {
		s := &segs[i]
		p.renderer.Line(p.device(s.X1, s.Y1), p.device(s.X2, s.Y2), s.Color)
	}
	if err := p.renderer.End(); err != nil {
		p.logger.Error("paint failed", "segments", len(segs), "err", err)
		return true, fmt.Errorf("panel: paint: %w", err)
	}
	return true, nil
}

// device converts panel coordinates to image coordinates.
func (p *Panel) device(x, y int) vec.Vec2 {
	m := p.toDevice
	fx, fy := float64(x), float64(y)
	return vec.Vec2{
		X: m[0]*fx + m[2]*fy + m[4],
		Y: m[1]*fx + m[3]*fy + m[5],
	}
}

func (p *Panel) repaint() {
	p.repaints.Add(1)
	if p.onRepaint != nil {
		p.onRepaint()
	}
}

func (p *Panel) checkOpen() {
	if p.closed.Load() {
		panic(ErrClosed)
	}
}
