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

package turtle_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/colornames"

	"seehuhn.de/go/turtle"
	"seehuhn.de/go/turtle/panel"
	"seehuhn.de/go/turtle/turtletest"
)

var (
	_ turtle.World = (*turtletest.Recorder)(nil)
	_ turtle.World = (*panel.Panel)(nil)
)

var black = colornames.Black

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func mustPanic(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		got := recover()
		if got == nil {
			t.Fatalf("no panic, want %v", want)
		}
		if err, ok := got.(error); !ok || !errors.Is(err, want) {
			t.Fatalf("panic %v, want %v", got, want)
		}
	}()
	fn()
}

func TestNew(t *testing.T) {
	r := turtletest.NewRecorder(500, 500)
	tu := turtle.New(r)

	if x, y := tu.Position(); x != 250 || y != 250 {
		t.Errorf("start position = (%g, %g), want (250, 250)", x, y)
	}
	if tu.Heading() != 0 {
		t.Errorf("start heading = %g, want 0", tu.Heading())
	}
	if !tu.IsDown() {
		t.Error("pen is up after New")
	}
	if tu.Color() != black {
		t.Errorf("start colour = %v, want black", tu.Color())
	}
	if len(r.Segments) != 0 || r.Repaints != 0 {
		t.Errorf("New drew %d segments, %d repaints", len(r.Segments), r.Repaints)
	}
	if tu.World() != r {
		t.Error("World() is not the world passed to New")
	}
}

func TestNewOddSize(t *testing.T) {
	tu := turtle.New(turtletest.NewRecorder(501, 301))
	if x, y := tu.Position(); x != 250 || y != 150 {
		t.Errorf("start position = (%g, %g), want (250, 150)", x, y)
	}
}

func TestNewDefault(t *testing.T) {
	tu := turtle.NewDefault()
	p, ok := tu.World().(*panel.Panel)
	if !ok {
		t.Fatalf("world is %T, want *panel.Panel", tu.World())
	}
	if x, y := tu.Position(); x != 250 || y != 250 {
		t.Errorf("start position = (%g, %g), want (250, 250)", x, y)
	}
	if p.Len() != 0 {
		t.Errorf("new default panel has %d segments", p.Len())
	}
	if !p.ThreadSafe() {
		t.Error("default panel is not thread-safe")
	}

	// every call creates its own panel
	if turtle.NewDefault().World() == tu.World() {
		t.Error("NewDefault turtles share a panel")
	}
}

func TestOptions(t *testing.T) {
	r := turtletest.NewRecorder(100, 100)
	tu := turtle.New(r,
		turtle.WithColor(colornames.Red),
		turtle.WithHeading(90),
		turtle.WithPenDown(false))

	if tu.Color() != colornames.Red {
		t.Errorf("colour = %v, want red", tu.Color())
	}
	if tu.Heading() != 90 {
		t.Errorf("heading = %g, want 90", tu.Heading())
	}
	if tu.IsDown() {
		t.Error("pen is down")
	}
	if x, y := tu.Position(); x != 50 || y != 50 {
		t.Errorf("position = (%g, %g), want (50, 50)", x, y)
	}
}

func TestMoveAndTurn(t *testing.T) {
	r := turtletest.NewRecorder(500, 500)
	tu := turtle.New(r)
	tu.Origin()

	tu.Move(100)
	if x, y := tu.Position(); x != 100 || y != 0 {
		t.Errorf("position after Move(100) = (%g, %g), want (100, 0)", x, y)
	}

	tu.Turn(90)
	tu.Move(50)
	if x, y := tu.Position(); !near(x, 100) || !near(y, 50) {
		t.Errorf("position after Move(50) = (%g, %g), want (100, 50)", x, y)
	}

	want := []turtletest.Segment{
		{X1: 0, Y1: 0, X2: 100, Y2: 0, Color: black},
		{X1: 100, Y1: 0, X2: 100, Y2: 50, Color: black},
	}
	if d := cmp.Diff(want, r.Segments); d != "" {
		t.Errorf("segments (-want +got):\n%s", d)
	}
	if r.Repaints != 2 {
		t.Errorf("%d repaints, want 2", r.Repaints)
	}
}

func TestHeadingNotNormalised(t *testing.T) {
	tu := turtle.New(turtletest.NewRecorder(10, 10))

	tu.Turn(270)
	tu.Turn(180)
	if got := tu.Heading(); got != 450 {
		t.Errorf("heading = %g, want 450", got)
	}
	tu.Turn(-1000)
	if got := tu.Heading(); got != -550 {
		t.Errorf("heading = %g, want -550", got)
	}
	tu.SetDirection(720)
	if got := tu.Heading(); got != 720 {
		t.Errorf("heading = %g, want 720", got)
	}
}

func TestMoveBack(t *testing.T) {
	for _, heading := range []float64{0, 30, 90, 135, -77, 400} {
		tu := turtle.New(turtletest.NewRecorder(500, 500))
		tu.SetDirection(heading)
		tu.MoveTo(12.3, 45.6)

		tu.Move(73.5)
		tu.Move(-73.5)
		if x, y := tu.Position(); !near(x, 12.3) || !near(y, 45.6) {
			t.Errorf("heading %g: position = (%g, %g), want (12.3, 45.6)",
				heading, x, y)
		}
	}

	// along the x axis the round trip is exact
	tu := turtle.New(turtletest.NewRecorder(500, 500))
	tu.Move(37)
	tu.Move(-37)
	if x, y := tu.Position(); x != 250 || y != 250 {
		t.Errorf("position = (%g, %g), want (250, 250)", x, y)
	}
}

func TestMoveDirections(t *testing.T) {
	cases := []struct {
		heading float64
		dx, dy  int
	}{
		{0, 10, 0},
		{90, 0, 10},
		{180, -10, 0},
		{270, 0, -10},
		{-90, 0, -10},
		{45, 7, 7},
	}
	for _, c := range cases {
		r := turtletest.NewRecorder(100, 100)
		tu := turtle.New(r, turtle.WithHeading(c.heading))
		tu.Move(10)

		want := []turtletest.Segment{
			{X1: 50, Y1: 50, X2: 50 + c.dx, Y2: 50 + c.dy, Color: black},
		}
		if d := cmp.Diff(want, r.Segments); d != "" {
			t.Errorf("heading %g (-want +got):\n%s", c.heading, d)
		}
	}
}

func TestPenUpDown(t *testing.T) {
	r := turtletest.NewRecorder(100, 100)
	tu := turtle.New(r)

	tu.PenUp()
	for range 5 {
		tu.Move(3)
		tu.MoveTo(1, 2)
	}
	if len(r.Segments) != 0 {
		t.Fatalf("pen up drew %d segments", len(r.Segments))
	}

	tu.PenDown()
	for i := range 5 {
		tu.Move(3)
		tu.MoveTo(float64(i), 2)
	}
	if len(r.Segments) != 10 {
		t.Errorf("pen down drew %d segments, want 10", len(r.Segments))
	}

	tu.SetPenDown(false)
	if tu.IsDown() {
		t.Error("SetPenDown(false) left the pen down")
	}
}

func TestSetColor(t *testing.T) {
	r := turtletest.NewRecorder(100, 100)
	tu := turtle.New(r)
	tu.Move(1)
	tu.SetColor(colornames.Green)
	tu.Move(1)

	if r.Segments[0].Color != black || r.Segments[1].Color != colornames.Green {
		t.Errorf("segment colours = %v, %v", r.Segments[0].Color, r.Segments[1].Color)
	}
}

func TestRounding(t *testing.T) {
	r := turtletest.NewRecorder(100, 100)
	tu := turtle.New(r)
	tu.Origin()

	tu.MoveTo(2.5, -2.5)
	tu.MoveTo(-0.6, 0.4)
	tu.MoveTo(-1.5, 7.49)

	want := []turtletest.Segment{
		{X1: 0, Y1: 0, X2: 3, Y2: -2, Color: black},
		{X1: 3, Y1: -2, X2: -1, Y2: 0, Color: black},
		{X1: -1, Y1: 0, X2: -1, Y2: 7, Color: black},
	}
	if d := cmp.Diff(want, r.Segments); d != "" {
		t.Errorf("segments (-want +got):\n%s", d)
	}
}

// TestNoDrift checks that small moves are rounded from the exact position
// and not from the previous rounded endpoint.
func TestNoDrift(t *testing.T) {
	r := turtletest.NewRecorder(100, 100)
	tu := turtle.New(r)
	tu.Origin()

	for range 8 {
		tu.Move(0.25)
	}
	wantX := []int{0, 1, 1, 1, 1, 2, 2, 2}
	for i, s := range r.Segments {
		if s.X2 != wantX[i] {
			t.Errorf("segment %d ends at x=%d, want %d", i, s.X2, wantX[i])
		}
	}
	if tu.X() != 2 {
		t.Errorf("x = %g, want 2", tu.X())
	}
}

func TestCenterOrigin(t *testing.T) {
	for _, down := range []bool{true, false} {
		r := turtletest.NewRecorder(200, 100)
		tu := turtle.New(r, turtle.WithPenDown(down))
		tu.MoveTo(10, 20)
		n := len(r.Segments)

		tu.Origin()
		if x, y := tu.Position(); x != 0 || y != 0 {
			t.Errorf("Origin: position = (%g, %g)", x, y)
		}
		tu.Center()
		if x, y := tu.Position(); x != 100 || y != 50 {
			t.Errorf("Center: position = (%g, %g)", x, y)
		}

		if len(r.Segments) != n {
			t.Errorf("down=%t: Center and Origin drew %d segments", down, len(r.Segments)-n)
		}
		if tu.IsDown() != down {
			t.Errorf("down=%t: pen state changed", down)
		}
	}
}

func TestClear(t *testing.T) {
	r := turtletest.NewRecorder(100, 100)
	tu := turtle.New(r)
	tu.Turn(30)
	tu.Move(20)
	x, y := tu.Position()

	tu.StartBatchDrawing()
	tu.Move(5)
	tu.Clear()

	if len(r.Segments) != 0 || r.Clears != 1 {
		t.Errorf("after Clear: %d segments, %d clears", len(r.Segments), r.Clears)
	}
	if !r.Batching {
		t.Error("Clear ended batching")
	}
	tu.Move(-5)
	if nx, ny := tu.Position(); !near(nx, x) || !near(ny, y) || tu.Heading() != 30 {
		t.Errorf("Clear changed the pose to (%g, %g) heading %g", nx, ny, tu.Heading())
	}
}

func TestBatchDrawing(t *testing.T) {
	r := turtletest.NewRecorder(500, 500)
	tu := turtle.New(r)
	tu.Move(1)
	before := r.Repaints

	tu.StartBatchDrawing()
	for i := range 1000 {
		tu.Turn(float64(i))
		tu.Move(2)
	}
	if r.Repaints != before {
		t.Errorf("%d repaints while batching", r.Repaints-before)
	}
	tu.EndBatchDrawing()
	if r.Repaints != before+1 {
		t.Errorf("%d repaints after EndBatchDrawing, want 1", r.Repaints-before)
	}
	if len(r.Segments) != 1001 {
		t.Errorf("%d segments, want 1001", len(r.Segments))
	}
}

func TestClone(t *testing.T) {
	r := turtletest.NewRecorder(100, 100)
	tu := turtle.New(r, turtle.WithColor(colornames.Blue), turtle.WithHeading(33))
	tu.MoveTo(12.5, 7.25)
	tu.PenUp()

	c := tu.Clone()
	if c == tu {
		t.Fatal("Clone returned the same turtle")
	}
	if c.X() != tu.X() || c.Y() != tu.Y() || c.Heading() != tu.Heading() ||
		c.Color() != tu.Color() || c.IsDown() != tu.IsDown() {
		t.Error("clone differs from original")
	}
	if c.World() != tu.World() {
		t.Error("clone has a different world")
	}

	c.PenDown()
	c.Move(10)
	c.Turn(5)
	if tu.X() != 12.5 || tu.Y() != 7.25 || tu.Heading() != 33 || tu.IsDown() {
		t.Error("moving the clone changed the original")
	}
	if len(r.Segments) != 2 {
		t.Errorf("%d segments in shared world, want 2", len(r.Segments))
	}
}

func TestSetWorld(t *testing.T) {
	r1 := turtletest.NewRecorder(100, 100)
	r2 := turtletest.NewRecorder(100, 100)
	tu := turtle.New(r1)

	tu.SetWorld(r2).Move(10)
	if len(r1.Segments) != 0 || len(r2.Segments) != 1 {
		t.Errorf("segments: %d in old world, %d in new world", len(r1.Segments), len(r2.Segments))
	}
	if tu.X() != 60 {
		t.Errorf("SetWorld changed the position to x=%g", tu.X())
	}
}

func TestSharedPanel(t *testing.T) {
	p := panel.New(panel.WithSize(100, 100))
	a := turtle.New(p, turtle.WithColor(colornames.Red))
	b := turtle.New(p, turtle.WithColor(colornames.Blue), turtle.WithHeading(90))

	a.Move(10)
	b.Move(10)
	a.Move(10)

	want := []panel.Segment{
		{X1: 50, Y1: 50, X2: 60, Y2: 50, Color: colornames.Red},
		{X1: 50, Y1: 50, X2: 50, Y2: 60, Color: colornames.Blue},
		{X1: 60, Y1: 50, X2: 70, Y2: 50, Color: colornames.Red},
	}
	if d := cmp.Diff(want, p.Segments()); d != "" {
		t.Errorf("segments (-want +got):\n%s", d)
	}
}

func TestNoWorld(t *testing.T) {
	mustPanic(t, turtle.ErrNoWorld, func() { turtle.New(nil) })

	tu := turtle.New(turtletest.NewRecorder(10, 10))
	tu.SetWorld(nil)

	// pure state changes do not need a world
	tu.Turn(10)
	tu.PenUp()
	tu.Move(3)
	tu.PenDown()

	mustPanic(t, turtle.ErrNoWorld, func() { tu.Move(1) })
	mustPanic(t, turtle.ErrNoWorld, func() { tu.MoveTo(1, 1) })
	mustPanic(t, turtle.ErrNoWorld, func() { tu.Clear() })
	mustPanic(t, turtle.ErrNoWorld, func() { tu.Center() })
	mustPanic(t, turtle.ErrNoWorld, func() { tu.Origin() })
	mustPanic(t, turtle.ErrNoWorld, func() { tu.StartBatchDrawing() })
	mustPanic(t, turtle.ErrNoWorld, func() { tu.EndBatchDrawing() })
}

func TestClosedPanel(t *testing.T) {
	p := panel.New()
	tu := turtle.New(p)
	p.Close()

	mustPanic(t, panel.ErrClosed, func() { tu.Move(1) })
	mustPanic(t, panel.ErrClosed, func() { tu.Center() })
}

func Example() {
	r := turtletest.NewRecorder(100, 100)
	t := turtle.New(r)
	for range 4 {
		t.Move(20)
		t.Turn(90)
	}
	for _, s := range r.Segments {
		fmt.Printf("(%d,%d)-(%d,%d)\n", s.X1, s.Y1, s.X2, s.Y2)
	}
	// Output:
	// (50,50)-(70,50)
	// (70,50)-(70,70)
	// (70,70)-(50,70)
	// (50,70)-(50,50)
}
