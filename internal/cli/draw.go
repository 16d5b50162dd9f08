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

package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"seehuhn.de/go/turtle"
	"seehuhn.de/go/turtle/panel"
	"seehuhn.de/go/turtle/panel/ggrender"
	"seehuhn.de/go/turtle/programs"
	"seehuhn.de/go/turtle/window"
)

// drawFlags holds the command line flags of the draw command.
type drawFlags struct {
	width, height int
	unsafe        bool
	renderer      string
	color         string
	background    string
	lineWidth     float64
}

func newDrawCmd(root *rootOpts) *cobra.Command {
	var flags drawFlags

	cmd := &cobra.Command{
		Use:   "draw <program>",
		Short: "Run a turtle program and show the drawing in a window",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return programs.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, ok := programs.All[args[0]]
			if !ok {
				return fmt.Errorf("unknown program %q, see 'turtle list'", args[0])
			}
			cfg, err := root.config()
			if err != nil {
				return err
			}
			flags.apply(cmd, &cfg)
			if err := cfg.validate(); err != nil {
				return err
			}
			return runDraw(cmd.Context(), cfg, prog)
		},
	}

	f := cmd.Flags()
	f.IntVar(&flags.width, "width", panel.DefaultWidth, "surface width in pixels")
	f.IntVar(&flags.height, "height", panel.DefaultHeight, "surface height in pixels")
	f.BoolVar(&flags.unsafe, "unsafe", false, "use the fast store which is not thread-safe")
	f.StringVar(&flags.renderer, "renderer", rendererRaster, "line renderer: raster or gg")
	f.StringVar(&flags.color, "color", "black", "initial pen colour")
	f.StringVar(&flags.background, "background", "white", "background colour")
	f.Float64Var(&flags.lineWidth, "line-width", 1, "line width in pixels")

	return cmd
}

// apply overrides the settings in cfg with the flags given on the command
// line.
func (f *drawFlags) apply(cmd *cobra.Command, cfg *config) {
	set := cmd.Flags().Changed
	if set("width") {
		cfg.Surface.Width = f.width
	}
	if set("height") {
		cfg.Surface.Height = f.height
	}
	if set("unsafe") {
		cfg.Surface.ThreadSafe = !f.unsafe
	}
	if set("renderer") {
		cfg.Surface.Renderer = f.renderer
	}
	if set("color") {
		cfg.Pen.Color = f.color
	}
	if set("background") {
		cfg.Surface.Background = f.background
	}
	if set("line-width") {
		cfg.Surface.LineWidth = f.lineWidth
	}
}

// scene is a panel together with the turtle drawing on it.
type scene struct {
	panel  *panel.Panel
	turtle *turtle.Turtle
	close  func() error
}

// newScene creates the panel, renderer and turtle described by cfg.
// The configuration must have been validated.
func newScene(cfg config, logger *log.Logger) (*scene, error) {
	bg, err := lookupColor(cfg.Surface.Background)
	if err != nil {
		return nil, err
	}
	pen, err := lookupColor(cfg.Pen.Color)
	if err != nil {
		return nil, err
	}

	s := &scene{close: func() error { return nil }}
	var r panel.Renderer
	switch cfg.Surface.Renderer {
	case rendererGG:
		gr := ggrender.New()
		gr.Width = cfg.Surface.LineWidth
		r = gr
		s.close = gr.Close
	default:
		rr := panel.NewRasterRenderer()
		rr.Width = cfg.Surface.LineWidth
		r = rr
	}

	s.panel = panel.New(
		panel.WithSize(cfg.Surface.Width, cfg.Surface.Height),
		panel.WithThreadSafe(cfg.Surface.ThreadSafe),
		panel.WithBackground(bg),
		panel.WithRenderer(r),
		panel.WithLogger(logger))
	s.turtle = turtle.New(s.panel,
		turtle.WithColor(pen),
		turtle.WithHeading(cfg.Pen.Heading),
		turtle.WithPenDown(cfg.Pen.Down))
	return s, nil
}

// release frees the renderer.  Errors are logged, since there is nothing
// left to do about them.
func (s *scene) release(logger *log.Logger) {
	if err := s.close(); err != nil {
		logger.Warn("cannot release renderer", "err", err)
	}
}

// runDraw runs prog on a background goroutine and shows the panel until the
// window is closed.
func runDraw(ctx context.Context, cfg config, prog programs.Program) error {
	logger := loggerFromContext(ctx)

	s, err := newScene(cfg, logger)
	if err != nil {
		return err
	}
	defer s.release(logger)

	if !cfg.Surface.ThreadSafe && !prog.Bulk {
		logger.Warn("program draws outside of batches, painting may race with drawing",
			"program", prog.Name)
	}
	logger.Debug("starting program", "program", prog.Name,
		"width", cfg.Surface.Width, "height", cfg.Surface.Height,
		"threadSafe", cfg.Surface.ThreadSafe, "renderer", cfg.Surface.Renderer)

	go func() {
		p := newProgress(logger)
		prog.Run(s.turtle)
		x, y := s.turtle.Position()
		p.done("program finished", "program", prog.Name,
			"segments", s.panel.Len(), "x", x, "y", y, "heading", s.turtle.Heading())
	}()

	w := window.New(s.panel, window.WithLogger(logger))
	if err := w.Run(ctx, "Turtle: "+prog.Name); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return ctx.Err()
}
