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
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/image/colornames"

	"seehuhn.de/go/turtle/panel"
)

// Renderer names.
const (
	rendererRaster = "raster"
	rendererGG     = "gg"
)

var errUnknownColor = errors.New("unknown colour")

// config holds the settings of the draw command.  It can be read from a
// TOML file and is then overridden by command line flags.
type config struct {
	Surface surfaceConfig `toml:"surface"`
	Pen     penConfig     `toml:"pen"`
}

type surfaceConfig struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	ThreadSafe bool    `toml:"thread_safe"`
	Renderer   string  `toml:"renderer"`
	Background string  `toml:"background"`
	LineWidth  float64 `toml:"line_width"`
}

type penConfig struct {
	Color   string  `toml:"color"`
	Heading float64 `toml:"heading"`
	Down    bool    `toml:"down"`
}

func defaultConfig() config {
	return config{
		Surface: surfaceConfig{
			Width:      panel.DefaultWidth,
			Height:     panel.DefaultHeight,
			ThreadSafe: true,
			Renderer:   rendererRaster,
			Background: "white",
			LineWidth:  1,
		},
		Pen: penConfig{
			Color: "black",
			Down:  true,
		},
	}
}

// loadConfig reads a configuration file.  Settings missing from the file
// keep their default values.
func loadConfig(path string) (config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config{}, fmt.Errorf("reading config: %w", err)
	}
	return parseConfig(string(data))
}

func parseConfig(data string) (config, error) {
	cfg := defaultConfig()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return config{}, fmt.Errorf("parsing config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return config{}, fmt.Errorf("parsing config: unknown keys %s", strings.Join(keys, ", "))
	}
	return cfg, nil
}

// validate checks the values which cannot be checked by the TOML decoder.
func (c *config) validate() error {
	s := &c.Surface
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid surface size %d×%d", s.Width, s.Height)
	}
	if s.LineWidth <= 0 {
		return fmt.Errorf("invalid line width %g", s.LineWidth)
	}
	switch s.Renderer {
	case rendererRaster, rendererGG:
	default:
		return fmt.Errorf("unknown renderer %q (want %q or %q)", s.Renderer, rendererRaster, rendererGG)
	}
	if _, err := lookupColor(s.Background); err != nil {
		return err
	}
	if _, err := lookupColor(c.Pen.Color); err != nil {
		return err
	}
	return nil
}

// lookupColor returns the colour with the given SVG 1.1 name.
func lookupColor(name string) (color.Color, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q", errUnknownColor, name)
	}
	return c, nil
}
