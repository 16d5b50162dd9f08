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
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/colornames"
)

func TestParseConfig(t *testing.T) {
	cfg, err := parseConfig(`
[surface]
width = 300
thread_safe = false
renderer = "gg"

[pen]
color = "Red"
heading = 90.0
`)
	if err != nil {
		t.Fatal(err)
	}

	want := defaultConfig()
	want.Surface.Width = 300
	want.Surface.ThreadSafe = false
	want.Surface.Renderer = rendererGG
	want.Pen.Color = "Red"
	want.Pen.Heading = 90
	if d := cmp.Diff(want, cfg); d != "" {
		t.Errorf("config (-want +got):\n%s", d)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("validate() = %v", err)
	}
}

func TestParseConfigErrors(t *testing.T) {
	for _, data := range []string{
		"[surface]\nwidth = \"wide\"\n",
		"[surface]\ncolour = \"red\"\n",
		"[pen\n",
	} {
		if _, err := parseConfig(data); err == nil {
			t.Errorf("parseConfig(%q) succeeded", data)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turtle.toml")
	if err := os.WriteFile(path, []byte("[surface]\nheight = 200\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Surface.Height != 200 || cfg.Surface.Width != 500 {
		t.Errorf("size = %d×%d, want 500×200", cfg.Surface.Width, cfg.Surface.Height)
	}

	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("loadConfig(missing) = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config)
	}{
		{"zero width", func(c *config) { c.Surface.Width = 0 }},
		{"negative height", func(c *config) { c.Surface.Height = -1 }},
		{"zero line width", func(c *config) { c.Surface.LineWidth = 0 }},
		{"unknown renderer", func(c *config) { c.Surface.Renderer = "opengl" }},
		{"unknown background", func(c *config) { c.Surface.Background = "blurple" }},
		{"unknown pen", func(c *config) { c.Pen.Color = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(&cfg)
			if err := cfg.validate(); err == nil {
				t.Error("validate() succeeded")
			}
		})
	}

	cfg := defaultConfig()
	if err := cfg.validate(); err != nil {
		t.Errorf("default config: %v", err)
	}
}

func TestLookupColor(t *testing.T) {
	c, err := lookupColor(" DarkOrange ")
	if err != nil || c != colornames.Darkorange {
		t.Errorf("lookupColor = %v, %v", c, err)
	}
	if _, err := lookupColor("blurple"); !errors.Is(err, errUnknownColor) {
		t.Errorf("lookupColor(blurple) error = %v", err)
	}
}
