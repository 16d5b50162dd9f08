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

// Package cli implements the turtle command.
//
// The commands are
//   - list: show the available turtle programs
//   - draw: run a turtle program and show the result in a window
//
// All commands accept --verbose (-v) for debug logging and --config to read
// settings from a TOML file.  The logger is passed to the commands through
// the context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// rootOpts holds the persistent flags of the root command.
type rootOpts struct {
	verbose    bool
	configPath string
}

// config returns the settings from the configuration file, or the defaults
// if no file was given.
func (o *rootOpts) config() (config, error) {
	if o.configPath == "" {
		return defaultConfig(), nil
	}
	return loadConfig(o.configPath)
}

// newRootCmd creates the turtle command with all subcommands.  Log messages
// are written to logOut.
func newRootCmd(logOut io.Writer) *cobra.Command {
	opts := &rootOpts{}

	root := &cobra.Command{
		Use:          "turtle",
		Short:        "Turtle graphics",
		Long:         "turtle runs turtle graphics programs and shows the drawings in a window.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logOut, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "read settings from a TOML `file`")

	root.AddCommand(newListCmd())
	root.AddCommand(newDrawCmd(opts))

	return root
}

// Execute runs the turtle command with the arguments from os.Args.
func Execute(ctx context.Context, logOut io.Writer) error {
	return newRootCmd(logOut).ExecuteContext(ctx)
}
