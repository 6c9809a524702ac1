// Copyright 2025 The textkit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// textkit compares, formats, converts and transforms text.
//
// Input is read from the file named on the command line or from stdin if there is none (or it
// is "-"). Defaults for most flags are read from $XDG_CONFIG_HOME/textkit/config.yaml.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/textkit-dev/textkit/internal/render"
	"github.com/textkit-dev/textkit/internal/settings"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// errDifferent makes the process exit with status 1 without printing an error.
var errDifferent = errors.New("inputs differ")

type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer

	configPath string
	verbose    bool
	noColor    bool

	settings settings.Settings
	logger   *slog.Logger
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		if errors.Is(err, errDifferent) {
			return 1
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "textkit",
		Short:         "Compare, format, convert and transform text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

			s, err := settings.Load(a.configPath)
			if err != nil {
				return err
			}
			a.settings = s
			a.logger.Debug("settings loaded", "path", a.configPath, "granularity", s.Granularity, "context", s.Context)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "settings file (default $XDG_CONFIG_HOME/textkit/config.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug information to stderr")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "never color the output")

	root.AddCommand(
		a.diffCmd(),
		a.fmtCmd(),
		a.convertCmd(),
		a.encodeCmd(),
		a.decodeCmd(),
		a.xml2jsonCmd(),
		a.strCmd(),
		a.tuiCmd(),
	)
	return root
}

// color reports whether output to w should be colored.
func (a *app) color(w io.Writer) bool {
	if a.noColor || a.settings.NoColor {
		return false
	}
	return termenv.NewOutput(w).EnvColorProfile() != termenv.Ascii
}

func (a *app) renderer() *render.Renderer {
	return render.New(a.stdout, a.color(a.stdout))
}
