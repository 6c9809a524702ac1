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

package main

import (
	"errors"
	"slices"

	"github.com/spf13/cobra"
	"github.com/textkit-dev/textkit/internal/tui"
)

func (a *app) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [A B]",
		Short: "Compare two texts interactively",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return errors.New("tui takes no arguments or two files")
			}
			if slices.Contains(args, "-") {
				return errors.New("tui can't read from stdin")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var x, y string
			if len(args) == 2 {
				var err error
				if x, err = a.read(args[0]); err != nil {
					return err
				}
				if y, err = a.read(args[1]); err != nil {
					return err
				}
			}
			return tui.Run(x, y, tui.Options{
				Granularity:      a.settings.Granularity,
				IgnoreCase:       a.settings.IgnoreCase,
				IgnoreWhitespace: a.settings.IgnoreWhitespace,
				Color:            a.color(a.stdout),
			})
		},
	}
}
