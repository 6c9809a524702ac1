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
	"github.com/spf13/cobra"
	"github.com/textkit-dev/textkit/encode"
	"github.com/textkit-dev/textkit/markup"
	"github.com/textkit-dev/textkit/sqlfmt"
)

func (a *app) fmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Pretty print HTML, XML, SQL or JSON",
	}

	var indent string
	var minify bool
	jsonCmd := a.formatter("json", func(src string) (string, error) {
		if minify {
			return encode.MinifyJSON(src)
		}
		return encode.FormatJSON(src, indent)
	})
	jsonCmd.Flags().StringVar(&indent, "indent", "  ", "indentation for each level")
	jsonCmd.Flags().BoolVar(&minify, "minify", false, "remove all insignificant whitespace instead")

	cmd.AddCommand(
		a.formatter("html", markup.Format),
		a.formatter("xml", markup.FormatXML),
		a.formatter("sql", func(src string) (string, error) { return sqlfmt.Format(src), nil }),
		jsonCmd,
	)
	return cmd
}

func (a *app) formatter(lang string, format func(string) (string, error)) *cobra.Command {
	return a.transformCmd(lang, "Pretty print "+lang, func(src string) (string, error) {
		out, err := format(src)
		if err != nil {
			return "", err
		}
		return a.renderer().Highlight(out, lang), nil
	})
}
