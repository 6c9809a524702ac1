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
)

type codec struct {
	name   string
	encode func(string) string
	decode func(string) (string, error)
}

var codecs = []codec{
	{"base64", encode.Base64Encode, func(s string) (string, error) {
		b, err := encode.Base64Decode(s)
		return string(b), err
	}},
	{"url", encode.URLEncode, encode.URLDecode},
	{"utf8", encode.UTF8Escape, encode.UTF8Unescape},
}

func (a *app) encodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode text as base64, URL component or escaped UTF-8",
	}
	for _, c := range codecs {
		cmd.AddCommand(a.transformCmd(c.name, "Encode as "+c.name, func(s string) (string, error) {
			return c.encode(s), nil
		}))
	}
	return cmd
}

func (a *app) decodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode base64, URL components or escaped UTF-8",
	}
	for _, c := range codecs {
		cmd.AddCommand(a.transformCmd(c.name, "Decode "+c.name, c.decode))
	}
	return cmd
}

func (a *app) xml2jsonCmd() *cobra.Command {
	return a.transformCmd("xml2json", "Convert an XML document to JSON", encode.XMLToJSON)
}

// transformCmd returns a command that reads its input, applies f and prints the result.
func (a *app) transformCmd(name, short string, f func(string) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [file]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.readInput(args)
			if err != nil {
				return err
			}
			out, err := f(src)
			if err != nil {
				return err
			}
			return a.write(out)
		},
	}
}
