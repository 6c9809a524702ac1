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
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/textkit-dev/textkit/convert"
	"github.com/textkit-dev/textkit/pdf"
)

func (a *app) convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert between markdown, HTML and PDF",
	}

	var document bool
	var title string
	md2html := a.transformCmd("md2html", "Convert markdown to HTML", func(src string) (string, error) {
		if document {
			return convert.MarkdownToDocument(title, src)
		}
		return convert.MarkdownToHTML(src)
	})
	md2html.Flags().BoolVar(&document, "document", false, "emit a complete, styled HTML document")
	md2html.Flags().StringVar(&title, "title", "Markdown Document", "document title for --document")

	html2md := a.transformCmd("html2md", "Convert HTML to markdown", convert.HTMLToMarkdown)

	cmd.AddCommand(md2html, html2md, a.pdfCmd("md2pdf", "markdown"), a.pdfCmd("html2pdf", "HTML"))
	return cmd
}

type pdfFlags struct {
	output      string
	pageSize    string
	orientation string
	margin      float64
	timeout     time.Duration
	chrome      string
	noSandbox   bool
}

func (a *app) pdfCmd(name, from string) *cobra.Command {
	var f pdfFlags
	cmd := &cobra.Command{
		Use:   name + " [file]",
		Short: "Print " + from + " to PDF with a headless Chrome",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pg, err := f.page()
			if err != nil {
				return err
			}
			src, err := a.readInput(args)
			if err != nil {
				return err
			}

			chrome := f.chrome
			if chrome == "" {
				chrome = a.settings.ChromePath
			}
			opts := []pdf.Option{pdf.WithTimeout(f.timeout)}
			if chrome != "" {
				opts = append(opts, pdf.WithChromePath(chrome))
			}
			if f.noSandbox {
				opts = append(opts, pdf.WithNoSandbox())
			}

			a.logger.Debug("starting browser", "chrome", chrome, "page", pg.Size, "orientation", pg.Orientation)
			c, err := pdf.NewConverter(opts...)
			if err != nil {
				return err
			}
			defer c.Close()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			var doc []byte
			if from == "markdown" {
				doc, err = c.FromMarkdown(ctx, src, pg)
			} else {
				doc, err = c.FromHTML(ctx, src, pg)
			}
			if err != nil {
				return err
			}

			if f.output == "" || f.output == "-" {
				_, err = a.stdout.Write(doc)
				return err
			}
			if err := os.WriteFile(f.output, doc, 0o644); err != nil {
				return err
			}
			a.logger.Info("wrote PDF", "path", f.output, "bytes", len(doc))
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	flags.StringVar(&f.pageSize, "page-size", pdf.DefaultPage.Size.String(), "page size: A4, Letter or Legal")
	flags.StringVar(&f.orientation, "orientation", pdf.DefaultPage.Orientation.String(), "portrait or landscape")
	flags.Float64Var(&f.margin, "margin", pdf.DefaultPage.Margin, "margin on all sides in millimeters")
	flags.DurationVar(&f.timeout, "timeout", 30*time.Second, "timeout for the conversion")
	flags.StringVar(&f.chrome, "chrome", "", "path to the Chrome executable")
	flags.BoolVar(&f.noSandbox, "no-sandbox", false, "run Chrome without sandbox (needed as root in containers)")
	return cmd
}

func (f *pdfFlags) page() (*pdf.Page, error) {
	size, err := pdf.ParsePageSize(f.pageSize)
	if err != nil {
		return nil, err
	}
	o, err := pdf.ParseOrientation(f.orientation)
	if err != nil {
		return nil, err
	}
	return &pdf.Page{Size: size, Orientation: o, Margin: f.margin}, nil
}
