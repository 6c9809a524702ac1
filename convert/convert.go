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

// Package convert translates between Markdown and HTML.
package convert

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// GitHub flavored Markdown where every newline inside a paragraph is a line break. Raw HTML is
// passed through.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
		html.WithUnsafe(),
	),
)

// MarkdownToHTML renders src as an HTML fragment.
func MarkdownToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}

//go:embed document.html.tmpl
var documentText string

var documentTmpl = template.Must(template.New("document").Parse(documentText))

// Document wraps an HTML fragment in a standalone page with a readable default stylesheet.
func Document(title, body string) string {
	var sb strings.Builder
	err := documentTmpl.Execute(&sb, struct {
		Title string
		Body  template.HTML
	}{title, template.HTML(body)})
	if err != nil {
		// The template only prints strings.
		panic(err)
	}
	return sb.String()
}

// MarkdownToDocument renders src as a standalone HTML page, see [Document].
func MarkdownToDocument(title, src string) (string, error) {
	body, err := MarkdownToHTML(src)
	if err != nil {
		return "", err
	}
	return Document(title, body), nil
}

// HTMLToMarkdown converts src to Markdown with ATX headings, "-" bullets, fenced code blocks,
// "_" for emphasis, "**" for strong emphasis and "~~" for strikethrough.
func HTMLToMarkdown(src string) (string, error) {
	conv := md.NewConverter("", true, &md.Options{
		HeadingStyle:     "atx",
		HorizontalRule:   "---",
		BulletListMarker: "-",
		CodeBlockStyle:   "fenced",
		EmDelimiter:      "_",
		StrongDelimiter:  "**",
		LinkStyle:        "inlined",
	})
	conv.Use(plugin.Strikethrough("~~"))
	out, err := conv.ConvertString(src)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return out, nil
}
