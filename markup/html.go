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

package markup

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse parses src as HTML.
//
// Input that starts with a doctype or an <html> tag is parsed as a complete document and the
// result is the root <html> element, with the <head> and <body> elements the parser adds. Any
// other input is parsed as the content of a <body> element and the result are the top-level
// nodes. Malformed markup is repaired the way browsers do it.
func Parse(src string) ([]Node, error) {
	var (
		nodes []*html.Node
		err   error
	)
	if isDocument(src) {
		var doc *html.Node
		doc, err = html.Parse(strings.NewReader(src))
		if err == nil {
			nodes = rootElements(doc)
		}
	} else {
		context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
		nodes, err = html.ParseFragment(strings.NewReader(src), context)
	}
	if err != nil {
		return nil, &ParseError{Msg: "invalid HTML", Err: err}
	}

	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if c := convert(n); c != nil {
			out = append(out, c)
		}
	}
	return out, nil
}

func isDocument(src string) bool {
	head := strings.ToLower(strings.TrimSpace(src[:min(len(src), 512)]))
	return strings.HasPrefix(head, "<!doctype") || strings.HasPrefix(head, "<html")
}

// rootElements returns the element children of the document node.
func rootElements(doc *html.Node) []*html.Node {
	var out []*html.Node
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// convert turns n into a Node. Doctypes and other node types without a representation are
// dropped and yield nil.
func convert(n *html.Node) Node {
	switch n.Type {
	case html.TextNode:
		return &Text{Data: n.Data}
	case html.CommentNode:
		return &Comment{Data: n.Data}
	case html.ElementNode:
		e := &Element{Tag: n.Data}
		if len(n.Attr) > 0 {
			e.Attrs = make([]Attribute, 0, len(n.Attr))
		}
		for _, a := range n.Attr {
			name := a.Key
			if a.Namespace != "" {
				name = a.Namespace + ":" + a.Key
			}
			e.Attrs = append(e.Attrs, Attribute{Name: name, Value: a.Val})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if cc := convert(c); cc != nil {
				e.Children = append(e.Children, cc)
			}
		}
		return e
	default:
		return nil
	}
}

// Format parses src as HTML (see [Parse]) and renders it (see [Render]).
func Format(src string) (string, error) {
	nodes, err := Parse(src)
	if err != nil {
		return "", err
	}
	return Render(nodes), nil
}

// FormatReader is like [Format] but reads the markup from r. A read error is reported as a
// [*ParseError].
func FormatReader(r io.Reader) (string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return "", &ParseError{Msg: "reading input", Err: err}
	}
	return Format(string(src))
}
