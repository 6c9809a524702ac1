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
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

var errNoRoot = errors.New("no root element")

// ParseXML parses src as a well-formed XML document. The result holds the root element and any
// comments around it; the XML declaration, processing instructions and directives are dropped.
// Element and attribute names keep their prefix.
func ParseXML(src string) ([]Node, error) {
	d := xml.NewDecoder(strings.NewReader(src))
	d.Strict = true

	var (
		top   []Node
		stack []*Element
		root  bool
	)
	appendNode := func(n Node) {
		if len(stack) == 0 {
			top = append(top, n)
			return
		}
		parent := stack[len(stack)-1]
		parent.Children = append(parent.Children, n)
	}

	for {
		// RawToken keeps the prefixes as written instead of resolving them to namespace URLs.
		// Nesting is still checked in strict mode.
		tok, err := d.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Msg: "invalid XML", Err: err}
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			e := &Element{Tag: qualified(tok.Name)}
			for _, a := range tok.Attr {
				e.Attrs = append(e.Attrs, Attribute{Name: qualified(a.Name), Value: a.Value})
			}
			if len(stack) == 0 {
				if root {
					return nil, &ParseError{Msg: "invalid XML", Err: errors.New("multiple root elements")}
				}
				root = true
			}
			appendNode(e)
			stack = append(stack, e)
		case xml.EndElement:
			if len(stack) == 0 || stack[len(stack)-1].Tag != qualified(tok.Name) {
				return nil, &ParseError{Msg: "invalid XML", Err: errors.New("unexpected end element </" + qualified(tok.Name) + ">")}
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				appendNode(&Text{Data: string(tok)})
			}
		case xml.Comment:
			appendNode(&Comment{Data: string(tok)})
		}
	}
	if len(stack) > 0 {
		return nil, &ParseError{Msg: "invalid XML", Err: errors.New("unclosed element <" + stack[len(stack)-1].Tag + ">")}
	}
	if !root {
		return nil, &ParseError{Msg: "invalid XML", Err: errNoRoot}
	}
	return top, nil
}

func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// Root returns the first element in nodes, or nil if there is none.
func Root(nodes []Node) *Element {
	for _, n := range nodes {
		if e, ok := n.(*Element); ok {
			return e
		}
	}
	return nil
}

// FormatXML parses src as XML (see [ParseXML]) and renders it (see [Render]).
func FormatXML(src string) (string, error) {
	nodes, err := ParseXML(src)
	if err != nil {
		return "", err
	}
	return Render(nodes), nil
}
