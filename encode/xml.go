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

package encode

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/textkit-dev/textkit/markup"
)

// XMLToJSON converts the root element of an XML document to JSON, indented by two spaces.
//
// An element without child elements becomes its text content. Any other element becomes an
// object with one key per child element name, in document order. Repeated names turn into
// arrays. Attributes are added last under the key "@attributes". Attributes of elements without
// child elements are dropped.
//
// Malformed XML is reported as a [*markup.ParseError].
func XMLToJSON(src string) (string, error) {
	nodes, err := markup.ParseXML(src)
	if err != nil {
		return "", err
	}
	var compact bytes.Buffer
	writeElement(&compact, markup.Root(nodes))

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return "", err
	}
	return out.String(), nil
}

// group is the list of values for one child element name.
type group struct {
	name   string
	values []*markup.Element
}

func writeElement(b *bytes.Buffer, e *markup.Element) {
	var groups []*group
	byName := make(map[string]*group)
	for _, c := range e.Children {
		c, ok := c.(*markup.Element)
		if !ok {
			continue
		}
		g := byName[c.Tag]
		if g == nil {
			g = &group{name: c.Tag}
			byName[c.Tag] = g
			groups = append(groups, g)
		}
		g.values = append(g.values, c)
	}

	if len(groups) == 0 {
		writeString(b, textContent(e))
		return
	}

	b.WriteByte('{')
	for i, g := range groups {
		if i > 0 {
			b.WriteByte(',')
		}
		writeString(b, g.name)
		b.WriteByte(':')
		if len(g.values) == 1 {
			writeElement(b, g.values[0])
			continue
		}
		b.WriteByte('[')
		for j, v := range g.values {
			if j > 0 {
				b.WriteByte(',')
			}
			writeElement(b, v)
		}
		b.WriteByte(']')
	}
	if len(e.Attrs) > 0 {
		b.WriteString(`,"@attributes":{`)
		for i, a := range e.Attrs {
			if i > 0 {
				b.WriteByte(',')
			}
			writeString(b, a.Name)
			b.WriteByte(':')
			writeString(b, a.Value)
		}
		b.WriteByte('}')
	}
	b.WriteByte('}')
}

func textContent(e *markup.Element) string {
	var sb strings.Builder
	var walk func(n markup.Node)
	walk = func(n markup.Node) {
		switch n := n.(type) {
		case *markup.Text:
			sb.WriteString(n.Data)
		case *markup.Element:
			for _, c := range n.Children {
				walk(c)
			}
		}
	}
	walk(e)
	return sb.String()
}

// writeString writes s as a JSON string without escaping <, > and &.
func writeString(b *bytes.Buffer, s string) {
	enc := json.NewEncoder(b)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s) // Encoding a string can't fail.

	// Drop the newline added by Encode.
	b.Truncate(b.Len() - 1)
}
