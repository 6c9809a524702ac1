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

// Package markup parses HTML and XML into a small owned tree and prints it with one tag per line.
//
// The tree only knows three kinds of nodes: [Element], [Text] and [Comment]. Children are owned by
// their parent and there are no parent pointers; the tree is built once per call and never
// modified afterwards.
package markup

// Node is an [*Element], a [*Text] or a [*Comment].
type Node interface {
	node()
}

// Element is a tag with its attributes and children.
type Element struct {
	Tag      string
	Attrs    []Attribute
	Children []Node
}

// Attribute is a name="value" pair of an element, in source order.
type Attribute struct {
	Name, Value string
}

// Text is character data.
type Text struct {
	Data string
}

// Comment is the content of a comment without the delimiters.
type Comment struct {
	Data string
}

func (*Element) node() {}
func (*Text) node()    {}
func (*Comment) node() {}

// ParseError is returned if the input can't be turned into a tree at all. Err is the error of
// the underlying parser.
type ParseError struct {
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	return "markup: " + e.Msg + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// hasElementChild reports whether e has at least one element child.
func (e *Element) hasElementChild() bool {
	for _, c := range e.Children {
		if _, ok := c.(*Element); ok {
			return true
		}
	}
	return false
}

// textContent returns the concatenated text of all descendants of e, comments excluded.
func (e *Element) textContent() string {
	var buf []byte
	var walk func(n Node)
	walk = func(n Node) {
		switch n := n.(type) {
		case *Text:
			buf = append(buf, n.Data...)
		case *Element:
			for _, c := range n.Children {
				walk(c)
			}
		}
	}
	walk(e)
	return string(buf)
}
