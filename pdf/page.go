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

package pdf

import (
	"fmt"
	"strings"
)

// PageSize is a paper format.
type PageSize int

const (
	A4 PageSize = iota
	Letter
	Legal
)

// Paper dimensions in millimeters, portrait.
var paper = [...]struct {
	name          string
	width, height float64
}{
	A4:     {"a4", 210, 297},
	Letter: {"letter", 215.9, 279.4},
	Legal:  {"legal", 215.9, 355.6},
}

func (s PageSize) String() string {
	if s < 0 || int(s) >= len(paper) {
		return fmt.Sprintf("PageSize(%d)", int(s))
	}
	return paper[s].name
}

// ParsePageSize returns the page size named s ("a4", "letter" or "legal", case-insensitive).
func ParsePageSize(s string) (PageSize, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, p := range paper {
		if p.name == s {
			return PageSize(i), nil
		}
	}
	return 0, fmt.Errorf("unknown page size %q", s)
}

// Orientation of the page.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "portrait"
	case Landscape:
		return "landscape"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// ParseOrientation returns the orientation named s ("portrait" or "landscape").
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "portrait":
		return Portrait, nil
	case "landscape":
		return Landscape, nil
	}
	return 0, fmt.Errorf("unknown orientation %q", s)
}

// Page describes the printed page.
type Page struct {
	Size        PageSize
	Orientation Orientation
	Margin      float64 // Margin on all four sides in millimeters.
}

// DefaultPage is used when no page is given: A4, portrait, 15mm margins.
var DefaultPage = Page{Size: A4, Orientation: Portrait, Margin: 15}

const mmPerInch = 25.4

// validate reports whether the page can be printed.
func (p Page) validate() error {
	if p.Size < 0 || int(p.Size) >= len(paper) {
		return fmt.Errorf("invalid page size %v", p.Size)
	}
	if p.Orientation != Portrait && p.Orientation != Landscape {
		return fmt.Errorf("invalid orientation %v", p.Orientation)
	}
	w, h := p.dimensions()
	if p.Margin < 0 || 2*p.Margin >= min(w, h)*mmPerInch {
		return fmt.Errorf("invalid margin %vmm for %v paper", p.Margin, p.Size)
	}
	return nil
}

// dimensions returns the paper width and height in inches.
func (p Page) dimensions() (width, height float64) {
	d := paper[p.Size]
	width, height = d.width/mmPerInch, d.height/mmPerInch
	if p.Orientation == Landscape {
		width, height = height, width
	}
	return width, height
}

// margin returns the margin in inches.
func (p Page) margin() float64 {
	return p.Margin / mmPerInch
}
