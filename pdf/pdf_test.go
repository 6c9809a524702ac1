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
	"bytes"
	"context"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chromePath returns a Chrome executable or "" if there is none.
func chromePath() string {
	if p := os.Getenv("TEXTKIT_CHROME"); p != "" {
		return p
	}
	for _, name := range []string{
		"chromium-browser", "chromium", "google-chrome", "google-chrome-stable", "chrome", "headless-shell",
	} {
		if p, err := exec.LookPath(name); err == nil {
			return p
		}
	}
	return ""
}

func newTestConverter(t *testing.T) *Converter {
	t.Helper()
	path := chromePath()
	if path == "" {
		t.Skip("skipping: Chrome not found")
	}
	c, err := NewConverter(WithChromePath(path), WithNoSandbox())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func isPDF(b []byte) bool {
	return bytes.HasPrefix(b, []byte("%PDF-"))
}

func TestFromHTML(t *testing.T) {
	c := newTestConverter(t)

	got, err := c.FromHTML(context.Background(), "<h1>Hello</h1>", nil)
	require.NoError(t, err)
	assert.True(t, isPDF(got), "output is not a PDF")

	got, err = c.FromHTML(context.Background(), "<p>wide</p>", &Page{Size: Legal, Orientation: Landscape, Margin: 5})
	require.NoError(t, err)
	assert.True(t, isPDF(got), "output is not a PDF")
}

func TestFromMarkdown(t *testing.T) {
	c := newTestConverter(t)

	got, err := c.FromMarkdown(context.Background(), "# Title\n\n- a\n- b\n", nil)
	require.NoError(t, err)
	assert.True(t, isPDF(got), "output is not a PDF")
}

func TestFromHTML_canceled(t *testing.T) {
	c := newTestConverter(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.FromHTML(ctx, "<p>x</p>", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFromHTML_invalidPage(t *testing.T) {
	c := newTestConverter(t)

	_, err := c.FromHTML(context.Background(), "<p>x</p>", &Page{Margin: -1})
	assert.Error(t, err)
}

func TestClose(t *testing.T) {
	c := newTestConverter(t)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	_, err := c.FromHTML(context.Background(), "<p>x</p>", nil)
	assert.ErrorIs(t, err, ErrClosed)
}
