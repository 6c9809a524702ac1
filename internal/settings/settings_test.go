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

package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/textkit-dev/textkit/textdiff"
)

func noEnv(string) string { return "" }

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_file(t *testing.T) {
	path := writeFile(t, `
granularity: lines
ignore_case: true
ignore_whitespace: true
context: 5
no_color: true
chrome_path: /opt/chrome
`)
	s, err := load(path, noEnv)
	require.NoError(t, err)
	assert.Equal(t, Settings{
		Granularity:      textdiff.Lines,
		IgnoreCase:       true,
		IgnoreWhitespace: true,
		Context:          5,
		NoColor:          true,
		ChromePath:       "/opt/chrome",
	}, s)
}

func TestLoad_partialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, "ignore_case: true\n")
	s, err := load(path, noEnv)
	require.NoError(t, err)
	assert.Equal(t, textdiff.Words, s.Granularity)
	assert.Equal(t, 3, s.Context)
	assert.True(t, s.IgnoreCase)
}

func TestLoad_zeroContext(t *testing.T) {
	path := writeFile(t, "context: 0\n")
	s, err := load(path, noEnv)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Context)
}

func TestLoad_missingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	s, err := load("", noEnv)
	require.NoError(t, err)
	assert.Equal(t, Default, s)
}

func TestLoad_defaultFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	path, err := DefaultPath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("granularity: chars\n"), 0o644))

	s, err := load("", noEnv)
	require.NoError(t, err)
	assert.Equal(t, textdiff.Chars, s.Granularity)
}

func TestLoad_missingExplicitFile(t *testing.T) {
	_, err := load(filepath.Join(t.TempDir(), "nope.yaml"), noEnv)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid-yaml", "granularity: [lines\n"},
		{"unknown-granularity", "granularity: paragraphs\n"},
		{"negative-context", "context: -1\n"},
		{"wrong-type", "ignore_case: maybe\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(writeFile(t, tt.content), noEnv)
			assert.Error(t, err)
		})
	}
}

func TestLoad_environment(t *testing.T) {
	path := writeFile(t, "granularity: lines\nchrome_path: /opt/chrome\n")
	s, err := load(path, env(map[string]string{
		"TEXTKIT_GRANULARITY": "chars",
		"TEXTKIT_NO_COLOR":    "1",
		"TEXTKIT_CHROME":      "/usr/bin/chromium",
	}))
	require.NoError(t, err)
	assert.Equal(t, textdiff.Chars, s.Granularity)
	assert.True(t, s.NoColor)
	assert.Equal(t, "/usr/bin/chromium", s.ChromePath)
}

func TestLoad_noColorConvention(t *testing.T) {
	s, err := load(writeFile(t, ""), env(map[string]string{"NO_COLOR": "1"}))
	require.NoError(t, err)
	assert.True(t, s.NoColor)
}

func TestLoad_invalidEnvironment(t *testing.T) {
	_, err := load(writeFile(t, ""), env(map[string]string{"TEXTKIT_GRANULARITY": "bytes"}))
	assert.ErrorContains(t, err, "TEXTKIT_GRANULARITY")
}
