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

// Package settings loads the defaults of the textkit command from a YAML file and the
// environment.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/textkit-dev/textkit/textdiff"
	"gopkg.in/yaml.v3"
)

// Settings are the defaults for command line flags.
type Settings struct {
	Granularity      textdiff.Granularity
	IgnoreCase       bool
	IgnoreWhitespace bool
	Context          int
	NoColor          bool
	ChromePath       string
}

// Default is used for everything neither the file nor the environment sets.
var Default = Settings{
	Granularity: textdiff.Words,
	Context:     3,
}

type file struct {
	Granularity      string `yaml:"granularity"`
	IgnoreCase       *bool  `yaml:"ignore_case"`
	IgnoreWhitespace *bool  `yaml:"ignore_whitespace"`
	Context          *int   `yaml:"context"`
	NoColor          *bool  `yaml:"no_color"`
	ChromePath       string `yaml:"chrome_path"`
}

// DefaultPath returns $XDG_CONFIG_HOME/textkit/config.yaml or the platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "textkit", "config.yaml"), nil
}

// Load reads the settings file at path and applies the environment overrides TEXTKIT_GRANULARITY,
// TEXTKIT_NO_COLOR (or NO_COLOR) and TEXTKIT_CHROME. If path is empty, the file at [DefaultPath]
// is used if it exists.
func Load(path string) (Settings, error) {
	return load(path, os.Getenv)
}

func load(path string, getenv func(string) string) (Settings, error) {
	s := Default

	explicit := path != ""
	if !explicit {
		var err error
		path, err = DefaultPath()
		if err != nil {
			path = ""
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := s.merge(data); err != nil {
				return Settings{}, fmt.Errorf("settings: %s: %w", path, err)
			}
		case !explicit && errors.Is(err, fs.ErrNotExist):
			// No settings file.
		default:
			return Settings{}, fmt.Errorf("settings: %w", err)
		}
	}

	if v := getenv("TEXTKIT_GRANULARITY"); v != "" {
		g, err := textdiff.ParseGranularity(v)
		if err != nil {
			return Settings{}, fmt.Errorf("settings: TEXTKIT_GRANULARITY: %w", err)
		}
		s.Granularity = g
	}
	if getenv("TEXTKIT_NO_COLOR") != "" || getenv("NO_COLOR") != "" {
		s.NoColor = true
	}
	if v := getenv("TEXTKIT_CHROME"); v != "" {
		s.ChromePath = v
	}
	return s, nil
}

func (s *Settings) merge(data []byte) error {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}
	if f.Granularity != "" {
		g, err := textdiff.ParseGranularity(f.Granularity)
		if err != nil {
			return err
		}
		s.Granularity = g
	}
	if f.IgnoreCase != nil {
		s.IgnoreCase = *f.IgnoreCase
	}
	if f.IgnoreWhitespace != nil {
		s.IgnoreWhitespace = *f.IgnoreWhitespace
	}
	if f.Context != nil {
		if *f.Context < 0 {
			return fmt.Errorf("context must not be negative, got %d", *f.Context)
		}
		s.Context = *f.Context
	}
	if f.NoColor != nil {
		s.NoColor = *f.NoColor
	}
	if f.ChromePath != "" {
		s.ChromePath = f.ChromePath
	}
	return nil
}
