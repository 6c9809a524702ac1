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
	"fmt"
	"io"
	"os"
	"strings"
)

// readInput reads the file named by the only element of args, or stdin if args is empty or "-".
func (a *app) readInput(args []string) (string, error) {
	if len(args) == 0 {
		return a.read("-")
	}
	return a.read(args[0])
}

func (a *app) read(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(a.stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	a.logger.Debug("read input", "path", path, "bytes", len(b))
	return string(b), nil
}

// write writes s followed by a line break unless s is empty or already ends with one.
func (a *app) write(s string) error {
	if s != "" && !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	_, err := io.WriteString(a.stdout, s)
	return err
}
