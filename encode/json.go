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
	"errors"
	"fmt"

	"github.com/tidwall/pretty"
)

// SyntaxError describes malformed input. Offset is the byte offset after which the error was
// detected.
type SyntaxError struct {
	Offset int64
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Msg)
}

// checkJSON returns a *SyntaxError if src is not a single valid JSON value.
func checkJSON(src []byte) error {
	var v any
	err := json.Unmarshal(src, &v)
	if err == nil {
		return nil
	}
	var serr *json.SyntaxError
	if errors.As(err, &serr) {
		return &SyntaxError{Offset: serr.Offset, Msg: serr.Error()}
	}
	return &SyntaxError{Msg: err.Error()}
}

// FormatJSON re-indents src with one value per line, using indent for each level. Keys keep
// their order and numbers and strings are copied verbatim.
func FormatJSON(src, indent string) (string, error) {
	b := bytes.TrimSpace([]byte(src))
	if err := checkJSON(b); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, "", indent); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MinifyJSON removes all insignificant whitespace from src.
func MinifyJSON(src string) (string, error) {
	if err := checkJSON([]byte(src)); err != nil {
		return "", err
	}
	return string(pretty.Ugly([]byte(src))), nil
}
