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

// Package encode converts text between plain and encoded representations: Base64, percent
// encoding, \u escapes, and XML to JSON. It also formats and minifies JSON.
package encode

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf16"
)

// Base64Encode returns the standard, padded Base64 encoding of the UTF-8 bytes of s.
func Base64Encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// Base64Decode decodes s. Whitespace is ignored, padding is optional and both the standard and
// the URL alphabet are accepted.
func Base64Decode(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return -1
		case r == '-':
			return '+'
		case r == '_':
			return '/'
		}
		return r
	}, s)
	s = strings.TrimRight(s, "=")
	b, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding base64: %w", err)
	}
	return b, nil
}

// URLEncode percent-encodes every byte of s except ASCII letters, digits and -_.!~*'().
func URLEncode(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := range len(s) {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0xf])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

// URLDecode decodes percent-encoded sequences in s. A '+' stays a '+'.
func URLDecode(s string) (string, error) {
	out, err := url.PathUnescape(s)
	if err != nil {
		return "", fmt.Errorf("decoding URL component: %w", err)
	}
	return out, nil
}

// UTF8Escape replaces every code point of s by a \uXXXX escape with lower-case hex digits. Code
// points outside the basic multilingual plane are written as a surrogate pair.
func UTF8Escape(s string) string {
	var b strings.Builder
	b.Grow(6 * len(s))
	for _, r := range s {
		if r > 0xffff {
			r1, r2 := utf16.EncodeRune(r)
			fmt.Fprintf(&b, `\u%04x\u%04x`, r1, r2)
			continue
		}
		fmt.Fprintf(&b, `\u%04x`, r)
	}
	return b.String()
}

// UTF8Unescape resolves the escape sequences of a JSON string literal in s (\uXXXX, surrogate
// pairs, \n, \t, \", \\ and so on). Characters that are not escaped are copied as they are.
func UTF8Unescape(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(s) {
			return "", &SyntaxError{Offset: int64(i), Msg: "trailing backslash"}
		}
		switch e := s[i+1]; e {
		case 'u':
			r, n, err := unescapeRune(s, i)
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i += n
			continue
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '"', '\\', '/':
			b.WriteByte(e)
		default:
			return "", &SyntaxError{Offset: int64(i), Msg: fmt.Sprintf("invalid escape sequence \\%c", e)}
		}
		i += 2
	}
	return b.String(), nil
}

// unescapeRune decodes the \u escape at s[i:] and a following low surrogate if the first one is a
// high surrogate. It returns the rune and the number of bytes consumed.
func unescapeRune(s string, i int) (rune, int, error) {
	r, ok := hex4(s, i+2)
	if !ok {
		return 0, 0, &SyntaxError{Offset: int64(i), Msg: "invalid \\u escape"}
	}
	if utf16.IsSurrogate(r) && i+12 <= len(s) && s[i+6] == '\\' && s[i+7] == 'u' {
		if r2, ok := hex4(s, i+8); ok {
			if dec := utf16.DecodeRune(r, r2); dec != unicode.ReplacementChar {
				return dec, 12, nil
			}
		}
	}
	if utf16.IsSurrogate(r) {
		r = unicode.ReplacementChar
	}
	return r, 6, nil
}

func hex4(s string, i int) (rune, bool) {
	if i+4 > len(s) {
		return 0, false
	}
	var r rune
	for _, c := range []byte(s[i : i+4]) {
		r <<= 4
		switch {
		case '0' <= c && c <= '9':
			r |= rune(c - '0')
		case 'a' <= c && c <= 'f':
			r |= rune(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			r |= rune(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return r, true
}
