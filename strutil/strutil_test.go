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

package strutil

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuncs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"upper", "straße", "STRASSE"},
		{"lower", "HeLLo", "hello"},
		{"title", "hello wORLD foo-bar", "Hello World Foo-bar"},
		{"sentence", "hello. world! how ARE you", "Hello. World! How are you"},
		{"camel", "Hello world-foo", "helloWorldFoo"},
		{"snake", "Hello World fooBar", "hello_world_foo_bar"},
		{"kebab", "Hello World fooBar!", "hello-world-foo-bar"},
		{"toggle", "Hello World 1", "hELLO wORLD 1"},
		{"remove-extra-spaces", "  a \t b\n\nc  ", "a b c"},
		{"remove-spaces", "a b\tc\n", "abc"},
		{"remove-line-breaks", "a\nb\n\n  c", "a b c"},
		{"remove-numbers", "a1b22c", "abc"},
		{"remove-special", "Hi, there! #1 ü", "Hi there 1 "},
		{"remove-duplicate-lines", "a\nb\na\nc\nb", "a\nb\nc"},
		{"remove-empty-lines", "a\n\n  \nb\n", "a\nb"},
		{"reverse", "abc", "cba"},
		{"reverse-words", "a b  c", "c  b a"},
		{"reverse-lines", "1\n2\n3", "3\n2\n1"},
		{"sort", "zebra\nÉmile\nApple\nEagle", "Apple\nEagle\nÉmile\nzebra"},
		{"sort-desc", "zebra\nÉmile\nApple\nEagle", "zebra\nÉmile\nEagle\nApple"},
		{"trim-lines", " a \n\tb", "a\nb"},
		{"number-lines", "a\nb", "1. a\n2. b"},
		{"extract-emails", "mail a.b@x.org and c@d.co.", "a.b@x.org\nc@d.co"},
		{"extract-urls", "see https://a.com/x, and http://b.org", "https://a.com/x,\nhttp://b.org"},
		{"extract-numbers", "-3 apples, 4.5 kg, 10.", "-3\n4.5\n10."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := Lookup(tt.name)
			require.True(t, ok, "Lookup(%q)", tt.name)
			assert.Equal(t, tt.want, f(tt.in))
		})
	}
}

func TestFuncs_empty(t *testing.T) {
	for _, name := range Names() {
		f, _ := Lookup(name)
		assert.NotPanics(t, func() { f("") }, name)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	assert.True(t, slices.IsSorted(names))
	assert.Contains(t, names, "upper")
	_, ok := Lookup("no-such-transform")
	assert.False(t, ok)
}

func TestReverse_graphemes(t *testing.T) {
	// "e" followed by a combining acute accent stays one character.
	in := "ab" + "e\xcc\x81" + "c"
	assert.Equal(t, "c"+"e\xcc\x81"+"ba", Reverse(in))
}

func TestRemove(t *testing.T) {
	got, err := Remove("a--b--c", "--")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	_, err = Remove("x", "")
	assert.ErrorIs(t, err, ErrEmptyPattern)
}

func TestReplace(t *testing.T) {
	got, n, err := Replace("one two one", "one", "1")
	require.NoError(t, err)
	assert.Equal(t, "1 two 1", got)
	assert.Equal(t, 2, n)

	got, n, err = Replace("a.b", ".", "*")
	require.NoError(t, err)
	assert.Equal(t, "a*b", got)
	assert.Equal(t, 1, n)

	_, _, err = Replace("x", "", "y")
	assert.ErrorIs(t, err, ErrEmptyPattern)
}

func TestPrefixSuffix(t *testing.T) {
	assert.Equal(t, "> a\n> b", AddPrefix("a\nb", "> "))
	assert.Equal(t, "a;\nb;", AddSuffix("a\nb", ";"))
}

func TestShuffle(t *testing.T) {
	in := "1\n2\n3\n4\n5\n6\n7\n8"
	got := Shuffle(in, rand.New(rand.NewPCG(1, 2)))

	lines := strings.Split(got, "\n")
	slices.Sort(lines)
	assert.Equal(t, in, strings.Join(lines, "\n"), "shuffle must keep all lines")
	assert.Equal(t, got, Shuffle(in, rand.New(rand.NewPCG(1, 2))), "same seed must give the same order")
}

func TestStats(t *testing.T) {
	assert.Equal(t, TextStats{}, Stats(""))
	assert.Equal(t, TextStats{
		Chars:         32,
		CharsNoSpaces: 26,
		Words:         6,
		Lines:         3,
		Sentences:     3,
		Paragraphs:    2,
	}, Stats("Hello world. How are you?\n\nFine!"))
	assert.Equal(t, TextStats{
		Chars:         2,
		CharsNoSpaces: 2,
		Words:         1,
		Lines:         1,
		Sentences:     1,
		Paragraphs:    1,
	}, Stats("e\xcc\x81!"))
}
