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

import "regexp"

var (
	emailRE  = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	urlRE    = regexp.MustCompile(`https?://\S+`)
	numberRE = regexp.MustCompile(`-?\d+\.?\d*`)
)

// ExtractEmails returns everything in s that looks like an email address.
func ExtractEmails(s string) []string {
	return emailRE.FindAllString(s, -1)
}

// ExtractURLs returns all http and https URLs in s. A URL ends at the next whitespace.
func ExtractURLs(s string) []string {
	return urlRE.FindAllString(s, -1)
}

// ExtractNumbers returns all integers and decimals in s, with an optional leading minus sign.
func ExtractNumbers(s string) []string {
	return numberRE.FindAllString(s, -1)
}
