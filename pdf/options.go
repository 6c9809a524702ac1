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

import "time"

type options struct {
	chromePath string
	timeout    time.Duration
	noSandbox  bool
}

func defaultOptions() options {
	return options{timeout: 30 * time.Second}
}

// Option configures a [Converter].
type Option func(*options)

// WithChromePath sets the Chrome or Chromium executable. By default, chromedp looks in the
// standard locations.
func WithChromePath(path string) Option {
	return func(o *options) {
		o.chromePath = path
	}
}

// WithTimeout limits the duration of a single conversion. Defaults to 30 seconds; zero or a
// negative value disables the limit.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithNoSandbox disables the Chrome sandbox, which is necessary when running as root (in a
// container, for example).
func WithNoSandbox() Option {
	return func(o *options) {
		o.noSandbox = true
	}
}
