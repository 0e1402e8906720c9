// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package gclplugin

import subguard "fillmore-labs.com/subguard/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Lexical matches teardown operators by call text.
	Lexical *bool `json:"lexical,omitzero"`
	// Generated enables checks of generated TypeScript files.
	Generated *bool `json:"generated,omitzero"`
	// Tests enables checks of *.spec.ts and *.test.ts files.
	Tests *bool `json:"tests,omitzero"`
	// Exclude lists glob patterns of files and directories to skip.
	Exclude []string `json:"exclude,omitzero"`
}

// Options converts [Settings] into a list of [subguard.Option] for the subguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []subguard.Option {
	var opts []subguard.Option

	opts = appendOption(opts, s.Lexical, subguard.WithLexical)
	opts = appendOption(opts, s.Generated, subguard.WithGenerated)
	opts = appendOption(opts, s.Tests, subguard.WithTests)

	if s.Exclude != nil {
		opts = append(opts, subguard.WithExclude(s.Exclude...))
	}

	return opts
}

// appendOption appends a non-nil setting to a [subguard.Option] list.
func appendOption[T any](opts []subguard.Option, value *T, constructor func(T) subguard.Option) []subguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
