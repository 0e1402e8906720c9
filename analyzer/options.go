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

package analyzer

import (
	"log/slog"
	"slices"

	"fillmore-labs.com/subguard/internal/config"
	"fillmore-labs.com/subguard/internal/run"
)

// Option configures specific behavior of a [New] subguard analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithLexical is an [Option] to match teardown operators by the text of the subscribe call
// instead of inspecting its receiver chain.
func WithLexical(lexical bool) Option { return lexicalOption{lexical: lexical} }

type lexicalOption struct{ lexical bool }

func (o lexicalOption) apply(r *run.Options) {
	r.Behavior.Set(config.LexicalMatching, o.lexical)
}

func (o lexicalOption) LogAttr() slog.Attr {
	return slog.Bool("lexical", o.lexical)
}

// WithTests is an [Option] to configure diagnostics in *.spec.ts and *.test.ts files.
func WithTests(tests bool) Option { return testsOption{tests: tests} }

type testsOption struct{ tests bool }

func (o testsOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeTests, o.tests)
}

func (o testsOption) LogAttr() slog.Attr {
	return slog.Bool("tests", o.tests)
}

// WithExclude is an [Option] adding glob patterns of files and directories to skip.
func WithExclude(patterns ...string) Option { return excludeOption{patterns: patterns} }

type excludeOption struct{ patterns []string }

func (o excludeOption) apply(r *run.Options) {
	r.Exclude = append(slices.Clip(r.Exclude), o.patterns...)
}

func (o excludeOption) LogAttr() slog.Attr {
	return slog.Any("exclude", o.patterns)
}
