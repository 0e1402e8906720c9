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

// Package report turns closed analysis scopes into diagnostics.
package report

import (
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/subguard/internal/scope"
	"fillmore-labs.com/subguard/internal/tsast"
)

// Rule metadata.
const (
	// RuleID is the stable identifier of the rule.
	RuleID = "rxjs-destroy-handler"

	// MissingTeardown is the message kind of reported diagnostics, used as [analysis.Diagnostic] category.
	MissingTeardown = "missingTeardown"

	// Message is the diagnostic text.
	Message = "RxJS subscription found without takeUntil/takeUntilDestroyed or ngOnDestroy unsubscribe handling."
)

// Reporter emits one diagnostic per unguarded subscription of a closed scope.
type Reporter struct {
	file   *tsast.File
	report func(analysis.Diagnostic)
}

var _ scope.Reporter = Reporter{}

// New creates a [Reporter] for file that passes diagnostics to report.
func New(file *tsast.File, report func(analysis.Diagnostic)) Reporter {
	return Reporter{file: file, report: report}
}

// Report implements [scope.Reporter].
func (r Reporter) Report(s *scope.Scope) {
	for _, call := range s.Unguarded() {
		if r.file.NoLintComment(call) {
			continue
		}

		r.report(analysis.Diagnostic{
			Pos:      call.Pos(),
			End:      call.End(),
			Category: MissingTeardown,
			Message:  Message,
		})
	}
}
