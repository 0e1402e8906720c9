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

// Package classify decides which classes are subject to the subscription check.
package classify

import (
	"strings"

	"fillmore-labs.com/subguard/internal/tsast"
)

// Classifier decides whether a class is an Angular class.
type Classifier struct {
	// imports, when non-nil, is used to resolve aliased decorator imports.
	imports tsast.Imports
}

// New returns a [Classifier] matching decorator callee names literally.
func New() Classifier { return Classifier{} }

// NewResolving returns a [Classifier] that resolves decorator callees imported
// under a different name from an Angular package.
func NewResolving(imports tsast.Imports) Classifier { return Classifier{imports: imports} }

// IsAnalyzed reports whether the class carries a @Component, @Directive, @Injectable or @Pipe decorator call.
func (c Classifier) IsAnalyzed(class tsast.Class) bool {
	for d := range class.Decorators() {
		if d.Callee == "" {
			continue
		}

		if isFrameworkDecorator(c.imports.Original(d.Callee, isAngular)) {
			return true
		}
	}

	return false
}

func isFrameworkDecorator(name string) bool {
	switch name {
	case "Component", "Directive", "Injectable", "Pipe":
		return true

	default:
		return false
	}
}

func isAngular(source string) bool {
	return strings.HasPrefix(source, "@angular/")
}
