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

// Package subscription classifies RxJS subscribe calls by whether a teardown operator
// is applied to the subscribed observable.
//
// Two matchers are provided:
//
//   - [Structural] walks the receiver chain of the subscribe call and looks for a pipe(...)
//     call with a takeUntil or takeUntilDestroyed operator argument, resolving imports.
//   - [Lexical] searches the source text of the call for the marker tokens. It is fooled by
//     string literals and comments and misses aliased operators.
package subscription

import "fillmore-labs.com/subguard/internal/tsast"

// Method is the name of the subscription method.
const Method = "subscribe"

// Teardown operator names.
const (
	TakeUntil          = "takeUntil"
	TakeUntilDestroyed = "takeUntilDestroyed"
)

// Coverage is the classification of a subscribe call.
type Coverage uint8

//go:generate go tool stringer -type Coverage -linecomment
const (
	// Bare is a subscription without recognized teardown operator.
	Bare Coverage = iota // bare

	// Covered is a subscription piped through takeUntil or takeUntilDestroyed.
	Covered // covered
)

// Matcher classifies subscribe calls.
type Matcher interface {
	Classify(call tsast.Call) Coverage
}

// IsSubscription reports whether call invokes the subscription method.
func IsSubscription(call tsast.Call) bool {
	return call.Method() == Method
}

func isTeardownOperator(name string) bool {
	return name == TakeUntil || name == TakeUntilDestroyed
}
