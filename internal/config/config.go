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

// Package config holds the settings shared by the analyzer, the golangci-lint plugin and the command line.
package config

// Behavior represents behavioral options of a subguard run.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota

	// LexicalMatching selects the text-based teardown operator check instead of the
	// structural inspection of the receiver chain.
	LexicalMatching

	// IncludeTests specifies whether to include *.spec.ts test files.
	IncludeTests
)

// Behaviors is the set of enabled [Behavior] flags.
type Behaviors = BitMask[Behavior]

// DefaultBehavior returns the default behavior, structural matching on hand-written production sources.
func DefaultBehavior() Behaviors {
	return NewBitMask[Behavior]()
}
