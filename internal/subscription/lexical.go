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

package subscription

import (
	"strings"

	"fillmore-labs.com/subguard/internal/tsast"
)

// Lexical is a [Matcher] searching the call's source text for marker tokens.
type Lexical struct{}

var _ Matcher = Lexical{}

// Classify returns [Covered] when the call text contains ".pipe" and one of
// "takeUntil(" or "takeUntilDestroyed(" anywhere.
func (Lexical) Classify(call tsast.Call) Coverage {
	text := call.Text()

	if strings.Contains(text, ".pipe") &&
		(strings.Contains(text, TakeUntil+"(") || strings.Contains(text, TakeUntilDestroyed+"(")) {
		return Covered
	}

	return Bare
}
