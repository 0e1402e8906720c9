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

package run

import (
	"strconv"

	"fillmore-labs.com/subguard/internal/config"
	"fillmore-labs.com/subguard/internal/source"
)

// Options represent configuration options for a subguard run.
type Options struct {
	// Behavior holds behavioral options.
	Behavior config.Behaviors

	// Exclude lists glob patterns of files to skip.
	Exclude []string
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Behavior: config.DefaultBehavior(),
	}
}

// Filter returns the source discovery filter for these options.
func (o *Options) Filter() source.Filter {
	return source.Filter{
		Tests:   o.Behavior.Enabled(config.IncludeTests),
		Exclude: o.Exclude,
	}
}

// Fingerprint identifies the options affecting the diagnostics of a single file.
// File selection options are not part of it.
func (o *Options) Fingerprint() string {
	const version = "subguard/1"

	behavior := o.Behavior.Bits() &^ config.IncludeTests

	return version + " behavior=" + strconv.FormatUint(uint64(behavior), 2)
}
