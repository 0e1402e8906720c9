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

// Package output renders check results for the command line.
package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"fillmore-labs.com/subguard/internal/driver"
)

// Format is an output format.
type Format uint8

//go:generate go tool stringer -type Format -linecomment
const (
	FormatText Format = iota // text
	FormatJSON               // json
)

// ErrUnknownFormat is returned by [ParseFormat] for unsupported format names.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat returns the [Format] named s.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", FormatText.String():
		return FormatText, nil

	case FormatJSON.String():
		return FormatJSON, nil

	default:
		return 0, fmt.Errorf("%w %q, must be %s or %s", ErrUnknownFormat, s, FormatText, FormatJSON)
	}
}

// Summary counts the results of a run.
type Summary struct {
	Files    int `json:"files"`
	Findings int `json:"findings"`
	Affected int `json:"affectedFiles"`
	Errors   int `json:"errors"`
	Cached   int `json:"cached"`
}

// Summarize counts findings and failures in results.
func Summarize(results []driver.Result) Summary {
	s := Summary{Files: len(results)}

	for _, r := range results {
		switch {
		case r.Err != nil:
			s.Errors++

		case len(r.Findings) > 0:
			s.Findings += len(r.Findings)
			s.Affected++
		}

		if r.Cached {
			s.Cached++
		}
	}

	return s
}

// Write renders results in format f.
func Write(w io.Writer, f Format, results []driver.Result, colored bool) error {
	switch f {
	case FormatJSON:
		return JSON(w, results)

	default:
		return Text(w, results, colored)
	}
}
