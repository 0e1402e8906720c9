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

package output

import (
	"encoding/json"
	"io"

	"fillmore-labs.com/subguard/internal/driver"
	"fillmore-labs.com/subguard/internal/report"
)

type jsonFinding struct {
	File string `json:"file"`
	Rule string `json:"rule"`
	driver.Finding
}

type jsonError struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

type jsonReport struct {
	Findings []jsonFinding `json:"findings"`
	Errors   []jsonError   `json:"errors,omitempty"`
	Summary  Summary       `json:"summary"`
}

// JSON writes results as a single JSON document.
func JSON(w io.Writer, results []driver.Result) error {
	doc := jsonReport{
		Findings: []jsonFinding{},
		Summary:  Summarize(results),
	}

	for _, r := range results {
		if r.Err != nil {
			doc.Errors = append(doc.Errors, jsonError{File: r.Path, Error: r.Err.Error()})

			continue
		}

		for _, f := range r.Findings {
			doc.Findings = append(doc.Findings, jsonFinding{File: r.Path, Rule: report.RuleID, Finding: f})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}
