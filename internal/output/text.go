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
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"fillmore-labs.com/subguard/internal/driver"
	"fillmore-labs.com/subguard/internal/report"
)

type palette struct {
	path, rule, summary, clean *color.Color
}

func newPalette(colored bool) palette {
	p := palette{
		path:    color.New(color.Bold),
		rule:    color.New(color.FgYellow),
		summary: color.New(color.FgRed, color.Bold),
		clean:   color.New(color.FgGreen),
	}

	for _, c := range [...]*color.Color{p.path, p.rule, p.summary, p.clean} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// Text writes one line per finding as path:line:col: message (rule), followed by a summary line.
func Text(w io.Writer, results []driver.Result, colored bool) error {
	p := newPalette(colored)

	for _, r := range results {
		for _, f := range r.Findings {
			loc := r.Path + ":" + strconv.Itoa(f.Start.Line) + ":" + strconv.Itoa(f.Start.Column)
			if _, err := fmt.Fprintf(w, "%s: %s %s\n", p.path.Sprint(loc), f.Message, p.rule.Sprint("("+report.RuleID+")")); err != nil {
				return err
			}
		}
	}

	s := Summarize(results)

	var err error
	if s.Findings == 0 {
		_, err = fmt.Fprintf(w, "%s\n", p.clean.Sprintf("No unguarded subscriptions in %s.", files(s.Files)))
	} else {
		_, err = fmt.Fprintf(w, "%s\n", p.summary.Sprintf("%d unguarded %s in %s (%s checked).",
			s.Findings, plural(s.Findings, "subscription", "subscriptions"), files(s.Affected), files(s.Files)))
	}

	return err
}

func files(n int) string {
	return strconv.Itoa(n) + " " + plural(n, "file", "files")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}

	return many
}
