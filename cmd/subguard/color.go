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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Color modes.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

var errColorMode = errors.New("invalid color mode")

// colored decides whether output to w is colorized.
func colored(mode string, w io.Writer) (bool, error) {
	switch mode {
	case colorAlways:
		return true, nil

	case colorNever:
		return false, nil

	case colorAuto, "":
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false, nil
		}

		f, ok := w.(*os.File)

		return ok && isTerminal(f), nil

	default:
		return false, fmt.Errorf("%w %q (must be %s, %s or %s)", errColorMode, mode, colorAuto, colorAlways, colorNever)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
