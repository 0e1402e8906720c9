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

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	. "fillmore-labs.com/subguard/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Can't write %s: %v", name, err)
	}

	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	const (
		tomlConfig = `lexical = true
tests = false
exclude = ["dist/**", "*.stories.ts"]
jobs = 4
format = "json"
cache-dir = ".cache"
`
		yamlConfig = `lexical: true
tests: false
exclude:
  - dist/**
  - "*.stories.ts"
jobs: 4
format: json
cache-dir: .cache
`
	)

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", ".subguard.toml", tomlConfig},
		{"yaml", ".subguard.yaml", yamlConfig},
		{"yml", ".subguard.yml", yamlConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, t.TempDir(), tt.file, tt.content)

			f, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}

			if f.Lexical == nil || !*f.Lexical {
				t.Errorf("Got lexical %v, want true", f.Lexical)
			}

			if f.Tests == nil || *f.Tests {
				t.Errorf("Got tests %v, want false", f.Tests)
			}

			if f.Generated != nil {
				t.Errorf("Got generated %v, want unset", *f.Generated)
			}

			if want := []string{"dist/**", "*.stories.ts"}; !slices.Equal(f.Exclude, want) {
				t.Errorf("Got exclude %q, want %q", f.Exclude, want)
			}

			if f.Jobs != 4 || f.Format != "json" || f.CacheDir != ".cache" {
				t.Errorf("Got jobs=%d format=%q cache-dir=%q", f.Jobs, f.Format, f.CacheDir)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
		want    error
	}{
		{"toml_unknown", ".subguard.toml", "max-lines = 3\n", ErrUnknownKey},
		{"ini", "subguard.ini", "lexical=true\n", ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, t.TempDir(), tt.file, tt.content)

			if _, err := Load(path); !errors.Is(err, tt.want) {
				t.Errorf("Got error %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadYAMLUnknown(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), ".subguard.yaml", "max-lines: 3\n")

	if _, err := Load(path); err == nil {
		t.Error("Expected error for unknown key")
	}
}

func TestLoadEmptyYAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), ".subguard.yaml", "")

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if f.Lexical != nil || f.Exclude != nil {
		t.Errorf("Got %+v from empty file", f)
	}
}

func TestFindFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	if _, ok := FindFile(dir); ok {
		t.Fatal("Found configuration in empty directory")
	}

	writeFile(t, dir, ".subguard.yml", "")
	want := writeFile(t, dir, ".subguard.toml", "")

	if got, ok := FindFile(dir); !ok || got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	yes, no := true, false

	b := NewBitMask(IncludeTests)
	File{Lexical: &yes, Tests: &no}.Apply(&b)

	if !b.Enabled(LexicalMatching) || b.Enabled(IncludeTests) || b.Enabled(IncludeGenerated) {
		t.Errorf("Got behavior %03b", b.Bits())
	}
}
