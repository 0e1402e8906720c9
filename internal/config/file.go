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

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownKey is returned when a configuration file contains keys that are not recognized.
	ErrUnknownKey = errors.New("unknown configuration key")

	// ErrUnsupportedFormat is returned for configuration files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported configuration format")
)

// FileNames are the configuration file names searched for, in order of precedence.
var FileNames = [...]string{".subguard.toml", ".subguard.yaml", ".subguard.yml"}

// File is the contents of a subguard configuration file.
// Unset fields leave the corresponding defaults or command line values unchanged.
type File struct {
	// Lexical selects the text-based teardown operator check.
	Lexical *bool `toml:"lexical" yaml:"lexical"`
	// Generated enables analysis of generated files.
	Generated *bool `toml:"generated" yaml:"generated"`
	// Tests enables analysis of *.spec.ts files.
	Tests *bool `toml:"tests" yaml:"tests"`
	// Exclude lists glob patterns of files and directories to skip.
	Exclude []string `toml:"exclude" yaml:"exclude"`
	// Jobs is the number of files checked in parallel.
	Jobs int `toml:"jobs" yaml:"jobs"`
	// Format is the output format, "text" or "json".
	Format string `toml:"format" yaml:"format"`
	// CacheDir is the result cache directory.
	CacheDir string `toml:"cache-dir" yaml:"cache-dir"`
}

// FindFile returns the first configuration file present in dir.
func FindFile(dir string) (string, bool) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
			return path, true
		}
	}

	return "", false
}

// Load reads a TOML or YAML configuration file, depending on its extension.
func Load(path string) (File, error) {
	switch filepath.Ext(path) {
	case ".toml":
		return loadTOML(path)

	case ".yaml", ".yml":
		return loadYAML(path)

	default:
		return File{}, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

func loadTOML(path string) (File, error) {
	var f File

	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return File{}, fmt.Errorf("can't decode %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return File{}, fmt.Errorf("%s: %w %q", path, ErrUnknownKey, undecoded[0].String())
	}

	return f, nil
}

func loadYAML(path string) (File, error) {
	r, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("can't open configuration: %w", err)
	}
	defer func() { _ = r.Close() }()

	var f File

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	switch err := dec.Decode(&f); {
	case err == nil, errors.Is(err, io.EOF): // empty documents are valid

	default:
		return File{}, fmt.Errorf("can't decode %s: %w", path, err)
	}

	return f, nil
}

// Apply sets the behavior flags present in the file.
func (f File) Apply(b *Behaviors) {
	setIf(b, LexicalMatching, f.Lexical)
	setIf(b, IncludeGenerated, f.Generated)
	setIf(b, IncludeTests, f.Tests)
}

func setIf(b *Behaviors, flag Behavior, value *bool) {
	if value == nil {
		return
	}

	b.Set(flag, *value)
}
