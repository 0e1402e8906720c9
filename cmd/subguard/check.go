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
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"fillmore-labs.com/subguard/internal/cache"
	"fillmore-labs.com/subguard/internal/config"
	"fillmore-labs.com/subguard/internal/driver"
	"fillmore-labs.com/subguard/internal/output"
	"fillmore-labs.com/subguard/internal/run"
	"fillmore-labs.com/subguard/internal/source"
)

// checkFlags are the command line values of the check command.
type checkFlags struct {
	jobs      int
	exclude   []string
	tests     bool
	lexical   bool
	generated bool
	format    string
	cacheDir  string
}

func (a *app) checkCommand() *cobra.Command {
	var f checkFlags

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check TypeScript files and directories",
		Example: `  subguard check src/app
  subguard check --format json --exclude 'dist/**' .`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.check(cmd, args, f)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&f.jobs, "jobs", "j", 0, "number of files checked in parallel (default GOMAXPROCS)")
	flags.StringSliceVar(&f.exclude, "exclude", nil, "glob patterns of files and directories to skip")
	flags.BoolVar(&f.tests, "tests", false, "check *.spec.ts and *.test.ts files")
	flags.BoolVar(&f.lexical, "lexical", false, "match teardown operators by call text")
	flags.BoolVar(&f.generated, "generated", false, "check generated files")
	flags.StringVar(&f.format, "format", output.FormatText.String(), "output format (text|json)")
	flags.StringVar(&f.cacheDir, "cache-dir", "", "directory for cached results")

	return cmd
}

// settings merges the configuration file with the command line; flags set on the command line win.
func (a *app) settings(cmd *cobra.Command, f checkFlags) (*run.Options, checkFlags) {
	opts := run.DefaultOptions()
	a.file.Apply(&opts.Behavior)
	opts.Exclude = slices.Concat(a.file.Exclude, f.exclude)

	flags := cmd.Flags()

	for name, flag := range map[string]config.Behavior{
		"tests":     config.IncludeTests,
		"lexical":   config.LexicalMatching,
		"generated": config.IncludeGenerated,
	} {
		if !flags.Changed(name) {
			continue
		}

		value, _ := flags.GetBool(name)
		opts.Behavior.Set(flag, value)
	}

	if !flags.Changed("jobs") && a.file.Jobs > 0 {
		f.jobs = a.file.Jobs
	}

	if !flags.Changed("format") && a.file.Format != "" {
		f.format = a.file.Format
	}

	if !flags.Changed("cache-dir") && a.file.CacheDir != "" {
		f.cacheDir = a.file.CacheDir
	}

	return opts, f
}

func (a *app) check(cmd *cobra.Command, args []string, f checkFlags) error {
	opts, f := a.settings(cmd, f)

	format, err := output.ParseFormat(f.format)
	if err != nil {
		return err
	}

	color, err := colored(a.colorMode, a.stdout)
	if err != nil {
		return err
	}

	a.logger.LogAttrs(cmd.Context(), slog.LevelDebug, "Options",
		slog.String("fingerprint", opts.Fingerprint()), slog.Any("exclude", opts.Exclude))

	files, err := discover(args, opts.Filter())
	if err != nil {
		return err
	}

	a.logger.Info("Discovered sources", slog.Int("files", len(files)))

	var c *cache.Cache
	if f.cacheDir != "" {
		if c, err = cache.Open(f.cacheDir); err != nil {
			return err
		}
	}

	results, err := driver.CheckFiles(cmd.Context(), files, driver.Config{
		Options: opts,
		Jobs:    f.jobs,
		Cache:   c,
		Logger:  a.logger,
	})
	if err != nil {
		return err
	}

	a.logResults(results)

	if err := output.Write(a.stdout, format, results, color); err != nil {
		return fmt.Errorf("can't write results: %w", err)
	}

	switch s := output.Summarize(results); {
	case s.Errors > 0:
		return fmt.Errorf("%d files could not be checked", s.Errors)

	case s.Findings > 0:
		return errFindings

	default:
		return nil
	}
}

// discover collects the files below paths, in order and without duplicates.
func discover(paths []string, filter source.Filter) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var files []string

	seen := make(map[string]struct{})

	for _, path := range paths {
		found, err := source.Discover(path, filter)
		if err != nil {
			return nil, err
		}

		for _, file := range found {
			if _, ok := seen[file]; ok {
				continue
			}

			seen[file] = struct{}{}
			files = append(files, file)
		}
	}

	return files, nil
}

func (a *app) logResults(results []driver.Result) {
	var cached int

	for _, r := range results {
		switch {
		case r.Err != nil:
			a.logger.Error("Can't check file", slog.String("file", r.Path), slog.Any("error", r.Err))

		case r.SyntaxError != nil:
			a.logger.Warn("Syntax error, results may be incomplete", slog.String("file", r.Path),
				slog.Int("line", r.SyntaxError.Line), slog.Int("column", r.SyntaxError.Column))
		}

		if r.Cached {
			cached++
		}
	}

	if cached > 0 {
		a.logger.Info("Cache hits", slog.Int("files", cached))
	}
}
