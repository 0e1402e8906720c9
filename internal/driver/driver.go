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

// Package driver checks sets of TypeScript files in parallel for the command line.
package driver

import (
	"cmp"
	"context"
	"fmt"
	"go/token"
	"log/slog"
	"os"
	"runtime"
	"runtime/trace"
	"slices"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/subguard/internal/cache"
	"fillmore-labs.com/subguard/internal/run"
	"fillmore-labs.com/subguard/internal/tsast"
)

// Position is a 1-based line and column (in bytes).
type Position struct {
	Line   int `json:"line"   msgpack:"l"`
	Column int `json:"column" msgpack:"c"`
}

// Finding is a diagnostic detached from its file set.
type Finding struct {
	Start    Position `json:"start"    msgpack:"s"`
	End      Position `json:"end"      msgpack:"e"`
	Category string   `json:"category" msgpack:"k"`
	Message  string   `json:"message"  msgpack:"m"`
}

// Result is the outcome of checking one file.
type Result struct {
	// Path is the file name as given.
	Path string

	// Findings are sorted by position.
	Findings []Finding

	// SyntaxError is the position of the first syntax error, if any.
	SyntaxError *Position

	// Err is set when the file could not be read or parsed.
	Err error

	// Cached is true when the result was taken from the cache.
	Cached bool
}

// entry is the cached part of a [Result].
type entry struct {
	Findings    []Finding `msgpack:"f"`
	SyntaxError *Position `msgpack:"x"`
}

// Config configures [CheckFiles].
type Config struct {
	// Options are the analysis options.
	Options *run.Options

	// Jobs limits the number of files checked in parallel, defaulting to GOMAXPROCS.
	Jobs int

	// Cache stores results across runs, may be nil.
	Cache *cache.Cache

	// Logger receives cache and parse messages, defaulting to [slog.Default].
	Logger *slog.Logger
}

// CheckFiles checks files in parallel and returns their results in the order given.
// Per-file failures are reported in [Result.Err], the returned error is only set on cancellation.
func CheckFiles(ctx context.Context, files []string, c Config) ([]Result, error) {
	if c.Options == nil {
		c.Options = run.DefaultOptions()
	}

	if c.Logger == nil {
		c.Logger = slog.Default()
	}

	jobs := c.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	ctx, task := trace.NewTask(ctx, "subguard")
	defer task.End()

	fingerprint := c.Options.Fingerprint()

	// Indices are unique per goroutine, no locking needed
	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(files))))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = c.checkFile(gctx, path, fingerprint)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}

func (c Config) checkFile(ctx context.Context, path, fingerprint string) Result {
	src, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path, Err: err}
	}

	key := cache.NewKey(fingerprint, src)

	var e entry

	switch ok, err := c.Cache.Get(key, &e); {
	case err != nil:
		c.Logger.Warn("Ignoring cache entry", slog.String("file", path), slog.Any("error", err))

	case ok:
		c.Logger.Debug("Cache hit", slog.String("file", path))

		return Result{Path: path, Findings: e.Findings, SyntaxError: e.SyntaxError, Cached: true}
	}

	e, err = c.analyze(ctx, path, src)
	if err != nil {
		return Result{Path: path, Err: err}
	}

	if err := c.Cache.Put(key, e); err != nil {
		c.Logger.Warn("Can't cache result", slog.String("file", path), slog.Any("error", err))
	}

	return Result{Path: path, Findings: e.Findings, SyntaxError: e.SyntaxError}
}

func (c Config) analyze(ctx context.Context, path string, src []byte) (entry, error) {
	fset := token.NewFileSet()

	var (
		f   *tsast.File
		err error
	)

	trace.WithRegion(ctx, "Parse", func() { f, err = tsast.Parse(ctx, fset, path, src) })

	if err != nil {
		return entry{}, fmt.Errorf("can't parse: %w", err)
	}
	defer f.Close()

	var e entry

	if pos, ok := f.SyntaxError(); ok {
		e.SyntaxError = position(f.Position(pos))
	}

	c.Options.Check(ctx, f, func(d analysis.Diagnostic) {
		e.Findings = append(e.Findings, Finding{
			Start:    *position(f.Position(d.Pos)),
			End:      *position(f.Position(d.End)),
			Category: d.Category,
			Message:  d.Message,
		})
	})

	// Nested classes are reported before their enclosing class
	slices.SortStableFunc(e.Findings, func(a, b Finding) int { return a.Start.Compare(b.Start) })

	return e, nil
}

func position(p token.Position) *Position {
	return &Position{Line: p.Line, Column: p.Column}
}

// Compare orders positions by line, then column.
func (p Position) Compare(o Position) int {
	if c := cmp.Compare(p.Line, o.Line); c != 0 {
		return c
	}

	return cmp.Compare(p.Column, o.Column)
}
