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

// Package run implements the subguard pipeline for single files and Go analysis passes.
package run

import (
	"context"
	"fmt"
	"go/ast"
	"os"
	"path/filepath"
	"runtime/trace"
	"slices"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/subguard/internal/classify"
	"fillmore-labs.com/subguard/internal/config"
	"fillmore-labs.com/subguard/internal/report"
	"fillmore-labs.com/subguard/internal/scope"
	"fillmore-labs.com/subguard/internal/source"
	"fillmore-labs.com/subguard/internal/subscription"
	"fillmore-labs.com/subguard/internal/tsast"
)

// Check analyzes a parsed file and passes its diagnostics to report.
func (o *Options) Check(ctx context.Context, f *tsast.File, report func(analysis.Diagnostic)) {
	// Skip generated files
	if f.Generated() && !o.Behavior.Enabled(config.IncludeGenerated) {
		return
	}

	// Skip files with nolint comment
	if f.NoLint() {
		return
	}

	tracker := o.tracker(f, report)

	trace.WithRegion(ctx, "Walk", func() { f.Walk(tracker) })
}

func (o *Options) tracker(f *tsast.File, rep func(analysis.Diagnostic)) *scope.Tracker {
	var (
		classifier scope.Classifier
		matcher    subscription.Matcher
	)

	if o.Behavior.Enabled(config.LexicalMatching) {
		classifier, matcher = classify.New(), subscription.Lexical{}
	} else {
		imports := f.Imports()
		classifier, matcher = classify.NewResolving(imports), subscription.NewStructural(imports)
	}

	return scope.NewTracker(classifier, matcher, report.New(f, rep))
}

// Run executes the subguard analyzer's pipeline on the TypeScript sources in a Go package's directories.
func (o *Options) Run(p *analysis.Pass) (any, error) {
	// Package test variants share the directories of the package under test
	if isTestVariant(p) {
		return nil, nil
	}

	ctx, task := trace.NewTask(context.Background(), "subguard")
	defer task.End()

	filter := o.Filter()
	filter.SkipPackages = true

	for _, dir := range packageDirs(p) {
		files, err := source.Discover(dir, filter)
		if err != nil {
			return nil, fmt.Errorf("subguard: %w", err)
		}

		trace.Logf(ctx, "files", "%s: %d", dir, len(files))

		for _, name := range files {
			o.checkFile(ctx, p, name)
		}
	}

	return nil, nil
}

func (o *Options) checkFile(ctx context.Context, p *analysis.Pass, name string) {
	src, err := os.ReadFile(name)
	if err != nil {
		report.InternalError(p, p.Files[0], "Can't read %s: %v", name, err)

		return
	}

	var f *tsast.File

	trace.WithRegion(ctx, "Parse", func() { f, err = tsast.Parse(ctx, p.Fset, name, src) })

	if err != nil {
		report.InternalError(p, p.Files[0], "Can't parse %s: %v", name, err)

		return
	}
	defer f.Close()

	o.Check(ctx, f, p.Report)
}

// packageDirs returns the sorted directories holding the package's Go files.
func packageDirs(p *analysis.Pass) []string {
	dirs := make([]string, 0, 1)

	for _, file := range p.Files {
		tf := p.Fset.File(file.Pos())
		if tf == nil {
			continue
		}

		if dir := filepath.Dir(tf.Name()); !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}

	slices.Sort(dirs)

	return dirs
}

func isTestVariant(p *analysis.Pass) bool {
	if p.Pkg != nil && strings.HasSuffix(p.Pkg.Name(), "_test") {
		return true
	}

	return slices.ContainsFunc(p.Files, func(file *ast.File) bool {
		tf := p.Fset.File(file.Pos())

		return tf != nil && strings.HasSuffix(tf.Name(), "_test.go")
	})
}
