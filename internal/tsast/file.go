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

package tsast

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// ErrUnsupportedFile is returned for files that are not TypeScript sources.
var ErrUnsupportedFile = errors.New("unsupported file type")

// File is a parsed TypeScript source file.
type File struct {
	name     string
	src      []byte
	handle   *token.File
	tree     *sitter.Tree
	comments []Comment
	imports  Imports

	generated bool
	nolint    bool
}

// IsTypeScript reports whether the file name has a TypeScript extension we can parse.
// Declaration files (.d.ts) contain no executable code and are excluded.
func IsTypeScript(filename string) bool {
	if isDeclaration(filename) {
		return false
	}

	return language(filename) != nil
}

func isDeclaration(filename string) bool {
	base := filepath.Base(filename)

	for _, ext := range [...]string{".d.ts", ".d.mts", ".d.cts"} {
		if strings.HasSuffix(base, ext) {
			return true
		}
	}

	return false
}

func language(filename string) *sitter.Language {
	switch filepath.Ext(filename) {
	case ".ts", ".mts", ".cts":
		return typescript.GetLanguage()

	case ".tsx":
		return tsx.GetLanguage()

	default:
		return nil
	}
}

// Parse parses src as the TypeScript file filename and registers it with fset.
//
// Syntax errors do not cause Parse to fail, tree-sitter recovers and the resulting
// tree contains error nodes; use [File.SyntaxError] to detect them.
func Parse(ctx context.Context, fset *token.FileSet, filename string, src []byte) (*File, error) {
	lang := language(filename)
	if lang == nil {
		return nil, fmt.Errorf("%s: %w", filename, ErrUnsupportedFile)
	}

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%s: tree-sitter parse failed: %w", filename, err)
	}

	f := &File{
		name:   filename,
		src:    src,
		handle: fset.AddFile(filename, -1, len(src)),
		tree:   tree,
	}
	f.handle.SetLinesForContent(src)

	root := tree.RootNode()
	f.comments = f.collectComments(root, nil)
	f.imports = f.collectImports(root)
	f.generated, f.nolint = f.leadingDirectives(root)

	return f, nil
}

// Close releases the syntax tree. The [File] must not be walked afterwards.
func (f *File) Close() {
	if f.tree != nil {
		f.tree.Close()
		f.tree = nil
	}
}

// Name returns the file name the file was parsed as.
func (f *File) Name() string { return f.name }

// Imports returns the bindings introduced by the top level import declarations.
func (f *File) Imports() Imports { return f.imports }

// Generated returns true if the file carries a "Code generated ... DO NOT EDIT." header.
func (f *File) Generated() bool { return f.generated }

// NoLint returns true if the file is excluded by a leading nolint directive.
func (f *File) NoLint() bool { return f.nolint }

// Position returns the source position of pos.
func (f *File) Position(pos token.Pos) token.Position {
	return f.handle.PositionFor(pos, false)
}

// SyntaxError returns the position of the first syntax error in the file, if any.
func (f *File) SyntaxError() (token.Pos, bool) {
	if f.tree == nil {
		return token.NoPos, false
	}

	root := f.tree.RootNode()
	if !root.HasError() {
		return token.NoPos, false
	}

	if n := firstError(root); n != nil {
		return f.pos(n.StartByte()), true
	}

	return f.pos(root.StartByte()), true
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == nodeError || n.IsMissing() {
		return n
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if !child.HasError() && !child.IsMissing() {
			continue
		}

		if e := firstError(child); e != nil {
			return e
		}
	}

	return nil
}

// Text returns the source text spanned by n.
func (f *File) Text(n *sitter.Node) string {
	if n == nil {
		return ""
	}

	return n.Content(f.src)
}

func (f *File) pos(offset uint32) token.Pos {
	off, err := safecast.Conv[int](offset)
	if err != nil || off > f.handle.Size() {
		return token.NoPos
	}

	return f.handle.Pos(off)
}

func (f *File) line(pos token.Pos) int {
	return f.handle.PositionFor(pos, false).Line
}
