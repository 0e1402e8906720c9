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
	"go/token"
	"regexp"
	"slices"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"golang.org/x/tools/go/analysis"
)

// subguard is the name of the linter.
const subguard = "subguard"

// Comment is a single line or block comment.
type Comment struct {
	Text string
	Pos  token.Pos
	Line int
}

// collectComments appends all comments below n in document order.
func (f *File) collectComments(n *sitter.Node, comments []Comment) []Comment {
	if n.Type() == nodeComment {
		pos := f.pos(n.StartByte())

		return append(comments, Comment{Text: f.Text(n), Pos: pos, Line: f.line(pos)})
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		comments = f.collectComments(n.Child(i), comments)
	}

	return comments
}

var generatedPattern = regexp.MustCompile(`^// Code generated .* DO NOT EDIT\.$`)

// leadingDirectives inspects the comments preceding the first statement.
func (f *File) leadingDirectives(root *sitter.Node) (generated, nolint bool) {
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if child.Type() != nodeComment {
			break
		}

		text := f.Text(child)
		if generatedPattern.MatchString(text) {
			generated = true
		}

		if CommentHasNoLint(text) {
			nolint = true
		}
	}

	return generated, nolint
}

// NoLintComment checks if the first or last line of rng carries a // nolint:subguard comment.
func (f *File) NoLintComment(rng analysis.Range) bool {
	first, last := f.line(rng.Pos()), f.line(rng.End())

	// find the first comment starting after the node
	i, _ := slices.BinarySearchFunc(f.comments, rng.Pos(),
		func(c Comment, p token.Pos) int { return int(c.Pos - p) })

	for _, c := range f.comments[i:] {
		if c.Line > last {
			break
		}

		if (c.Line == first || c.Line == last) && CommentHasNoLint(c.Text) {
			return true
		}
	}

	return false
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment text contains a `// nolint:subguard` directive.
func CommentHasNoLint(text string) bool {
	matches := nolintPattern.FindStringSubmatch(text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == subguard || l == "all" {
			return true
		}
	}

	return false
}
