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

// Package tsast parses TypeScript sources and walks the resulting syntax trees.
//
// Parsing uses the tree-sitter TypeScript and TSX grammars. A parsed [File] is registered
// with a [token.FileSet], so every node view ([Class], [Member], [Call]) reports
// [token.Pos] positions and can be used directly as an [analysis.Range].
//
// [File.Walk] performs a single depth-first traversal in document order and delivers
// class entry and exit, member definitions and member calls to a [Visitor].
//
// [analysis.Range]: https://pkg.go.dev/golang.org/x/tools/go/analysis#Range
package tsast
