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
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Import is a local binding introduced by an import declaration.
type Import struct {
	// Name is the exported name of the imported binding, "default" for default imports
	// and the empty string for namespace imports.
	Name string

	// Source is the module specifier, e.g. "rxjs/operators".
	Source string

	// Namespace is true for `import * as local from "..."`.
	Namespace bool
}

// Imports maps local names to the bindings they were imported as.
type Imports map[string]Import

// Resolve returns the import bound to local, if any.
func (m Imports) Resolve(local string) (Import, bool) {
	imp, ok := m[local]

	return imp, ok
}

// Original returns the exported name local refers to when it is imported from a module
// matching fromModule, and local itself otherwise.
func (m Imports) Original(local string, fromModule func(source string) bool) string {
	if imp, ok := m[local]; ok && !imp.Namespace && imp.Name != "" && fromModule(imp.Source) {
		return imp.Name
	}

	return local
}

func (f *File) collectImports(root *sitter.Node) Imports {
	imports := make(Imports)

	for i := 0; i < int(root.NamedChildCount()); i++ {
		stmt := root.NamedChild(i)
		if stmt.Type() != nodeImportStatement {
			continue
		}

		source := f.stringValue(stmt.ChildByFieldName("source"))
		if source == "" {
			continue
		}

		for j := 0; j < int(stmt.NamedChildCount()); j++ {
			if clause := stmt.NamedChild(j); clause.Type() == nodeImportClause {
				f.addImportClause(imports, clause, source)
			}
		}
	}

	return imports
}

func (f *File) addImportClause(imports Imports, clause *sitter.Node, source string) {
	for i := 0; i < int(clause.NamedChildCount()); i++ {
		child := clause.NamedChild(i)

		switch child.Type() {
		case nodeIdentifier: // import x from "..."
			imports[f.Text(child)] = Import{Name: "default", Source: source}

		case nodeNamespaceImport: // import * as x from "..."
			if id := firstNamed(child); id != nil && id.Type() == nodeIdentifier {
				imports[f.Text(id)] = Import{Source: source, Namespace: true}
			}

		case nodeNamedImports: // import { a, b as c } from "..."
			for j := 0; j < int(child.NamedChildCount()); j++ {
				spec := child.NamedChild(j)
				if spec.Type() != nodeImportSpecifier {
					continue
				}

				name := spec.ChildByFieldName("name")
				if name == nil {
					continue
				}

				exported := f.Text(name)
				if name.Type() == nodeString {
					exported = f.stringValue(name)
				}

				local := exported
				if alias := spec.ChildByFieldName("alias"); alias != nil {
					local = f.Text(alias)
				}

				imports[local] = Import{Name: exported, Source: source}
			}
		}
	}
}

// stringValue returns the contents of a string literal without quotes.
func (f *File) stringValue(n *sitter.Node) string {
	if n == nil || n.Type() != nodeString {
		return ""
	}

	text := f.Text(n)
	if len(text) < 2 {
		return ""
	}

	return strings.TrimSpace(text[1 : len(text)-1])
}
