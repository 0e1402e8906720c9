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

import sitter "github.com/smacker/go-tree-sitter"

// Visitor receives traversal events from [File.Walk].
//
// Events arrive in document order: EnterClass before anything inside the class,
// Member and Call in pre-order, ExitClass after the last event inside the class.
type Visitor interface {
	EnterClass(c Class)
	ExitClass(c Class)
	Member(m Member)
	Call(c Call)
}

// Walk traverses the file depth-first and reports class declarations, class members
// and member calls to v.
func (f *File) Walk(v Visitor) {
	if f.tree == nil {
		return
	}

	f.walk(f.tree.RootNode(), v)
}

func (f *File) walk(n *sitter.Node, v Visitor) {
	switch n.Type() {
	case nodeComment:
		return

	case nodeClassDeclaration, nodeAbstractClassDeclaration:
		f.walkClass(n, v)

		return

	case nodeClass: // export default class { ... }
		if parent := n.Parent(); parent != nil && parent.Type() == nodeExportStatement {
			f.walkClass(n, v)

			return
		}

	case nodeMethodDefinition, nodeMethodSignature, nodeAbstractMethodSignature, nodeFieldDefinition:
		if parent := n.Parent(); parent != nil && parent.Type() == nodeClassBody {
			if m, ok := f.newMember(n); ok {
				v.Member(m)
			}
		}

	case nodeCallExpression:
		if c, ok := f.newCall(n); ok {
			v.Call(c)
		}
	}

	f.walkChildren(n, v)
}

func (f *File) walkClass(n *sitter.Node, v Visitor) {
	c := Class{Node{n, f}}

	v.EnterClass(c)
	f.walkChildren(n, v)
	v.ExitClass(c)
}

func (f *File) walkChildren(n *sitter.Node, v Visitor) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		f.walk(n.NamedChild(i), v)
	}
}
