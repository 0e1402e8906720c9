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
	"iter"

	sitter "github.com/smacker/go-tree-sitter"
)

// tree-sitter node types used by the walker.
const (
	nodeError                    = "ERROR"
	nodeComment                  = "comment"
	nodeClass                    = "class"
	nodeClassDeclaration         = "class_declaration"
	nodeAbstractClassDeclaration = "abstract_class_declaration"
	nodeClassBody                = "class_body"
	nodeExportStatement          = "export_statement"
	nodeDecorator                = "decorator"
	nodeMethodDefinition         = "method_definition"
	nodeMethodSignature          = "method_signature"
	nodeAbstractMethodSignature  = "abstract_method_signature"
	nodeFieldDefinition          = "public_field_definition"
	nodeCallExpression           = "call_expression"
	nodeMemberExpression         = "member_expression"
	nodeIdentifier               = "identifier"
	nodePropertyIdentifier       = "property_identifier"
	nodeImportStatement          = "import_statement"
	nodeImportClause             = "import_clause"
	nodeNamedImports             = "named_imports"
	nodeNamespaceImport          = "namespace_import"
	nodeImportSpecifier          = "import_specifier"
	nodeString                   = "string"
)

// Node is a position-aware view of a syntax tree node.
type Node struct {
	n *sitter.Node
	f *File
}

// Pos returns the position of the first character of the node.
func (n Node) Pos() token.Pos { return n.f.pos(n.n.StartByte()) }

// End returns the position of the first character immediately after the node.
func (n Node) End() token.Pos { return n.f.pos(n.n.EndByte()) }

// Text returns the source text spanned by the node.
func (n Node) Text() string { return n.f.Text(n.n) }

// Syntax returns the underlying tree-sitter node.
func (n Node) Syntax() *sitter.Node { return n.n }

// File returns the file containing the node.
func (n Node) File() *File { return n.f }

// Class is a class declaration.
type Class struct{ Node }

// Name returns the class name, or the empty string for anonymous default exports.
func (c Class) Name() string {
	return c.f.Text(c.n.ChildByFieldName("name"))
}

// Decorator is a decorator application.
type Decorator struct {
	Node

	// Callee is the name of the called function for decorators of the form @Name(...),
	// and the empty string for all other forms.
	Callee string

	// Args is the number of call arguments, -1 for decorators that are not calls.
	Args int
}

// Decorators yields the decorators applied to the class in source order.
// Decorators written before an enclosing export statement are included.
func (c Class) Decorators() iter.Seq[Decorator] {
	return func(yield func(Decorator) bool) {
		if parent := c.n.Parent(); parent != nil && parent.Type() == nodeExportStatement {
			if !c.f.yieldDecorators(parent, yield) {
				return
			}
		}

		c.f.yieldDecorators(c.n, yield)
	}
}

func (f *File) yieldDecorators(n *sitter.Node, yield func(Decorator) bool) bool {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() != nodeDecorator {
			continue
		}

		if !yield(f.newDecorator(child)) {
			return false
		}
	}

	return true
}

func (f *File) newDecorator(n *sitter.Node) Decorator {
	d := Decorator{Node: Node{n, f}, Args: -1}

	expr := firstNamed(n)
	if expr == nil || expr.Type() != nodeCallExpression {
		return d
	}

	if fun := expr.ChildByFieldName("function"); fun != nil && fun.Type() == nodeIdentifier {
		d.Callee = f.Text(fun)
	}

	if args := expr.ChildByFieldName("arguments"); args != nil {
		d.Args = countNamed(args)
	}

	return d
}

// Members yields the member definitions of the class body in source order.
func (c Class) Members() iter.Seq[Member] {
	return func(yield func(Member) bool) {
		body := c.n.ChildByFieldName("body")
		if body == nil {
			return
		}

		for i := 0; i < int(body.NamedChildCount()); i++ {
			m, ok := c.f.newMember(body.NamedChild(i))
			if !ok {
				continue
			}

			if !yield(m) {
				return
			}
		}
	}
}

// MemberKind classifies class members.
type MemberKind uint8

//go:generate go tool stringer -type MemberKind -linecomment
const (
	// MemberOther is any member not covered by a more specific kind.
	MemberOther MemberKind = iota // other

	// MemberMethod is a method with a body.
	MemberMethod // method

	// MemberGetter is a get accessor.
	MemberGetter // get

	// MemberSetter is a set accessor.
	MemberSetter // set

	// MemberConstructor is the class constructor.
	MemberConstructor // constructor

	// MemberField is a property definition, including arrow function valued properties.
	MemberField // field

	// MemberSignature is an abstract method or overload signature without body.
	MemberSignature // signature
)

// Member is a class member definition.
type Member struct {
	Node

	Kind MemberKind

	// Name is the member name for identifier keys, the empty string for computed,
	// string, numeric and private names.
	Name string
}

func (f *File) newMember(n *sitter.Node) (Member, bool) {
	m := Member{Node: Node{n, f}}

	switch n.Type() {
	case nodeMethodDefinition:
		m.Kind = MemberMethod

	case nodeMethodSignature, nodeAbstractMethodSignature:
		m.Kind = MemberSignature

	case nodeFieldDefinition:
		m.Kind = MemberField

	default:
		return m, false
	}

	name := n.ChildByFieldName("name")
	if name != nil && name.Type() == nodePropertyIdentifier {
		m.Name = f.Text(name)
	}

	if m.Kind != MemberMethod {
		return m, true
	}

	// accessor keywords are anonymous tokens preceding the name
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.IsNamed() {
			if child.Type() == nodePropertyIdentifier {
				break
			}

			continue
		}

		switch child.Type() {
		case "get":
			m.Kind = MemberGetter
		case "set":
			m.Kind = MemberSetter
		}
	}

	if m.Kind == MemberMethod && m.Name == "constructor" {
		m.Kind = MemberConstructor
	}

	return m, true
}

// Call is a call expression whose callee is a member access, as in x.name(...).
type Call struct{ Node }

func (f *File) newCall(n *sitter.Node) (Call, bool) {
	fun := n.ChildByFieldName("function")
	if fun == nil || fun.Type() != nodeMemberExpression {
		return Call{}, false
	}

	return Call{Node{n, f}}, true
}

// Method returns the name of the invoked member, or the empty string for private names.
func (c Call) Method() string {
	prop := c.n.ChildByFieldName("function").ChildByFieldName("property")
	if prop == nil || prop.Type() != nodePropertyIdentifier {
		return ""
	}

	return c.f.Text(prop)
}

// Receiver returns the expression the method is invoked on.
func (c Call) Receiver() *sitter.Node {
	return c.n.ChildByFieldName("function").ChildByFieldName("object")
}

func firstNamed(n *sitter.Node) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(i); child.Type() != nodeComment {
			return child
		}
	}

	return nil
}

func countNamed(n *sitter.Node) int {
	count := 0

	for i := 0; i < int(n.NamedChildCount()); i++ {
		if n.NamedChild(i).Type() != nodeComment {
			count++
		}
	}

	return count
}
