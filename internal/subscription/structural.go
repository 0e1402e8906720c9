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

package subscription

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/subguard/internal/tsast"
)

const pipeMethod = "pipe"

// Structural is a [Matcher] inspecting the method chain the subscribe call is invoked on.
type Structural struct {
	imports tsast.Imports
}

var _ Matcher = Structural{}

// NewStructural returns a [Structural] matcher resolving operator imports from imports.
func NewStructural(imports tsast.Imports) Structural {
	return Structural{imports: imports}
}

// Classify returns [Covered] when a pipe(...) call in the receiver chain has a
// takeUntil(...) or takeUntilDestroyed(...) argument.
func (s Structural) Classify(call tsast.Call) Coverage {
	f := call.File()

	for n := call.Receiver(); n != nil; n = chainNext(n) {
		if n.Type() != "call_expression" {
			continue
		}

		fun := n.ChildByFieldName("function")
		if fun == nil || fun.Type() != "member_expression" || f.Text(fun.ChildByFieldName("property")) != pipeMethod {
			continue
		}

		if s.hasTeardownOperator(f, n.ChildByFieldName("arguments")) {
			return Covered
		}
	}

	return Bare
}

// chainNext returns the expression n is derived from in a method chain, or nil.
func chainNext(n *sitter.Node) *sitter.Node {
	switch n.Type() {
	case "call_expression":
		return n.ChildByFieldName("function")

	case "member_expression":
		return n.ChildByFieldName("object")

	case "parenthesized_expression", "non_null_expression", "as_expression", "satisfies_expression", "await_expression":
		return firstExpression(n)

	default:
		return nil
	}
}

func (s Structural) hasTeardownOperator(f *tsast.File, args *sitter.Node) bool {
	if args == nil {
		return false
	}

	for i := 0; i < int(args.NamedChildCount()); i++ {
		arg := args.NamedChild(i)
		if arg.Type() != "call_expression" {
			continue
		}

		if s.isTeardownCallee(f, arg.ChildByFieldName("function")) {
			return true
		}
	}

	return false
}

func (s Structural) isTeardownCallee(f *tsast.File, fun *sitter.Node) bool {
	if fun == nil {
		return false
	}

	switch fun.Type() {
	case "identifier": // takeUntil(...) or an aliased import
		return isTeardownOperator(s.imports.Original(f.Text(fun), isOperatorSource))

	case "member_expression": // rx.takeUntil(...) with a namespace import
		obj := fun.ChildByFieldName("object")
		if obj == nil || obj.Type() != "identifier" {
			return false
		}

		imp, ok := s.imports.Resolve(f.Text(obj))
		if !ok || !imp.Namespace || !isOperatorSource(imp.Source) {
			return false
		}

		return isTeardownOperator(f.Text(fun.ChildByFieldName("property")))

	default:
		return false
	}
}

// isOperatorSource reports whether the module can export teardown operators.
func isOperatorSource(source string) bool {
	return source == "rxjs" || strings.HasPrefix(source, "rxjs/") || strings.HasPrefix(source, "@angular/core")
}

func firstExpression(n *sitter.Node) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(i); child.Type() != "comment" {
			return child
		}
	}

	return nil
}
