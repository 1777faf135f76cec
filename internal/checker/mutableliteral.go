// Copyright 2026 The purelint Authors. All Rights Reserved.
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

package checker

import (
	"fmt"
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/purelint/purelint/internal/classify"
	"github.com/purelint/purelint/internal/config"
	"github.com/purelint/purelint/internal/finding"
)

// mutableLiteral flags slice and map construction, by literal or make.
// The rule is strict by default; when the frozen-wrapper exemption is
// enabled, constructions passed directly to a configured wrapper
// constructor are not flagged.
type mutableLiteral struct {
	wrappers config.Set
	exempt   bool
}

func (mutableLiteral) Rule() config.Rule { return config.MutableLiteral }

func (mutableLiteral) Types() []ast.Node {
	return []ast.Node{(*ast.CompositeLit)(nil), (*ast.CallExpr)(nil)}
}

func (m mutableLiteral) Check(c inspector.Cursor, _ *analysis.Pass) []finding.Finding {
	node := c.Node()

	kind := classify.MutableLiteral(node)
	if kind == classify.LiteralNone {
		return nil
	}

	if m.exempt && m.wrapped(c) {
		return nil
	}

	return []finding.Finding{finding.New(config.MutableLiteral, node,
		fmt.Sprintf("mutable %s construction is discouraged; use an immutable value", kind))}
}

// wrapped reports whether the construction is an argument of a call to a
// configured frozen-wrapper constructor.
func (m mutableLiteral) wrapped(c inspector.Cursor) bool {
	if kind, _ := c.ParentEdge(); kind != edge.CallExpr_Args {
		return false
	}

	call, ok := c.Parent().Node().(*ast.CallExpr)
	if !ok {
		return false
	}

	switch fun := ast.Unparen(call.Fun).(type) {
	case *ast.Ident:
		return m.wrappers.Contains(fun.Name)
	case *ast.SelectorExpr:
		return m.wrappers.Contains(fun.Sel.Name)
	default:
		return false
	}
}
