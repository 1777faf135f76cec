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
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/purelint/purelint/internal/classify"
	"github.com/purelint/purelint/internal/config"
	"github.com/purelint/purelint/internal/finding"
)

// rebind flags assignments that rebind an already-bound name, including
// the `=` form of a range clause. First bindings and loop induction
// variables in a for statement's post clause are exempt.
type rebind struct{}

func (rebind) Rule() config.Rule { return config.Rebind }

func (rebind) Types() []ast.Node {
	return []ast.Node{(*ast.AssignStmt)(nil), (*ast.RangeStmt)(nil)}
}

func (rebind) Check(c inspector.Cursor, pass *analysis.Pass) []finding.Finding {
	switch kind, _ := c.ParentEdge(); kind {
	case edge.ForStmt_Post:
		return nil // loop induction
	case edge.TypeSwitchStmt_Assign:
		return nil // per-clause binding, not a rebind
	}

	var rebound []*ast.Ident

	switch node := c.Node().(type) {
	case *ast.AssignStmt:
		var defs map[*ast.Ident]types.Object
		if pass.TypesInfo != nil {
			defs = pass.TypesInfo.Defs
		}

		rebound = classify.Rebound(node, defs)

	case *ast.RangeStmt:
		rebound = classify.ReboundRange(node)
	}

	var findings []finding.Finding

	for _, ident := range rebound {
		findings = append(findings, finding.New(config.Rebind, ident,
			fmt.Sprintf("rebinding name %q is not allowed", ident.Name)))
	}

	return findings
}
