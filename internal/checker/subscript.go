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
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/purelint/purelint/internal/classify"
	"github.com/purelint/purelint/internal/config"
	"github.com/purelint/purelint/internal/finding"
)

const subscriptMessage = "assignment to a subscript is not allowed; containers should be treated as immutable"

// subscript flags subscript expressions used as assignment targets, for
// any assignment token, and ++/-- on a subscript.
type subscript struct{}

func (subscript) Rule() config.Rule { return config.SubscriptAssign }

func (subscript) Types() []ast.Node {
	return []ast.Node{(*ast.AssignStmt)(nil), (*ast.IncDecStmt)(nil)}
}

func (subscript) Check(c inspector.Cursor, _ *analysis.Pass) []finding.Finding {
	switch stmt := c.Node().(type) {
	case *ast.AssignStmt:
		var findings []finding.Finding

		for _, target := range classify.SubscriptTargets(stmt) {
			findings = append(findings, finding.New(config.SubscriptAssign, target, subscriptMessage))
		}

		return findings

	case *ast.IncDecStmt:
		if index, ok := ast.Unparen(stmt.X).(*ast.IndexExpr); ok {
			return []finding.Finding{finding.New(config.SubscriptAssign, index, subscriptMessage)}
		}

		return nil

	default:
		return nil
	}
}
