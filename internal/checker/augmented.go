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
	"golang.org/x/tools/go/ast/inspector"

	"github.com/purelint/purelint/internal/classify"
	"github.com/purelint/purelint/internal/config"
	"github.com/purelint/purelint/internal/finding"
)

// augmented flags combined operator-assignments and ++/-- statements,
// regardless of operator. There are no exemptions.
type augmented struct{}

func (augmented) Rule() config.Rule { return config.AugmentedAssign }

func (augmented) Types() []ast.Node {
	return []ast.Node{(*ast.AssignStmt)(nil), (*ast.IncDecStmt)(nil)}
}

func (augmented) Check(c inspector.Cursor, _ *analysis.Pass) []finding.Finding {
	var op string

	switch stmt := c.Node().(type) {
	case *ast.AssignStmt:
		if !classify.IsAugmented(stmt.Tok) {
			return nil
		}
		op = stmt.Tok.String()

	case *ast.IncDecStmt:
		op = stmt.Tok.String()

	default:
		return nil
	}

	return []finding.Finding{finding.New(config.AugmentedAssign, c.Node(),
		fmt.Sprintf("augmented assignment %q is not allowed", op))}
}
