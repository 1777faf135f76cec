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

	"github.com/purelint/purelint/internal/config"
	"github.com/purelint/purelint/internal/finding"
)

// branch flags if statements, for code bases that prefer switch-based
// matching throughout.
type branch struct{}

func (branch) Rule() config.Rule { return config.Branch }

func (branch) Types() []ast.Node {
	return []ast.Node{(*ast.IfStmt)(nil)}
}

func (branch) Check(c inspector.Cursor, _ *analysis.Pass) []finding.Finding {
	stmt, ok := c.Node().(*ast.IfStmt)
	if !ok {
		return nil
	}

	// An else-if shares its condition's finding with the outer chain
	// position; it is still its own IfStmt node and gets its own finding.
	return []finding.Finding{finding.New(config.Branch, stmt,
		"use of if statements is not allowed")}
}
