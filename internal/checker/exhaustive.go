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

// exhaustive judges whether a switch statement covers every possible shape
// of its subject. True structural exhaustiveness is undecidable from
// syntax alone, so the rule enforces the conservative discipline that an
// exhaustive claim requires an explicit default clause; proving variant
// coverage is left to the type checker via an unreachable assertion in
// that clause.
type exhaustive struct{}

func (exhaustive) Rule() config.Rule { return config.Exhaustive }

func (exhaustive) Types() []ast.Node {
	return []ast.Node{(*ast.SwitchStmt)(nil), (*ast.TypeSwitchStmt)(nil)}
}

func (exhaustive) Check(c inspector.Cursor, _ *analysis.Pass) []finding.Finding {
	var (
		body       *ast.BlockStmt
		typeSwitch bool
	)

	switch stmt := c.Node().(type) {
	case *ast.SwitchStmt:
		body = stmt.Body
	case *ast.TypeSwitchStmt:
		body, typeSwitch = stmt.Body, true
	default:
		return nil
	}

	var cov coverage
	cov.fold(body, typeSwitch)

	if cov.exhaustive() {
		return nil
	}

	// One finding for the whole statement. The checker cannot enumerate
	// missing variants without type information, and does not try to.
	return []finding.Finding{finding.New(config.Exhaustive, c.Node(),
		"switch statement is not exhaustive; add a default case")}
}

// coverage is the running judgment over a statement's ordered clause list.
// It lives only for the analysis of one switch statement; nested
// statements are visited independently, so state never leaks between them.
type coverage struct {
	wildcard bool
}

// fold consumes the clause list in source order. A wildcard clause decides
// the judgment immediately; later clauses are dead from a coverage
// standpoint and dead-code detection is explicitly not attempted. A body
// with zero clauses folds to non-exhaustive.
func (cov *coverage) fold(body *ast.BlockStmt, typeSwitch bool) {
	if body == nil {
		return
	}

	for _, stmt := range body.List {
		clause, ok := stmt.(*ast.CaseClause)
		if !ok {
			continue // malformed clause, not this checker's concern
		}

		cov.observe(classify.ClauseShape(clause, typeSwitch))

		if cov.exhaustive() {
			return
		}
	}
}

func (cov *coverage) observe(shape classify.PatternShape) {
	if shape == classify.ShapeWildcard {
		cov.wildcard = true
	}
}

func (cov *coverage) exhaustive() bool {
	return cov.wildcard
}
