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

// Package classify answers closed-set questions about single syntax tree
// nodes. All functions are pure, never mutate their input and never fail:
// a node that cannot be classified simply yields the zero answer, so
// unknown syntax is skipped rather than flagged.
package classify

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/purelint/purelint/internal/config"
)

// Rebound returns the identifiers that assign rebinds. A plain `=` to a
// simple identifier always rebinds an existing name in Go; a `:=` rebinds
// the names it does not define, which requires the Defs map. With no type
// information available, `:=` is treated as all-new.
func Rebound(assign *ast.AssignStmt, defs map[*ast.Ident]types.Object) []*ast.Ident {
	switch assign.Tok {
	case token.ASSIGN:
	case token.DEFINE:
		if defs == nil {
			return nil
		}
	default:
		return nil // augmented assignments are a different rule
	}

	var rebound []*ast.Ident

	for _, target := range assign.Lhs {
		ident, ok := target.(*ast.Ident)
		if !ok || ident.Name == "_" {
			continue
		}

		if assign.Tok == token.DEFINE && defs[ident] != nil {
			continue // first binding
		}

		rebound = append(rebound, ident)
	}

	return rebound
}

// ReboundRange returns the identifiers a range clause rebinds. Only the
// `=` form rebinds; `:=` introduces fresh bindings on every iteration.
func ReboundRange(rng *ast.RangeStmt) []*ast.Ident {
	if rng.Tok != token.ASSIGN {
		return nil
	}

	var rebound []*ast.Ident

	for _, target := range []ast.Expr{rng.Key, rng.Value} {
		if ident, ok := target.(*ast.Ident); ok && ident.Name != "_" {
			rebound = append(rebound, ident)
		}
	}

	return rebound
}

// IsAugmented reports whether tok is a combined operator-assignment token.
func IsAugmented(tok token.Token) bool {
	switch tok {
	case token.ADD_ASSIGN, token.SUB_ASSIGN, token.MUL_ASSIGN, token.QUO_ASSIGN, token.REM_ASSIGN,
		token.AND_ASSIGN, token.OR_ASSIGN, token.XOR_ASSIGN, token.SHL_ASSIGN, token.SHR_ASSIGN,
		token.AND_NOT_ASSIGN:
		return true
	default:
		return false
	}
}

// MutatorCall reports whether call invokes a method whose name is in the
// mutator set. The check is purely name-based: any receiver sharing a
// mutator name is flagged, by design.
func MutatorCall(call *ast.CallExpr, mutators config.Set) (string, bool) {
	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok {
		return "", false
	}

	name := sel.Sel.Name
	if !mutators.Contains(name) {
		return "", false
	}

	return name, true
}

// SubscriptTargets returns the subscript expressions appearing as
// assignment targets of assign, for any assignment token.
func SubscriptTargets(assign *ast.AssignStmt) []*ast.IndexExpr {
	var targets []*ast.IndexExpr

	for _, target := range assign.Lhs {
		if index, ok := ast.Unparen(target).(*ast.IndexExpr); ok {
			targets = append(targets, index)
		}
	}

	return targets
}

// DeletionCall reports whether call is Go's deletion statement in spirit:
// a call to the delete or clear builtin.
func DeletionCall(call *ast.CallExpr) (string, bool) {
	ident, ok := ast.Unparen(call.Fun).(*ast.Ident)
	if !ok {
		return "", false
	}

	switch ident.Name {
	case "delete", "clear":
		return ident.Name, true
	default:
		return "", false
	}
}

// SideEffectCall reports whether call targets a function in the
// side-effect set, matching the final name of the callee only.
func SideEffectCall(call *ast.CallExpr, funcs config.Set) (string, bool) {
	var name string

	switch fun := ast.Unparen(call.Fun).(type) {
	case *ast.Ident:
		name = fun.Name
	case *ast.SelectorExpr:
		name = fun.Sel.Name
	default:
		return "", false
	}

	if !funcs.Contains(name) {
		return "", false
	}

	return name, true
}
