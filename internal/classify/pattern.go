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

package classify

import "go/ast"

// PatternShape abstracts what a single case clause matches. It is derived
// per clause and never persisted beyond the enclosing switch statement.
type PatternShape uint8

const (
	// ShapeOther covers guarded, multi-valued and unrecognized clauses.
	ShapeOther PatternShape = iota

	// ShapeWildcard is a default clause, matching any value.
	ShapeWildcard

	// ShapeNilLiteral is a bare `case nil`.
	ShapeNilLiteral

	// ShapeTypeGuard is a single type case in a type switch.
	ShapeTypeGuard

	// ShapeLiteral is a single literal value case.
	ShapeLiteral
)

// ClauseShape classifies one case clause of a switch statement. The
// typeSwitch flag decides whether single non-nil cases describe types or
// values. Anything unrecognized is [ShapeOther], never an error.
func ClauseShape(clause *ast.CaseClause, typeSwitch bool) PatternShape {
	if clause.List == nil {
		return ShapeWildcard
	}

	if len(clause.List) != 1 {
		return ShapeOther
	}

	switch expr := ast.Unparen(clause.List[0]).(type) {
	case *ast.Ident:
		if expr.Name == "nil" {
			return ShapeNilLiteral
		}

		if typeSwitch {
			return ShapeTypeGuard
		}

		return ShapeOther

	case *ast.BasicLit:
		if typeSwitch {
			return ShapeOther // malformed, left to the compiler
		}

		return ShapeLiteral

	default:
		if typeSwitch {
			return ShapeTypeGuard
		}

		return ShapeOther
	}
}
