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

// LiteralKind describes a mutable collection construction.
type LiteralKind uint8

const (
	// LiteralNone marks nodes that are not a mutable construction.
	LiteralNone LiteralKind = iota

	// LiteralSlice is a slice literal or make of a slice type.
	LiteralSlice

	// LiteralMap is a map literal or make of a map type.
	LiteralMap
)

// String returns the kind name used in diagnostic messages.
func (k LiteralKind) String() string {
	switch k {
	case LiteralSlice:
		return "slice"
	case LiteralMap:
		return "map"
	default:
		return "none"
	}
}

// MutableLiteral classifies a mutable collection construction. Slice and
// map composite literals and make calls for slice or map types qualify.
// Fixed-size arrays have value semantics and are exempt, as are named-type
// literals, which cannot be resolved syntactically.
func MutableLiteral(node ast.Node) LiteralKind {
	switch n := node.(type) {
	case *ast.CompositeLit:
		return typeLiteralKind(n.Type)

	case *ast.CallExpr:
		ident, ok := ast.Unparen(n.Fun).(*ast.Ident)
		if !ok || ident.Name != "make" || len(n.Args) == 0 {
			return LiteralNone
		}

		return typeLiteralKind(n.Args[0])

	default:
		return LiteralNone
	}
}

func typeLiteralKind(expr ast.Expr) LiteralKind {
	switch t := expr.(type) {
	case *ast.ArrayType:
		if t.Len != nil {
			return LiteralNone // fixed-size array
		}

		return LiteralSlice

	case *ast.MapType:
		return LiteralMap

	default:
		return LiteralNone
	}
}
