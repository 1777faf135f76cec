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

// Package testsource provides parsing helpers shared by the checker tests.
//
// It removes the boilerplate of wrapping statement fragments in a package
// and function, parsing them with comments attached and optionally running
// the type checker over the result.
package testsource

import (
	"bytes"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"
)

const testpkg = "test"

// parseMode keeps comments so that suppression directives stay testable.
const parseMode = parser.ParseComments | parser.SkipObjectResolution

// ParseFile parses a complete Go source file.
func ParseFile(tb testing.TB, src string) (*token.FileSet, *ast.File) {
	tb.Helper()

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "test.go", src, parseMode)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return fset, f
}

// ParseBody wraps a statement fragment in `func _() { ... }` within package
// test and parses it. This allows testing statement-level fragments without
// constructing the surrounding scaffolding by hand.
//
// Call [Check] on the result when type information is needed.
func ParseBody(tb testing.TB, src string) (*token.FileSet, *ast.File) {
	tb.Helper()

	return ParseFile(tb, wrapBody(src).String())
}

// Check type-checks the file and returns the populated [types.Info]. The
// fragment must be well typed; checkers degrade without type information,
// but these helpers only model the fully resolved case.
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) *types.Info {
	tb.Helper()

	info := &types.Info{
		Types: make(map[ast.Expr]types.TypeAndValue),
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
	}

	conf := types.Config{Importer: importer.Default()}

	if _, err := conf.Check(testpkg, fset, []*ast.File{f}, info); err != nil {
		tb.Fatalf("Failed to type-check source: %v", err)
	}

	return info
}

func wrapBody(src string) *bytes.Buffer {
	const (
		header = "package " + testpkg + "\n\nfunc _() {\n"
		suffix = "\n}\n"
	)

	var srcFile bytes.Buffer
	srcFile.Grow(len(header) + len(src) + len(suffix))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(src)    // ignore error
	srcFile.WriteString(suffix) // ignore error

	return &srcFile
}
