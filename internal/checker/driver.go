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
	"reflect"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/purelint/purelint/internal/astutil"
	"github.com/purelint/purelint/internal/config"
	"github.com/purelint/purelint/internal/finding"
)

// Driver walks the syntax tree once per pass, in document order, and
// dispatches every visited node to each enabled checker registered for its
// kind. It holds no state across runs; the same tree and rule set always
// produce the same ordered finding list.
type Driver struct {
	checkers  map[reflect.Type][]Checker
	nodeTypes []ast.Node
	generated bool
}

// NewDriver creates a [Driver] for the given options.
func NewDriver(opts Options) *Driver {
	d := &Driver{
		checkers:  make(map[reflect.Type][]Checker),
		nodeTypes: []ast.Node{(*ast.File)(nil)},
		generated: opts.Behavior.Enabled(config.IncludeGenerated),
	}

	for _, c := range opts.checkers() {
		for _, n := range c.Types() {
			t := reflect.TypeOf(n)
			if _, seen := d.checkers[t]; !seen {
				d.nodeTypes = append(d.nodeTypes, n)
			}

			d.checkers[t] = append(d.checkers[t], c)
		}
	}

	return d
}

// Run traverses the pass's syntax trees and returns the findings, sorted
// by source location and deduplicated per rule and node. The traversal
// completes even when zero checkers are enabled.
func (d *Driver) Run(pass *analysis.Pass, in *inspector.Inspector) []finding.Finding {
	var (
		currentFile astutil.CurrentFile
		findings    []finding.Finding
	)

	in.Root().Inspect(d.nodeTypes, func(c inspector.Cursor) bool {
		node := c.Node()

		if file, ok := node.(*ast.File); ok {
			currentFile = astutil.NewCurrentFile(pass.Fset, file)

			return d.generated || !currentFile.Generated()
		}

		for _, checker := range d.checkers[reflect.TypeOf(node)] {
			for _, f := range checker.Check(c, pass) {
				if currentFile.Valid() && currentFile.NoLintComment(f.Pos) {
					continue
				}

				findings = append(findings, f)
			}
		}

		return true
	})

	return finding.Normalize(findings)
}
