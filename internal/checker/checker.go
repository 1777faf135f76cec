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

// Package checker implements the purelint rule checkers and the traversal
// driver that dispatches syntax tree nodes to them.
//
// Each checker is stateless per traversal: it registers interest in a set
// of node kinds, consults the classifier and returns zero or more findings
// for a visited node. Checkers are total over the kinds they subscribe to
// and never fail; nodes they cannot classify yield no findings.
package checker

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/purelint/purelint/internal/config"
	"github.com/purelint/purelint/internal/finding"
)

// Checker is one independently toggleable rule.
type Checker interface {
	// Rule returns the rule this checker enforces.
	Rule() config.Rule

	// Types returns the node kinds the checker subscribes to, as nil
	// pointers of the concrete types, matching the inspector filter form.
	Types() []ast.Node

	// Check inspects one visited node and returns its findings.
	Check(c inspector.Cursor, pass *analysis.Pass) []finding.Finding
}

// Options parameterize a [Driver].
type Options struct {
	// Rules selects the enabled checkers.
	Rules config.Rules

	// Behavior holds non-rule toggles.
	Behavior config.Behaviors

	// Mutators is the closed set of in-place mutator method names.
	Mutators config.Set

	// SideEffects is the set of side-effecting function names.
	SideEffects config.Set

	// FrozenWrappers names constructors whose literal arguments are exempt
	// from the mutable-literal rule when the exemption is enabled.
	FrozenWrappers config.Set
}

// checkers returns the enabled checkers in their stable registration order.
func (o Options) checkers() []Checker {
	all := []Checker{
		rebind{},
		augmented{},
		mutableMethod{mutators: o.Mutators},
		subscript{},
		deletion{},
		mutableLiteral{
			wrappers: o.FrozenWrappers,
			exempt:   o.Behavior.Enabled(config.FrozenExemption),
		},
		exhaustive{},
		sideEffect{funcs: o.SideEffects},
		branch{},
	}

	enabled := make([]Checker, 0, len(all))
	for _, c := range all {
		if o.Rules.Enabled(c.Rule()) {
			enabled = append(enabled, c)
		}
	}

	return enabled
}
