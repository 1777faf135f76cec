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

package analyzer

import (
	"errors"
	"fmt"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/purelint/purelint/internal/checker"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// run executes one purelint traversal. The engine is a pure function from
// the pass's syntax trees and the enabled rule set to an ordered finding
// list; no state survives between calls, so the host may run passes for
// different packages in parallel without coordination.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("purelint: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	d := checker.NewDriver(checker.Options{
		Rules:          r.rules,
		Behavior:       r.behavior,
		Mutators:       r.mutators,
		SideEffects:    r.sideEffects,
		FrozenWrappers: r.frozenWrappers,
	})

	for _, f := range d.Run(p, in) {
		p.Report(f.Diagnostic())
	}

	return nil, nil
}
