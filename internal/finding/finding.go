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

// Package finding defines the output value type of the purelint engine.
package finding

import (
	"cmp"
	"go/token"
	"slices"

	"golang.org/x/tools/go/analysis"

	"github.com/purelint/purelint/internal/config"
)

// Finding is one reported rule violation. It is immutable once created;
// the engine never retains findings beyond a single traversal.
type Finding struct {
	Rule     config.Rule
	Pos, End token.Pos
	Message  string
}

// New creates a [Finding] covering the given source range.
func New(rule config.Rule, rng analysis.Range, message string) Finding {
	return Finding{Rule: rule, Pos: rng.Pos(), End: rng.End(), Message: message}
}

// Diagnostic converts the finding into an [analysis.Diagnostic], carrying
// the stable rule identifier as the diagnostic category.
func (f Finding) Diagnostic() analysis.Diagnostic {
	return analysis.Diagnostic{
		Pos:      f.Pos,
		End:      f.End,
		Category: f.Rule.ID(),
		Message:  f.Message,
	}
}

// key identifies a finding for deduplication.
type key struct {
	rule config.Rule
	pos  token.Pos
}

// Normalize sorts findings by source location and drops duplicates for the
// same rule and node, preserving the engine's output invariants.
func Normalize(findings []Finding) []Finding {
	slices.SortStableFunc(findings, func(a, b Finding) int {
		if c := cmp.Compare(a.Pos, b.Pos); c != 0 {
			return c
		}

		return cmp.Compare(a.Rule, b.Rule)
	})

	seen := make(map[key]struct{}, len(findings))

	return slices.DeleteFunc(findings, func(f Finding) bool {
		k := key{rule: f.Rule, pos: f.Pos}
		if _, dup := seen[k]; dup {
			return true
		}
		seen[k] = struct{}{}

		return false
	})
}
