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

// Package analyzer implements the purelint static analysis pass.
//
// # Overview
//
// Purelint lets a team treat data as immutable in a language that does not
// enforce it natively. Each rule is an independent checker over the syntax
// tree; analysis is purely syntactic, confined to one package at a time,
// with no value tracking across function boundaries or aliases.
//
// # Rules
//
// Enabled by default:
//
//   - no-rebind: a plain assignment to a simple name rebinds an existing
//     binding; first bindings and for-loop post statements are exempt
//   - no-augmented-assign: combined operator-assignments and ++/--
//   - no-mutable-method: calls to methods in the closed mutator name set
//   - no-subscript-assign: assignments to subscript expressions
//   - no-delete: calls to the delete and clear builtins
//   - match-must-be-exhaustive: switch statements without a default clause
//
// Disabled by default:
//
//   - no-mutable-literal: slice and map construction (strict)
//   - no-side-effect: calls to a configured set of side-effecting functions
//   - no-if: if statements, for switch-only control flow
//
// # Exhaustiveness
//
// Without type inference, true structural exhaustiveness cannot be decided
// from syntax. The rule therefore requires an explicit default clause; a
// recommended idiom is pairing that clause with an unreachable assertion
// so the type checker proves variant coverage:
//
//	switch v := value.(type) {
//	case Ok:
//	    ...
//	case Err:
//	    ...
//	default:
//	    panic(fmt.Sprintf("unhandled variant %T", v))
//	}
//
// # Suppression
//
// Individual findings can be suppressed with a trailing
// //nolint:purelint comment on the flagged line.
package analyzer
