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

package gclplugin

import purelint "github.com/purelint/purelint/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Rebind enables the no-rebind rule.
	Rebind *bool `json:"rebind,omitzero"`
	// AugmentedAssign enables the no-augmented-assign rule.
	AugmentedAssign *bool `json:"augmented-assign,omitzero"`
	// MutableMethod enables the no-mutable-method rule.
	MutableMethod *bool `json:"mutable-method,omitzero"`
	// SubscriptAssign enables the no-subscript-assign rule.
	SubscriptAssign *bool `json:"subscript-assign,omitzero"`
	// Delete enables the no-delete rule.
	Delete *bool `json:"delete,omitzero"`
	// MutableLiteral enables the strict no-mutable-literal rule.
	MutableLiteral *bool `json:"mutable-literal,omitzero"`
	// Exhaustive enables the match-must-be-exhaustive rule.
	Exhaustive *bool `json:"exhaustive,omitzero"`
	// SideEffect enables the no-side-effect rule.
	SideEffect *bool `json:"side-effect,omitzero"`
	// Branch enables the no-if rule.
	Branch *bool `json:"if,omitzero"`
	// Mutators replaces the closed mutator-method name set.
	Mutators []string `json:"mutators,omitzero"`
	// SideEffectFuncs replaces the side-effecting function name set.
	SideEffectFuncs []string `json:"side-effect-funcs,omitzero"`
	// FrozenWrappers names constructors exempting literal arguments from
	// the no-mutable-literal rule.
	FrozenWrappers []string `json:"frozen-wrappers,omitzero"`
}

// Options converts [Settings] into a list of [purelint.Option] for the purelint analyzer.
// It processes settings and applies them only when explicitly set.
func (s Settings) Options() []purelint.Option {
	var opts []purelint.Option

	opts = appendOption(opts, s.Rebind, purelint.WithRebind)
	opts = appendOption(opts, s.AugmentedAssign, purelint.WithAugmentedAssign)
	opts = appendOption(opts, s.MutableMethod, purelint.WithMutableMethod)
	opts = appendOption(opts, s.SubscriptAssign, purelint.WithSubscriptAssign)
	opts = appendOption(opts, s.Delete, purelint.WithDelete)
	opts = appendOption(opts, s.MutableLiteral, purelint.WithMutableLiteral)
	opts = appendOption(opts, s.Exhaustive, purelint.WithExhaustive)
	opts = appendOption(opts, s.SideEffect, purelint.WithSideEffect)
	opts = appendOption(opts, s.Branch, purelint.WithBranch)
	opts = appendListOption(opts, s.Mutators, purelint.WithMutators)
	opts = appendListOption(opts, s.SideEffectFuncs, purelint.WithSideEffectFuncs)
	opts = appendListOption(opts, s.FrozenWrappers, purelint.WithFrozenWrappers)

	return opts
}

// appendOption appends a non-nil setting to a [purelint.Option] list.
func appendOption[T any](opts []purelint.Option, value *T, constructor func(T) purelint.Option) []purelint.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

// appendListOption appends a non-empty list setting to a [purelint.Option] list.
func appendListOption(opts []purelint.Option, values []string, constructor func([]string) purelint.Option) []purelint.Option {
	if len(values) == 0 {
		return opts
	}

	return append(opts, constructor(values))
}
