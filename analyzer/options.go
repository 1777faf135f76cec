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
	"log/slog"

	"github.com/purelint/purelint/internal/config"
)

// Option configures specific behavior of a [New] purelint analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// ruleOption toggles a single rule. All rule options share this shape.
type ruleOption struct {
	rule    config.Rule
	enabled bool
}

func (o ruleOption) apply(r *runOptions) {
	r.rules.Set(o.rule, o.enabled)
}

func (o ruleOption) LogAttr() slog.Attr {
	return slog.Bool(o.rule.ID(), o.enabled)
}

// WithRebind is an [Option] to configure the no-rebind rule.
func WithRebind(enabled bool) Option { return ruleOption{config.Rebind, enabled} }

// WithAugmentedAssign is an [Option] to configure the no-augmented-assign rule.
func WithAugmentedAssign(enabled bool) Option { return ruleOption{config.AugmentedAssign, enabled} }

// WithMutableMethod is an [Option] to configure the no-mutable-method rule.
func WithMutableMethod(enabled bool) Option { return ruleOption{config.MutableMethod, enabled} }

// WithSubscriptAssign is an [Option] to configure the no-subscript-assign rule.
func WithSubscriptAssign(enabled bool) Option { return ruleOption{config.SubscriptAssign, enabled} }

// WithDelete is an [Option] to configure the no-delete rule.
func WithDelete(enabled bool) Option { return ruleOption{config.Delete, enabled} }

// WithMutableLiteral is an [Option] to configure the strict no-mutable-literal rule.
func WithMutableLiteral(enabled bool) Option { return ruleOption{config.MutableLiteral, enabled} }

// WithExhaustive is an [Option] to configure the match-must-be-exhaustive rule.
func WithExhaustive(enabled bool) Option { return ruleOption{config.Exhaustive, enabled} }

// WithSideEffect is an [Option] to configure the no-side-effect rule.
func WithSideEffect(enabled bool) Option { return ruleOption{config.SideEffect, enabled} }

// WithBranch is an [Option] to configure the no-if rule.
func WithBranch(enabled bool) Option { return ruleOption{config.Branch, enabled} }

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithMutators is an [Option] replacing the closed mutator-method name set.
// The set is versioned configuration data; matching stays name-based with
// no receiver type awareness.
func WithMutators(names []string) Option { return mutatorsOption{names: names} }

type mutatorsOption struct{ names []string }

func (o mutatorsOption) apply(r *runOptions) {
	r.mutators = config.NewSet(o.names...)
}

func (o mutatorsOption) LogAttr() slog.Attr {
	return slog.Any("mutators", o.names)
}

// WithSideEffectFuncs is an [Option] replacing the side-effecting function name set.
func WithSideEffectFuncs(names []string) Option { return sideEffectFuncsOption{names: names} }

type sideEffectFuncsOption struct{ names []string }

func (o sideEffectFuncsOption) apply(r *runOptions) {
	r.sideEffects = config.NewSet(o.names...)
}

func (o sideEffectFuncsOption) LogAttr() slog.Attr {
	return slog.Any("side-effect-funcs", o.names)
}

// WithFrozenWrappers is an [Option] naming constructors whose literal
// arguments are exempt from the no-mutable-literal rule. A non-empty list
// enables the exemption, an empty list restores strict checking.
func WithFrozenWrappers(names []string) Option { return frozenWrappersOption{names: names} }

type frozenWrappersOption struct{ names []string }

func (o frozenWrappersOption) apply(r *runOptions) {
	r.frozenWrappers = config.NewSet(o.names...)
	r.behavior.Set(config.FrozenExemption, len(o.names) > 0)
}

func (o frozenWrappersOption) LogAttr() slog.Attr {
	return slog.Any("frozen-wrappers", o.names)
}
