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

import "github.com/purelint/purelint/internal/config"

// runOptions represent the configuration of one purelint analyzer instance.
type runOptions struct {
	// rules represents the rules to be enabled.
	rules config.Rules

	// behavior holds non-rule toggles.
	behavior config.Behaviors

	// mutators is the closed in-place mutator method name set.
	mutators config.Set

	// sideEffects is the side-effecting function name set.
	sideEffects config.Set

	// frozenWrappers names constructors exempting their literal arguments
	// from the mutable-literal rule.
	frozenWrappers config.Set
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions initializes a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	return &runOptions{
		rules:          config.DefaultRules(),
		mutators:       config.DefaultMutators(),
		sideEffects:    config.DefaultSideEffects(),
		frozenWrappers: config.NewSet(),
	}
}
