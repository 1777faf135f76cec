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
	"flag"

	"github.com/purelint/purelint/internal/config"
)

// registerFlags binds the analyzer configuration to command line flags.
func registerFlags(fs *flag.FlagSet, r *runOptions) {
	ruleFlags := []struct {
		name  string
		usage string
		rule  config.Rule
	}{
		{"rebind", "enable the no-rebind rule", config.Rebind},
		{"augmented-assign", "enable the no-augmented-assign rule", config.AugmentedAssign},
		{"mutable-method", "enable the no-mutable-method rule", config.MutableMethod},
		{"subscript-assign", "enable the no-subscript-assign rule", config.SubscriptAssign},
		{"delete", "enable the no-delete rule", config.Delete},
		{"mutable-literal", "enable the strict no-mutable-literal rule", config.MutableLiteral},
		{"exhaustive", "enable the match-must-be-exhaustive rule", config.Exhaustive},
		{"side-effect", "enable the no-side-effect rule", config.SideEffect},
		{"if", "enable the no-if rule", config.Branch},
	}

	for _, rf := range ruleFlags {
		fs.Var(NewRuleValue(&r.rules, rf.rule), rf.name, rf.usage)
	}

	fs.Var(boolValue[config.Behavior, *config.Behaviors]{flags: &r.behavior, value: config.IncludeGenerated},
		"generated", "check generated files")

	fs.Var(setValue{set: &r.mutators}, "mutators",
		"comma-separated mutator method names, replacing the default set")
	fs.Var(setFileValue{set: &r.mutators}, "mutators-file",
		"YAML file with a versioned mutator method set")
	fs.Var(setValue{set: &r.sideEffects}, "side-effect-funcs",
		"comma-separated side-effecting function names, replacing the default set")
	fs.Var(frozenValue{r: r}, "frozen-wrappers",
		"comma-separated frozen-wrapper constructor names; a non-empty list enables the mutable-literal exemption")
	fs.Var(disableValue{rules: &r.rules}, "disable",
		"comma-separated rule identifiers to disable")
}

// frozenValue sets the frozen-wrapper names and toggles the exemption with
// the list's emptiness, mirroring [WithFrozenWrappers].
type frozenValue struct {
	r *runOptions
}

// Set implements [flag.Value].
func (v frozenValue) Set(s string) error {
	if err := (setValue{set: &v.r.frozenWrappers}).Set(s); err != nil {
		return err
	}

	v.r.behavior.Set(config.FrozenExemption, len(v.r.frozenWrappers) > 0)

	return nil
}

// String implements [flag.Value].
func (v frozenValue) String() string {
	if v.r == nil {
		return ""
	}

	return setValue{set: &v.r.frozenWrappers}.String()
}
