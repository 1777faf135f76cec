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

// Package config holds the rule set, behavioral flags and name sets that
// parameterize the purelint checkers.
package config

import (
	"errors"
	"fmt"
)

// Rule identifies a single purelint rule.
type Rule uint16

const (
	// Rebind flags plain assignments that rebind an existing name.
	Rebind Rule = 1 << iota

	// AugmentedAssign flags combined operator-assignments and ++/--.
	AugmentedAssign

	// MutableMethod flags calls to methods in the configured mutator set.
	MutableMethod

	// SubscriptAssign flags assignments to subscript expressions.
	SubscriptAssign

	// Delete flags calls to the delete and clear builtins.
	Delete

	// MutableLiteral flags slice and map literal construction.
	MutableLiteral

	// Exhaustive flags switch statements without a default clause.
	Exhaustive

	// SideEffect flags calls to functions in the configured side-effect set.
	SideEffect

	// Branch flags if statements.
	Branch
)

// Rules is a bitmask of enabled [Rule] values.
type Rules = BitMask[Rule]

// DefaultRules returns the rules enabled when no configuration is given.
// MutableLiteral is strict and stays off by default, SideEffect and Branch
// are supplemental purity rules.
func DefaultRules() Rules {
	return NewBitMask(Rebind | AugmentedAssign | MutableMethod | SubscriptAssign | Delete | Exhaustive)
}

// ruleIDs maps each rule to its stable, host-facing identifier.
var ruleIDs = map[Rule]string{
	Rebind:          "no-rebind",
	AugmentedAssign: "no-augmented-assign",
	MutableMethod:   "no-mutable-method",
	SubscriptAssign: "no-subscript-assign",
	Delete:          "no-delete",
	MutableLiteral:  "no-mutable-literal",
	Exhaustive:      "match-must-be-exhaustive",
	SideEffect:      "no-side-effect",
	Branch:          "no-if",
}

// ID returns the stable identifier of the rule, or "unknown" for values
// outside the defined set.
func (r Rule) ID() string {
	if id, ok := ruleIDs[r]; ok {
		return id
	}

	return "unknown"
}

// ErrUnknownRule is returned when a rule identifier cannot be resolved.
var ErrUnknownRule = errors.New("unknown rule")

// RuleFromID resolves a stable rule identifier back to its [Rule] value.
// Unknown identifiers are a configuration error and surface at startup.
func RuleFromID(id string) (Rule, error) {
	for rule, ruleID := range ruleIDs {
		if ruleID == id {
			return rule, nil
		}
	}

	return 0, fmt.Errorf("%w %q", ErrUnknownRule, id)
}

// Behavior holds options that are not rule toggles.
type Behavior uint8

const (
	// IncludeGenerated enables analysis of generated files.
	IncludeGenerated Behavior = 1 << iota

	// FrozenExemption exempts mutable literals passed directly to a
	// configured frozen-wrapper constructor.
	FrozenExemption
)

// Behaviors is a bitmask of [Behavior] values.
type Behaviors = BitMask[Behavior]
