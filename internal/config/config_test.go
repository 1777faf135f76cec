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

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/purelint/purelint/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	var rules Rules

	assert.False(t, rules.Enabled(Rebind))

	rules.Enable(Rebind)
	assert.True(t, rules.Enabled(Rebind))
	assert.False(t, rules.Enabled(Delete))

	rules.Set(Rebind, false)
	assert.False(t, rules.Enabled(Rebind))

	rules = NewBitMask(Rebind | Delete)
	assert.True(t, rules.Enabled(Rebind))
	assert.True(t, rules.Enabled(Delete))
	assert.False(t, rules.Enabled(Exhaustive))
}

func TestRuleID(t *testing.T) {
	t.Parallel()

	ids := map[Rule]string{
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

	for rule, id := range ids {
		assert.Equal(t, id, rule.ID())

		got, err := RuleFromID(id)
		require.NoError(t, err)
		assert.Equal(t, rule, got)
	}

	assert.Equal(t, "unknown", Rule(1<<15).ID())

	_, err := RuleFromID("no-such-rule")
	assert.ErrorIs(t, err, ErrUnknownRule)
}

func TestDefaultRules(t *testing.T) {
	t.Parallel()

	rules := DefaultRules()

	for _, rule := range []Rule{Rebind, AugmentedAssign, MutableMethod, SubscriptAssign, Delete, Exhaustive} {
		assert.True(t, rules.Enabled(rule), "rule %s should default on", rule.ID())
	}

	for _, rule := range []Rule{MutableLiteral, SideEffect, Branch} {
		assert.False(t, rules.Enabled(rule), "rule %s should default off", rule.ID())
	}
}
