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
	"slices"
	"strconv"
	"strings"

	"github.com/purelint/purelint/internal/config"
)

// boolValue adapts one flag of a bitmask to the [flag.Value] interface.
type boolValue[F any, B boolFlag[F]] struct {
	flags B
	value F
}

type boolFlag[F any] interface {
	comparable
	Set(flag F, value bool)
	Enabled(flag F) bool
}

// Set implements [flag.Value].
func (f boolValue[_, B]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.value, b)

	return nil
}

// String implements [flag.Value].
func (f boolValue[_, B]) String() string {
	var null B
	if f.flags == null {
		return "false"
	}

	return strconv.FormatBool(f.flags.Enabled(f.value))
}

// Get implements [flag.Getter].
func (f boolValue[_, B]) Get() any {
	var null B
	if f.flags == null {
		return false
	}

	return f.flags.Enabled(f.value)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f boolValue[_, _]) IsBoolFlag() bool { return true }

// NewRuleValue creates a boolean [flag.Getter] toggling one rule.
func NewRuleValue(rules *config.Rules, rule config.Rule) flag.Getter {
	return boolValue[config.Rule, *config.Rules]{flags: rules, value: rule}
}

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}

// setValue binds a comma-separated name list flag to a [config.Set].
type setValue struct {
	set *config.Set
}

// Set implements [flag.Value].
func (v setValue) Set(s string) error {
	var names []string
	for name := range strings.SplitSeq(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	*v.set = config.NewSet(names...)

	return nil
}

// String implements [flag.Value].
func (v setValue) String() string {
	if v.set == nil || *v.set == nil {
		return ""
	}

	names := (*v.set).Names()
	slices.Sort(names)

	return strings.Join(names, ",")
}

// setFileValue loads a versioned YAML name set into a [config.Set].
type setFileValue struct {
	set *config.Set
}

// Set implements [flag.Value]. A load failure surfaces at flag parsing,
// before any traversal starts.
func (v setFileValue) Set(path string) error {
	set, err := config.LoadSet(path)
	if err != nil {
		return err
	}

	*v.set = set

	return nil
}

// String implements [flag.Value].
func (setFileValue) String() string { return "" }

// disableValue disables rules by their stable identifiers. Unknown
// identifiers are a configuration error reported at flag parsing.
type disableValue struct {
	rules *config.Rules
}

// Set implements [flag.Value].
func (v disableValue) Set(s string) error {
	for id := range strings.SplitSeq(s, ",") {
		rule, err := config.RuleFromID(strings.TrimSpace(id))
		if err != nil {
			return err
		}

		v.rules.Disable(rule)
	}

	return nil
}

// String implements [flag.Value].
func (disableValue) String() string { return "" }
