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

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Set is a case-folded set of function or method names. It is the injected,
// versioned configuration data behind the name-based rules: membership is
// decided by name alone, with no receiver type awareness. The resulting
// false positives and negatives are a documented tradeoff, not a bug.
type Set map[string]struct{}

// NewSet builds a [Set] from the given names, folding case.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, name := range names {
		s[strings.ToLower(name)] = struct{}{}
	}

	return s
}

// Contains reports whether name is in the set, ignoring case.
func (s Set) Contains(name string) bool {
	_, ok := s[strings.ToLower(name)]

	return ok
}

// Names returns the members of the set in folded form, unordered.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}

	return names
}

// DefaultMutators returns the closed set of method names presumed to mutate
// their receiver in place. It mirrors the classic container mutators plus
// the names Go container types conventionally use.
func DefaultMutators() Set {
	return NewSet(
		"append", "extend", "insert", "push", "pushback", "pushfront",
		"pop", "remove", "clear", "update", "setdefault",
		"add", "set", "store", "delete", "swap", "sort",
	)
}

// DefaultSideEffects returns the set of function names treated as
// side-effecting calls by the no-side-effect rule.
func DefaultSideEffects() Set {
	return NewSet(
		"print", "printf", "println",
		"panic", "exit", "fatal", "fatalf", "fatalln",
	)
}

// setFile is the on-disk form of a versioned name set.
type setFile struct {
	Version int      `yaml:"version"`
	Names   []string `yaml:"names"`
}

// setFileVersion is the only supported set file format version.
const setFileVersion = 1

// LoadSet reads a versioned name set from a YAML file of the form:
//
//	version: 1
//	names: [append, push, store]
func LoadSet(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading name set: %w", err)
	}

	var file setFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing name set %s: %w", path, err)
	}

	if file.Version != setFileVersion {
		return nil, fmt.Errorf("name set %s: unsupported version %d", path, file.Version)
	}

	return NewSet(file.Names...), nil
}
