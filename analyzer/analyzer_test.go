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

package analyzer_test

import (
	"io"
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	. "github.com/purelint/purelint/analyzer"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	testdata := analysistest.TestData()

	tests := []struct {
		name    string
		dir     string
		options Option
	}{
		{
			name: "Default",
			dir:  "./a",
		},
		{
			name:    "Literal",
			dir:     "./literal",
			options: Options{WithMutableLiteral(true), WithFrozenWrappers([]string{"frozen"})},
		},
		{
			name:    "Pure",
			dir:     "./pure",
			options: Options{WithSideEffect(true), WithBranch(true)},
		},
		{
			name:    "Mutators",
			dir:     "./mutators",
			options: WithMutators([]string{"bump"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New(tt.options)
			analysistest.Run(t, testdata, a, tt.dir)
		})
	}
}

func TestDisableFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "Known", args: []string{"-disable=no-delete,no-rebind"}},
		{name: "Unknown", args: []string{"-disable=no-such-rule"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New()
			a.Flags.SetOutput(io.Discard) // the zero FlagSet continues on error

			if err := a.Flags.Parse(tt.args); (err != nil) != tt.wantErr {
				t.Errorf("Parse(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
		})
	}
}
