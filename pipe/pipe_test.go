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

package pipe_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/purelint/purelint/pipe"
)

func TestApply(t *testing.T) {
	t.Parallel()

	got := pipe.Apply(5,
		func(n int) int { return n + 1 },
		func(n int) int { return n * 2 },
	)

	assert.Equal(t, 12, got, "functions apply left to right")
}

func TestApplyIdentity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "seed", pipe.Apply("seed"))
}

func TestApplyOrder(t *testing.T) {
	t.Parallel()

	got := pipe.Apply("a",
		func(s string) string { return s + "b" },
		strings.ToUpper,
		func(s string) string { return s + "c" },
	)

	assert.Equal(t, "ABc", got)
}

func TestApplyPanic(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		pipe.Apply(0, func(int) int { panic("boom") })
	})
}
