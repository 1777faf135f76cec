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

package mutators

type counter struct{ n int }

func (c *counter) Bump() { c.n = c.n + 1 }

func use(c *counter) {
	c.Bump() // want `call to mutating method "Bump" is not allowed; use a functional alternative`
}

type log struct{ lines []string }

// Append returns a new log; the custom mutator set no longer contains it.
func (l log) Append(line string) log {
	return log{lines: append(l.lines, line)}
}

func extend(l log) log {
	return l.Append("x")
}
