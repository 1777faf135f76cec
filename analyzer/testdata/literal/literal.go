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

package literal

func frozen(xs []int) []int { return xs }

func values() []int {
	return []int{1, 2, 3} // want `mutable slice construction is discouraged; use an immutable value`
}

func table() map[string]int {
	return map[string]int{"a": 1} // want `mutable map construction is discouraged; use an immutable value`
}

func fixed() [2]int {
	return [2]int{1, 2} // arrays have value semantics and are exempt
}

func buffer() []byte {
	return make([]byte, 8) // want `mutable slice construction is discouraged; use an immutable value`
}

func index() map[string]bool {
	return make(map[string]bool) // want `mutable map construction is discouraged; use an immutable value`
}

func exempted() []int {
	return frozen([]int{1, 2}) // passed to a frozen wrapper
}
