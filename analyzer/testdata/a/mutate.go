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

package a

import "sort"

type stack struct{ items []int }

func (s *stack) Push(v int) { s.items = append(s.items, v) }

func push(s *stack, v int) {
	s.Push(v) // want `call to mutating method "Push" is not allowed; use a functional alternative`
}

func order(xs []int) {
	// Name-based matching flags package functions sharing a mutator name.
	sort.Sort(sort.IntSlice(xs)) // want `call to mutating method "Sort" is not allowed; use a functional alternative`
}

func assign(m map[string]int) {
	m["a"] = 1 // want `assignment to a subscript is not allowed; containers should be treated as immutable`
}

func bump(xs []int) {
	xs[0]++ // want `augmented assignment "\+\+" is not allowed` `assignment to a subscript is not allowed`
}

func drop(m map[string]int, k string) {
	delete(m, k) // want `use of builtin "delete" is not allowed; construct a new value instead`
	clear(m)     // want `use of builtin "clear" is not allowed; construct a new value instead`
}
