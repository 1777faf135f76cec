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

func rebind() int {
	x := 1
	x = 2 // want `rebinding name "x" is not allowed`

	y, z := x, 3
	y, w := z, 4 // want `rebinding name "y" is not allowed`

	return y + w
}

func swap(a, b int) (int, int) {
	a, b = b, a // want `rebinding name "a" is not allowed` `rebinding name "b" is not allowed`

	return a, b
}

func loop(total int) int {
	sum := 0
	for i := 0; i < total; i = i + 1 { // loop induction is exempt
		sum = sum + i // want `rebinding name "sum" is not allowed`
	}

	return sum
}

func scan(xs []int) int {
	var k, v int
	for k, v = range xs { // want `rebinding name "k" is not allowed` `rebinding name "v" is not allowed`
		_ = k
	}

	for i, x := range xs { // fresh bindings per iteration
		_, _ = i, x
	}

	return v
}

func augmented(n int) int {
	m := n
	m += 2 // want `augmented assignment "\+=" is not allowed`
	m++    // want `augmented assignment "\+\+" is not allowed`

	return m
}

func tolerated(k string) map[string]int {
	m := map[string]int{}
	m[k] = 1 //nolint:purelint

	return m
}
