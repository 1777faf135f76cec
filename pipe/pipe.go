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

// Package pipe provides the sequential function application helper that
// accompanies the purelint discipline: transform a value through a chain
// of pure unary functions instead of mutating it in place.
package pipe

// Apply passes seed through fns left to right and returns the result.
// Apply(x, f, g, h) equals h(g(f(x))). A panicking transformation
// propagates to the caller unchanged.
func Apply[T any](seed T, fns ...func(T) T) T {
	result := seed
	for _, fn := range fns {
		result = fn(result)
	}

	return result
}
