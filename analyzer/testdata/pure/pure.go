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

package pure

import "fmt"

func report(err error) {
	if err != nil { // want `use of if statements is not allowed`
		fmt.Println(err) // want `side-effecting call "Println" is not allowed`
	}
}

func halt(code int) {
	print("done") // want `side-effecting call "print" is not allowed`
	panic(code)   // want `side-effecting call "panic" is not allowed`
}

func pick(ok bool, a, b int) int {
	switch ok {
	case true:
		return a
	default:
		return b
	}
}
