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

func describe(v any) string {
	switch v.(type) { // want `switch statement is not exhaustive; add a default case`
	case nil:
		return "none"
	case int:
		return "int"
	}

	return "unknown"
}

func sign(n int) string {
	switch {
	case n < 0:
		return "negative"
	default:
		return "zero or positive"
	}
}

func fallback(v any) string {
	switch v.(type) {
	default:
		return "any"
	}
}

func empty(n int) {
	switch n { // want `switch statement is not exhaustive; add a default case`
	}
}

func nested(v any) string {
	switch s := v.(type) { // want `switch statement is not exhaustive; add a default case`
	case string:
		switch len(s) {
		case 0:
			return "empty"
		default:
			return "nonempty"
		}
	}

	return ""
}
