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

package checker

import (
	"fmt"
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/purelint/purelint/internal/classify"
	"github.com/purelint/purelint/internal/config"
	"github.com/purelint/purelint/internal/finding"
)

// sideEffect flags calls to functions in the configured side-effect set,
// matched by final name only.
type sideEffect struct {
	funcs config.Set
}

func (sideEffect) Rule() config.Rule { return config.SideEffect }

func (sideEffect) Types() []ast.Node {
	return []ast.Node{(*ast.CallExpr)(nil)}
}

func (s sideEffect) Check(c inspector.Cursor, _ *analysis.Pass) []finding.Finding {
	call, ok := c.Node().(*ast.CallExpr)
	if !ok {
		return nil
	}

	name, ok := classify.SideEffectCall(call, s.funcs)
	if !ok {
		return nil
	}

	return []finding.Finding{finding.New(config.SideEffect, call,
		fmt.Sprintf("side-effecting call %q is not allowed", name))}
}
