// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package fol

import (
	"strings"

	"github.com/consensys/go-fol/pkg/util/sexp"
)

// Variable is an atomic named object which formulas reason about.  Variables
// are compared by name, thus two independently constructed variables "x" are
// equal even though they are distinct nodes.
type Variable struct {
	name string
}

// NewVariable constructs a variable with the given name.  No validation is
// performed on the name (i.e. it may be empty).
func NewVariable(name string) *Variable {
	return &Variable{name}
}

// Name returns the name of this variable.
func (p *Variable) Name() string {
	return p.name
}

// Equals checks whether this variable has the same name as another.
func (p *Variable) Equals(other *Variable) bool {
	return p.name == other.name
}

// Lisp implementation for Node interface.
func (p *Variable) Lisp() sexp.SExp {
	return sexp.NewSymbol(p.name)
}

func (p *Variable) String() string {
	return Render(p, unicodeNotation)
}

func (p *Variable) render(builder *strings.Builder, _ *Notation) {
	builder.WriteString(p.name)
}
