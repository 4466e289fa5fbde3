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
	"slices"
	"strings"

	"github.com/consensys/go-fol/pkg/util/sexp"
)

// Function is an uninterpreted operator mapping an ordered list of terms to a
// term.  A function with no arguments is a constant symbol.
type Function struct {
	name string
	args []*Term
}

// NewFunction constructs a function application over zero or more terms.  The
// arity of the function is fixed by the number of arguments given.
func NewFunction(name string, args ...*Term) *Function {
	checkNonNil("function", args...)
	//
	return &Function{name, slices.Clone(args)}
}

// Name returns the name of this function.
func (p *Function) Name() string {
	return p.name
}

// Arity returns the number of arguments of this function.
func (p *Function) Arity() uint {
	return uint(len(p.args))
}

// Arguments returns the arguments of this function, in order.
func (p *Function) Arguments() []*Term {
	return slices.Clone(p.args)
}

// Lisp implementation for Node interface.
func (p *Function) Lisp() sexp.SExp {
	return lispOfApplication(p.name, p.args)
}

func (p *Function) String() string {
	return Render(p, unicodeNotation)
}

func (p *Function) render(builder *strings.Builder, notation *Notation) {
	renderApplication(builder, notation, p.name, p.args)
}
