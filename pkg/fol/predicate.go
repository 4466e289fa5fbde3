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

// Predicate is a named relation over an ordered list of variables, which is
// either true or false.  Predicate names are not required to be unique.
type Predicate struct {
	name string
	args []*Variable
}

// NewPredicate constructs a predicate over zero or more variables.
func NewPredicate(name string, args ...*Variable) *Predicate {
	checkNonNil("predicate", args...)
	//
	return &Predicate{name, slices.Clone(args)}
}

// Name returns the name of this predicate.
func (p *Predicate) Name() string {
	return p.name
}

// Arity returns the number of arguments of this predicate.
func (p *Predicate) Arity() uint {
	return uint(len(p.args))
}

// Arguments returns the arguments of this predicate, in order.
func (p *Predicate) Arguments() []*Variable {
	return slices.Clone(p.args)
}

// Lisp implementation for Node interface.
func (p *Predicate) Lisp() sexp.SExp {
	return lispOfApplication(p.name, p.args)
}

func (p *Predicate) String() string {
	return Render(p, unicodeNotation)
}

func (p *Predicate) render(builder *strings.Builder, notation *Notation) {
	renderApplication(builder, notation, p.name, p.args)
}
