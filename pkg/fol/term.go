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

// Term is either a variable or a function application, and is what functions
// and equalities range over.  Exactly one of the two is held.
type Term struct {
	variable *Variable
	function *Function
}

// TermOfVariable constructs a term holding a variable.
func TermOfVariable(variable *Variable) *Term {
	checkNonNil("term", variable)
	//
	return &Term{variable, nil}
}

// TermOfFunction constructs a term holding a function application.
func TermOfFunction(function *Function) *Term {
	checkNonNil("term", function)
	//
	return &Term{nil, function}
}

// IsVariable checks whether this term holds a variable.
func (p *Term) IsVariable() bool {
	return p.variable != nil
}

// IsFunction checks whether this term holds a function application.
func (p *Term) IsFunction() bool {
	return p.function != nil
}

// Variable returns the variable held by this term.  If this term holds a
// function, then this will panic.
func (p *Term) Variable() *Variable {
	if p.variable != nil {
		return p.variable
	}
	//
	panic("cannot take variable, as term holds function")
}

// Function returns the function held by this term.  If this term holds a
// variable, then this will panic.
func (p *Term) Function() *Function {
	if p.function != nil {
		return p.function
	}
	//
	panic("cannot take function, as term holds variable")
}

// Lisp implementation for Node interface.
func (p *Term) Lisp() sexp.SExp {
	return p.node().Lisp()
}

func (p *Term) String() string {
	return Render(p, unicodeNotation)
}

func (p *Term) render(builder *strings.Builder, notation *Notation) {
	p.node().render(builder, notation)
}

func (p *Term) node() Node {
	if p.variable != nil {
		return p.variable
	}
	//
	return p.function
}
