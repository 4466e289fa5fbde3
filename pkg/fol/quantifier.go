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

// QuantifierKind identifies whether a quantifier is universal or existential.
type QuantifierKind uint8

const (
	// UNIVERSAL represents "for all" (∀).
	UNIVERSAL QuantifierKind = iota
	// EXISTENTIAL represents "there exists" (∃).
	EXISTENTIAL
)

func (k QuantifierKind) String() string {
	return unicodeNotation.quantifier(k)
}

// Quantifier binds exactly one variable over a formula body.  Binding is
// purely presentational: the variable need not occur in the body, and nested
// quantifiers may rebind the same name.
type Quantifier struct {
	kind     QuantifierKind
	variable *Variable
	body     Formula
}

// Universal constructs "for all variable, body holds".
func Universal(variable *Variable, body Formula) *Quantifier {
	return newQuantifier(UNIVERSAL, variable, body)
}

// Existential constructs "there exists variable such that body holds".
func Existential(variable *Variable, body Formula) *Quantifier {
	return newQuantifier(EXISTENTIAL, variable, body)
}

func newQuantifier(kind QuantifierKind, variable *Variable, body Formula) *Quantifier {
	checkNonNil("quantifier", variable)
	checkFormulas("quantifier", body)
	//
	return &Quantifier{kind, variable, body}
}

// Kind returns the kind of this quantifier.
func (p *Quantifier) Kind() QuantifierKind {
	return p.kind
}

// Variable returns the variable bound by this quantifier.
func (p *Quantifier) Variable() *Variable {
	return p.variable
}

// Body returns the formula over which the variable is bound.
func (p *Quantifier) Body() Formula {
	return p.body
}

// Lisp implementation for Node interface.
func (p *Quantifier) Lisp() sexp.SExp {
	head := "forall"
	//
	if p.kind == EXISTENTIAL {
		head = "exists"
	}
	//
	return sexp.NewApplication(head, p.variable.Lisp(), p.body.Lisp())
}

func (p *Quantifier) String() string {
	return Render(p, unicodeNotation)
}

func (p *Quantifier) render(builder *strings.Builder, notation *Notation) {
	builder.WriteString(notation.quantifier(p.kind))
	p.variable.render(builder, notation)
	builder.WriteString("[")
	p.body.render(builder, notation)
	builder.WriteString("]")
}
