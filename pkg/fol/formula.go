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

// Formula is a well-formed formula.  This is either an atomic formula (i.e. an
// Atom or an Equation), a Negation, a Compound formula built from a binary
// connective, or a Quantified formula.  No other implementations exist.
type Formula interface {
	Node
	// isFormula seals this interface against implementations outside this
	// package.
	isFormula()
	// isNil checks whether this is a nil pointer of some variant.
	isNil() bool
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var (
	_ Formula = (*Atom)(nil)
	_ Formula = (*Equation)(nil)
	_ Formula = (*Negation)(nil)
	_ Formula = (*Compound)(nil)
	_ Formula = (*Quantified)(nil)
)

// ============================================================================
// Atom
// ============================================================================

// Atom is an atomic formula given by a predicate.
type Atom struct {
	predicate *Predicate
}

// FromPredicate constructs an atomic formula from a predicate.
func FromPredicate(predicate *Predicate) Formula {
	checkNonNil("atom", predicate)
	//
	return &Atom{predicate}
}

// Predicate returns the underlying predicate.
func (p *Atom) Predicate() *Predicate {
	return p.predicate
}

// Lisp implementation for Node interface.
func (p *Atom) Lisp() sexp.SExp {
	return p.predicate.Lisp()
}

func (p *Atom) String() string {
	return Render(p, unicodeNotation)
}

func (p *Atom) render(builder *strings.Builder, notation *Notation) {
	p.predicate.render(builder, notation)
}

func (p *Atom) isFormula() {}

func (p *Atom) isNil() bool { return p == nil }

// ============================================================================
// Equation
// ============================================================================

// Equation is an atomic formula asserting two terms denote the same object.
type Equation struct {
	left  *Term
	right *Term
}

// Equality constructs the atomic formula "left = right".
func Equality(left *Term, right *Term) Formula {
	checkNonNil("equation", left, right)
	//
	return &Equation{left, right}
}

// Left returns the left-hand side of this equation.
func (p *Equation) Left() *Term {
	return p.left
}

// Right returns the right-hand side of this equation.
func (p *Equation) Right() *Term {
	return p.right
}

// Lisp implementation for Node interface.
func (p *Equation) Lisp() sexp.SExp {
	return sexp.NewApplication("=", p.left.Lisp(), p.right.Lisp())
}

func (p *Equation) String() string {
	return Render(p, unicodeNotation)
}

func (p *Equation) render(builder *strings.Builder, notation *Notation) {
	builder.WriteString("[")
	p.left.render(builder, notation)
	builder.WriteString(" ")
	builder.WriteString(notation.Equals)
	builder.WriteString(" ")
	p.right.render(builder, notation)
	builder.WriteString("]")
}

func (p *Equation) isFormula() {}

func (p *Equation) isNil() bool { return p == nil }

// ============================================================================
// Negation
// ============================================================================

// Negation is the logical negation of a formula.
type Negation struct {
	body Formula
}

// Negate constructs the negation of a formula.  No brackets are added when
// rendered, since the body is either atomic or supplies its own.
func Negate(body Formula) Formula {
	checkFormulas("negation", body)
	//
	return &Negation{body}
}

// Body returns the negated formula.
func (p *Negation) Body() Formula {
	return p.body
}

// Lisp implementation for Node interface.
func (p *Negation) Lisp() sexp.SExp {
	return sexp.NewApplication("not", p.body.Lisp())
}

func (p *Negation) String() string {
	return Render(p, unicodeNotation)
}

func (p *Negation) render(builder *strings.Builder, notation *Notation) {
	builder.WriteString(notation.Not)
	p.body.render(builder, notation)
}

func (p *Negation) isFormula() {}

func (p *Negation) isNil() bool { return p == nil }

// ============================================================================
// Compound
// ============================================================================

// Compound is a formula built from a binary connective, and is rendered within
// square brackets to disambiguate nested connectives.
type Compound struct {
	connective *BinaryConnective
}

// FromConnective constructs a formula from a binary connective.
func FromConnective(connective *BinaryConnective) Formula {
	checkNonNil("compound", connective)
	//
	return &Compound{connective}
}

// Connective returns the underlying binary connective.
func (p *Compound) Connective() *BinaryConnective {
	return p.connective
}

// Lisp implementation for Node interface.
func (p *Compound) Lisp() sexp.SExp {
	return p.connective.Lisp()
}

func (p *Compound) String() string {
	return Render(p, unicodeNotation)
}

func (p *Compound) render(builder *strings.Builder, notation *Notation) {
	builder.WriteString("[")
	p.connective.render(builder, notation)
	builder.WriteString("]")
}

func (p *Compound) isFormula() {}

func (p *Compound) isNil() bool { return p == nil }

// ============================================================================
// Quantified
// ============================================================================

// Quantified is a formula built from a quantifier.  No brackets are added when
// rendered, since the quantifier already brackets its body.
type Quantified struct {
	quantifier *Quantifier
}

// FromQuantifier constructs a formula from a quantifier.
func FromQuantifier(quantifier *Quantifier) Formula {
	checkNonNil("quantified", quantifier)
	//
	return &Quantified{quantifier}
}

// Quantifier returns the underlying quantifier.
func (p *Quantified) Quantifier() *Quantifier {
	return p.quantifier
}

// Lisp implementation for Node interface.
func (p *Quantified) Lisp() sexp.SExp {
	return p.quantifier.Lisp()
}

func (p *Quantified) String() string {
	return Render(p, unicodeNotation)
}

func (p *Quantified) render(builder *strings.Builder, notation *Notation) {
	p.quantifier.render(builder, notation)
}

func (p *Quantified) isFormula() {}

func (p *Quantified) isNil() bool { return p == nil }
