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
	"fmt"
	"strings"

	"github.com/consensys/go-fol/pkg/util/sexp"
)

// ConnectiveKind identifies the logical operation of a binary connective.
type ConnectiveKind uint8

const (
	// CONJUNCTION represents logical and (∧).
	CONJUNCTION ConnectiveKind = iota
	// DISJUNCTION represents logical or (∨).
	DISJUNCTION
	// IMPLICATION represents material implication (→).
	IMPLICATION
	// BICONDITIONAL represents logical equivalence (↔).
	BICONDITIONAL
)

func (k ConnectiveKind) String() string {
	return unicodeNotation.connective(k)
}

// BinaryConnective relates two formulas by a logical connective.  Its operands
// are never bracketed when rendered, instead brackets are supplied when a
// connective is wrapped as a Formula.
type BinaryConnective struct {
	kind  ConnectiveKind
	left  Formula
	right Formula
}

// And constructs the conjunction of two formulas.
func And(left Formula, right Formula) *BinaryConnective {
	return newConnective(CONJUNCTION, left, right)
}

// Or constructs the disjunction of two formulas.
func Or(left Formula, right Formula) *BinaryConnective {
	return newConnective(DISJUNCTION, left, right)
}

// Implies constructs the implication from one formula to another.
func Implies(left Formula, right Formula) *BinaryConnective {
	return newConnective(IMPLICATION, left, right)
}

// Iff constructs the equivalence of two formulas.
func Iff(left Formula, right Formula) *BinaryConnective {
	return newConnective(BICONDITIONAL, left, right)
}

func newConnective(kind ConnectiveKind, left Formula, right Formula) *BinaryConnective {
	checkFormulas("binary connective", left, right)
	//
	return &BinaryConnective{kind, left, right}
}

// Kind returns the kind of this connective.
func (p *BinaryConnective) Kind() ConnectiveKind {
	return p.kind
}

// Left returns the left-hand operand of this connective.
func (p *BinaryConnective) Left() Formula {
	return p.left
}

// Right returns the right-hand operand of this connective.
func (p *BinaryConnective) Right() Formula {
	return p.right
}

// Lisp implementation for Node interface.
func (p *BinaryConnective) Lisp() sexp.SExp {
	var head string
	//
	switch p.kind {
	case CONJUNCTION:
		head = "and"
	case DISJUNCTION:
		head = "or"
	case IMPLICATION:
		head = "=>"
	case BICONDITIONAL:
		head = "<=>"
	default:
		panic(fmt.Sprintf("unknown connective kind %d", p.kind))
	}
	//
	return sexp.NewApplication(head, p.left.Lisp(), p.right.Lisp())
}

func (p *BinaryConnective) String() string {
	return Render(p, unicodeNotation)
}

func (p *BinaryConnective) render(builder *strings.Builder, notation *Notation) {
	p.left.render(builder, notation)
	builder.WriteString(" ")
	builder.WriteString(notation.connective(p.kind))
	builder.WriteString(" ")
	p.right.render(builder, notation)
}
