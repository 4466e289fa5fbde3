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

	"github.com/consensys/go-fol/pkg/util/termio"
)

// Notation determines the glyphs used when rendering a formula.
type Notation struct {
	Not     string
	And     string
	Or      string
	Implies string
	Iff     string
	ForAll  string
	Exists  string
	Equals  string
}

// unicodeNotation is used by String(), hence it must never be modified.
var unicodeNotation = Notation{
	Not:     "¬",
	And:     "∧",
	Or:      "∨",
	Implies: "→",
	Iff:     "↔",
	ForAll:  "∀",
	Exists:  "∃",
	Equals:  "=",
}

var asciiNotation = Notation{
	Not:     "~",
	And:     "&",
	Or:      "|",
	Implies: "->",
	Iff:     "<->",
	ForAll:  "forall ",
	Exists:  "exists ",
	Equals:  "=",
}

// UnicodeNotation returns the standard logical notation, as used by String().
func UnicodeNotation() Notation {
	return unicodeNotation
}

// AsciiNotation returns a plain ASCII fallback for terminals which cannot
// display the standard glyphs.
func AsciiNotation() Notation {
	return asciiNotation
}

// Highlight returns a copy of this notation where every glyph is wrapped in
// the given escape.  Names and brackets are unaffected.
func (p Notation) Highlight(escape termio.AnsiEscape) Notation {
	return Notation{
		Not:     escape.Wrap(p.Not),
		And:     escape.Wrap(p.And),
		Or:      escape.Wrap(p.Or),
		Implies: escape.Wrap(p.Implies),
		Iff:     escape.Wrap(p.Iff),
		ForAll:  escape.Wrap(p.ForAll),
		Exists:  escape.Wrap(p.Exists),
		Equals:  escape.Wrap(p.Equals),
	}
}

func (p *Notation) connective(kind ConnectiveKind) string {
	switch kind {
	case CONJUNCTION:
		return p.And
	case DISJUNCTION:
		return p.Or
	case IMPLICATION:
		return p.Implies
	case BICONDITIONAL:
		return p.Iff
	}
	//
	panic(fmt.Sprintf("unknown connective kind %d", kind))
}

func (p *Notation) quantifier(kind QuantifierKind) string {
	switch kind {
	case UNIVERSAL:
		return p.ForAll
	case EXISTENTIAL:
		return p.Exists
	}
	//
	panic(fmt.Sprintf("unknown quantifier kind %d", kind))
}
