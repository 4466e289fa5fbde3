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
package cmd

import (
	"fmt"
	"io"

	"github.com/consensys/go-fol/pkg/axiom"
	"github.com/consensys/go-fol/pkg/fol"
	"github.com/consensys/go-fol/pkg/util/termio"
)

// AxiomPrinter is responsible for printing axioms in a configurable manner.
type AxiomPrinter struct {
	notation fol.Notation
	lisp     bool
	colour   bool
	// Include descriptions alongside each axiom
	describe bool
}

// NewAxiomPrinter constructs a printer using standard notation, without
// highlighting.
func NewAxiomPrinter() *AxiomPrinter {
	return &AxiomPrinter{fol.UnicodeNotation(), false, false, false}
}

// Ascii configures the printer to use ASCII notation.
func (p *AxiomPrinter) Ascii(flag bool) *AxiomPrinter {
	if flag {
		p.notation = fol.AsciiNotation()
	} else {
		p.notation = fol.UnicodeNotation()
	}
	//
	return p
}

// Lisp configures the printer to emit S-Expressions.
func (p *AxiomPrinter) Lisp(flag bool) *AxiomPrinter {
	p.lisp = flag
	return p
}

// Colour configures whether logical symbols are highlighted.
func (p *AxiomPrinter) Colour(flag bool) *AxiomPrinter {
	p.colour = flag
	return p
}

// Describe configures whether axiom descriptions are printed.
func (p *AxiomPrinter) Describe(flag bool) *AxiomPrinter {
	p.describe = flag
	return p
}

// Print a given set of axioms, one per line.
func (p *AxiomPrinter) Print(w io.Writer, axioms ...axiom.Axiom) error {
	for _, ax := range axioms {
		if p.describe {
			if _, err := fmt.Fprintf(w, "; %s\n", ax.Description); err != nil {
				return err
			}
		}
		//
		if _, err := fmt.Fprintf(w, "%s: %s\n", ax.Name, p.Render(ax.Formula)); err != nil {
			return err
		}
	}
	//
	return nil
}

// Render a single formula according to this printer's configuration.
func (p *AxiomPrinter) Render(formula fol.Formula) string {
	if p.lisp {
		return formula.Lisp().String(true)
	}
	//
	notation := p.notation
	//
	if p.colour {
		notation = notation.Highlight(termio.NewAnsiEscape().FgColour(termio.TERM_BLUE).Bold())
	}
	//
	return fol.Render(formula, notation)
}
