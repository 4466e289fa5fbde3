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

// Package build provides shorthand for constructing formula trees.  Helpers
// producing connectives or quantifiers return them already wrapped as a
// fol.Formula, hence trees built only with this package are always bracketed
// unambiguously.  Operands are shared rather than copied.
package build

import "github.com/consensys/go-fol/pkg/fol"

// Var constructs a variable.
func Var(name string) *fol.Variable {
	return fol.NewVariable(name)
}

// Vars constructs one variable for each given name, in order.
func Vars(names ...string) []*fol.Variable {
	vars := make([]*fol.Variable, len(names))
	//
	for i, name := range names {
		vars[i] = fol.NewVariable(name)
	}
	//
	return vars
}

// VarTerm wraps a variable as a term.
func VarTerm(variable *fol.Variable) *fol.Term {
	return fol.TermOfVariable(variable)
}

// FuncTerm wraps a function application as a term.
func FuncTerm(function *fol.Function) *fol.Term {
	return fol.TermOfFunction(function)
}

// Func constructs a function application.
func Func(name string, args ...*fol.Term) *fol.Function {
	return fol.NewFunction(name, args...)
}

// Pred constructs a predicate.
func Pred(name string, args ...*fol.Variable) *fol.Predicate {
	return fol.NewPredicate(name, args...)
}

// PredForm wraps a predicate as an atomic formula.
func PredForm(predicate *fol.Predicate) fol.Formula {
	return fol.FromPredicate(predicate)
}

// EqForm constructs the atomic formula "left = right".
func EqForm(left *fol.Term, right *fol.Term) fol.Formula {
	return fol.Equality(left, right)
}

// BinForm wraps a binary connective as a formula.
func BinForm(connective *fol.BinaryConnective) fol.Formula {
	return fol.FromConnective(connective)
}

// QuantForm wraps a quantifier as a formula.
func QuantForm(quantifier *fol.Quantifier) fol.Formula {
	return fol.FromQuantifier(quantifier)
}

// Not constructs "¬body".
func Not(body fol.Formula) fol.Formula {
	return fol.Negate(body)
}

// And constructs "[left ∧ right]".
func And(left fol.Formula, right fol.Formula) fol.Formula {
	return fol.FromConnective(fol.And(left, right))
}

// Or constructs "[left ∨ right]".
func Or(left fol.Formula, right fol.Formula) fol.Formula {
	return fol.FromConnective(fol.Or(left, right))
}

// Implies constructs "[left → right]".
func Implies(left fol.Formula, right fol.Formula) fol.Formula {
	return fol.FromConnective(fol.Implies(left, right))
}

// Equivalent constructs "[left ↔ right]".
func Equivalent(left fol.Formula, right fol.Formula) fol.Formula {
	return fol.FromConnective(fol.Iff(left, right))
}

// ForAll constructs "∀variable[body]".
func ForAll(variable *fol.Variable, body fol.Formula) fol.Formula {
	return fol.FromQuantifier(fol.Universal(variable, body))
}

// ThereExists constructs "∃variable[body]".
func ThereExists(variable *fol.Variable, body fol.Formula) fol.Formula {
	return fol.FromQuantifier(fol.Existential(variable, body))
}
