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
package axiom

import (
	"github.com/consensys/go-fol/pkg/fol"
	"github.com/consensys/go-fol/pkg/fol/build"
)

// MEMBER_OF is the name of the set membership relation.
const MEMBER_OF = "MemberOf"

// Member constructs the atomic formula "MemberOf(x,y)", i.e. x ∈ y.
func Member(x *fol.Variable, y *fol.Variable) fol.Formula {
	return build.PredForm(build.Pred(MEMBER_OF, x, y))
}

// Extensionality states that two sets with the same members are equal:
//
//	∀x[∀y[[∀z[[MemberOf(z,x) ↔ MemberOf(z,y)]] → [x = y]]]]
func Extensionality() fol.Formula {
	x, y, z := build.Var("x"), build.Var("y"), build.Var("z")
	//
	return build.ForAll(x, build.ForAll(y,
		build.Implies(
			build.ForAll(z, build.Equivalent(Member(z, x), Member(z, y))),
			build.EqForm(build.VarTerm(x), build.VarTerm(y)))))
}

// EmptySet states that there is a set without members.
func EmptySet() fol.Formula {
	x, y := build.Var("x"), build.Var("y")
	//
	return build.ThereExists(x, build.ForAll(y, build.Not(Member(y, x))))
}

// Pairing states that for any two sets there is a set containing both.
func Pairing() fol.Formula {
	x, y, z := build.Var("x"), build.Var("y"), build.Var("z")
	//
	return build.ForAll(x, build.ForAll(y, build.ThereExists(z, build.And(Member(x, z), Member(y, z)))))
}

// Union states that for any set F there is a set A containing every member
// of every member of F.
func Union() fol.Formula {
	F, A, Y, x := build.Var("F"), build.Var("A"), build.Var("Y"), build.Var("x")
	//
	return build.ForAll(F, build.ThereExists(A, build.ForAll(Y, build.ForAll(x,
		build.Implies(build.And(Member(x, Y), Member(Y, F)), Member(x, A))))))
}

// PowerSet states that for any set x there is a set y containing every subset
// of x.
func PowerSet() fol.Formula {
	x, y, z, w := build.Var("x"), build.Var("y"), build.Var("z"), build.Var("w")
	// z ⊆ x
	subset := build.ForAll(w, build.Implies(Member(w, z), Member(w, x)))
	//
	return build.ForAll(x, build.ThereExists(y, build.ForAll(z, build.Implies(subset, Member(z, y)))))
}

// Infinity states that there is a set I containing the empty set and closed
// under successor.  Both are given as uninterpreted functions, where "empty()"
// is a constant.
func Infinity() fol.Formula {
	I, e, x, y := build.Var("I"), build.Var("e"), build.Var("x"), build.Var("y")
	empty := build.FuncTerm(build.Func("empty"))
	succ := build.FuncTerm(build.Func("succ", build.VarTerm(x)))
	//
	base := build.ThereExists(e, build.And(Member(e, I), build.EqForm(build.VarTerm(e), empty)))
	step := build.ForAll(x, build.Implies(Member(x, I),
		build.ThereExists(y, build.And(Member(y, I), build.EqForm(build.VarTerm(y), succ)))))
	//
	return build.ThereExists(I, build.And(base, step))
}

// Foundation states that every non-empty set x has a member y which shares no
// member with x.
func Foundation() fol.Formula {
	x, y, z, a := build.Var("x"), build.Var("y"), build.Var("z"), build.Var("a")
	//
	disjoint := build.Not(build.ThereExists(z, build.And(Member(z, y), Member(z, x))))
	//
	return build.ForAll(x, build.Implies(build.ThereExists(a, Member(a, x)),
		build.ThereExists(y, build.And(Member(y, x), disjoint))))
}
