package build

import (
	"testing"

	"github.com/consensys/go-fol/pkg/fol"
	"github.com/stretchr/testify/assert"
)

func Test_Build_01(t *testing.T) {
	x, y := Var("x"), Var("y")
	checkBuild(t, "P(x,y)", PredForm(Pred("P", x, y)))
}

func Test_Build_02(t *testing.T) {
	x, y := Var("x"), Var("y")
	checkBuild(t, "∀x[P(x,y)]", ForAll(x, PredForm(Pred("P", x, y))))
}

func Test_Build_03(t *testing.T) {
	x, y, z := Var("x"), Var("y"), Var("z")
	memberOf := func(a, b *fol.Variable) fol.Formula {
		return PredForm(Pred("MemberOf", a, b))
	}
	//
	extensionality := ForAll(x, ForAll(y, Implies(
		ForAll(z, Equivalent(memberOf(z, x), memberOf(z, y))),
		EqForm(VarTerm(x), VarTerm(y)))))
	//
	checkBuild(t, "∀x[∀y[[∀z[[MemberOf(z,x) ↔ MemberOf(z,y)]] → [x = y]]]]", extensionality)
}

func Test_Build_04(t *testing.T) {
	checkBuild(t, "c()", Func("c"))
	checkBuild(t, "P()", Pred("P"))
	checkBuild(t, "[c() = c()]", EqForm(FuncTerm(Func("c")), FuncTerm(Func("c"))))
}

func Test_Build_05(t *testing.T) {
	p, q := PredForm(Pred("P")), PredForm(Pred("Q"))
	//
	checkBuild(t, "[P() ∧ Q()]", And(p, q))
	checkBuild(t, "[P() ∨ Q()]", Or(p, q))
	checkBuild(t, "[P() → Q()]", Implies(p, q))
	checkBuild(t, "[P() ↔ Q()]", Equivalent(p, q))
	checkBuild(t, "¬P()", Not(p))
	checkBuild(t, "∃x[P()]", ThereExists(Var("x"), p))
}

func Test_Build_06(t *testing.T) {
	// Wrapping helpers agree with the one-step helpers
	p, q := PredForm(Pred("P")), PredForm(Pred("Q"))
	x := Var("x")
	//
	assert.Equal(t, And(p, q).String(), BinForm(fol.And(p, q)).String())
	assert.Equal(t, ForAll(x, p).String(), QuantForm(fol.Universal(x, p)).String())
}

func Test_Build_07(t *testing.T) {
	// Nested connectives are always bracketed
	p, q, r := PredForm(Pred("P")), PredForm(Pred("Q")), PredForm(Pred("R"))
	//
	checkBuild(t, "[[P() ∧ Q()] ∨ R()]", Or(And(p, q), r))
	checkBuild(t, "[P() ∧ [Q() ∨ R()]]", And(p, Or(q, r)))
}

func Test_Build_08(t *testing.T) {
	// Operands are shared, not copied
	p := PredForm(Pred("P", Var("x")))
	f := And(p, Not(p))
	conn := f.(*fol.Compound).Connective()
	//
	assert.Same(t, p, conn.Left())
	assert.Same(t, p, conn.Right().(*fol.Negation).Body())
	checkBuild(t, "[P(x) ∧ ¬P(x)]", f)
}

func Test_Build_09(t *testing.T) {
	vs := Vars("a", "b", "c")
	//
	assert.Len(t, vs, 3)
	checkBuild(t, "R(a,b,c)", Pred("R", vs...))
	checkBuild(t, "f(g(a),b)", Func("f", FuncTerm(Func("g", VarTerm(vs[0]))), VarTerm(vs[1])))
}

func checkBuild(t *testing.T, expected string, node fol.Node) {
	t.Helper()
	assert.Equal(t, expected, node.String())
}
