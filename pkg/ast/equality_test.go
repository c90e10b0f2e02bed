package ast

import "testing"

func TestEqualBasics(t *testing.T) {
	cases := []struct {
		name string
		a, b Expr
		want bool
	}{
		{"same-constant", Int(1), Int(1), true},
		{"different-constant", Int(1), Int(2), false},
		{"int-vs-float", Int(1), Flt(1), false},
		{"same-name", ID("x"), ID("x"), true},
		{"different-name", ID("x"), ID("y"), false},
		{"name-vs-string", ID("x"), Str("x"), false},
		{"same-call", CallTo("f", Pos(Int(1))), CallTo("f", Pos(Int(1))), true},
		{"argument-order", CallTo("f", Pos(Int(1)), Pos(Int(2))), CallTo("f", Pos(Int(2)), Pos(Int(1))), false},
		{"argument-name", CallTo("f", Named("x", Int(1))), CallTo("f", Pos(Int(1))), false},
		{"arity", CallTo("f", Pos(Int(1))), CallTo("f"), false},
		{"params", Params(PDef("x", Int(1))), Params(PDef("x", Int(1))), true},
		{"param-default", Params(PDef("x", Int(1))), Params(P("x")), false},
		{"params-vs-call", Params(P("x")), CallTo("x"), false},
		{"nil-both", nil, nil, true},
		{"nil-one", ID("x"), nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Equal(tc.a, tc.b); got != tc.want {
				t.Fatalf("Equal = %v, want %v", got, tc.want)
			}
		})
	}
}

// Equality is syntactic: mean applied to an evaluated sequence and mean
// applied to the range expression producing that sequence are different
// trees, even though an evaluator would not tell them apart.
func TestEqualityIsSyntacticNotSemantic(t *testing.T) {
	evaluated := CallTo("mean", Pos(Str("1 2 3 4 5 6 7 8 9 10")))
	quoted := CallTo("mean", Pos(CallTo(":", Pos(Int(1)), Pos(Int(10)))))
	if Equal(evaluated, quoted) {
		t.Fatal("structurally different calls compared equal")
	}
	if !Equal(quoted, CallTo("mean", Pos(CallTo(":", Pos(Int(1)), Pos(Int(10)))))) {
		t.Fatal("identical construction compared unequal")
	}
}
