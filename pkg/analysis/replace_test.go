package analysis

import (
	"testing"

	"rlang/expr-go/pkg/ast"
)

func replaceT(t *testing.T, expr ast.Expr) ast.Expr {
	t.Helper()
	out, err := ReplaceLiteralName(expr, "T", ast.BoolValue(true))
	if err != nil {
		t.Fatalf("ReplaceLiteralName failed: %v", err)
	}
	return out
}

func TestReplaceLiteralName(t *testing.T) {
	cases := []struct {
		name string
		expr ast.Expr
		want ast.Expr
	}{
		{"leaf", ast.ID("T"), ast.Bool(true)},
		{"argument",
			ast.CallTo("mean", ast.Pos(ast.ID("xs")), ast.Named("na.rm", ast.ID("T"))),
			ast.CallTo("mean", ast.Pos(ast.ID("xs")), ast.Named("na.rm", ast.Bool(true)))},
		{"whole-token-only",
			ast.CallTo("f", ast.Pos(ast.ID("Team")), ast.Pos(ast.ID("T"))),
			ast.CallTo("f", ast.Pos(ast.ID("Team")), ast.Pos(ast.Bool(true)))},
		{"callee-untouched",
			ast.CallTo("T", ast.Pos(ast.Int(1))),
			ast.CallTo("T", ast.Pos(ast.Int(1)))},
		{"callee-arguments-still-rewritten",
			ast.CallTo("T", ast.Pos(ast.ID("T"))),
			ast.CallTo("T", ast.Pos(ast.Bool(true)))},
		{"complex-callee-descended",
			ast.Apply(ast.IfElse(ast.ID("c"), ast.ID("T"), ast.ID("g")), ast.Pos(ast.Int(1))),
			ast.Apply(ast.IfElse(ast.ID("c"), ast.Bool(true), ast.ID("g")), ast.Pos(ast.Int(1)))},
		{"default-rewritten-name-kept",
			ast.Fn(ast.Params(ast.PDef("T", ast.ID("T"))), ast.ID("T")),
			ast.Fn(ast.Params(ast.PDef("T", ast.Bool(true))), ast.Bool(true))},
		{"inside-block",
			ast.Block(ast.Assign("keep", ast.ID("T"))),
			ast.Block(ast.Assign("keep", ast.Bool(true)))},
		{"no-occurrences", ast.CallTo("f", ast.Pos(ast.ID("x"))), ast.CallTo("f", ast.Pos(ast.ID("x")))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := replaceT(t, tc.expr)
			if !ast.Equal(got, tc.want) {
				t.Fatalf("got %s, want %s", ast.Render(got), ast.Render(tc.want))
			}
		})
	}
}

// The T/F cleanup end to end: both shorthand literals become booleans while
// the superstring identifier Team stays put.
func TestReplaceShorthandBooleans(t *testing.T) {
	expr := ast.Fn(
		ast.Params(ast.PDef("x", ast.ID("T"))),
		ast.Block(ast.If(ast.ID("x"), ast.CallTo("return", ast.Pos(ast.Int(4))))),
	)
	step, err := ReplaceLiteralName(expr, "T", ast.BoolValue(true))
	if err != nil {
		t.Fatal(err)
	}
	fixed, err := ReplaceLiteralName(step, "F", ast.BoolValue(false))
	if err != nil {
		t.Fatal(err)
	}
	if got := ast.Render(fixed); got != "function(x = TRUE) { if (x) return(4) }" {
		t.Fatalf("rendered %q", got)
	}

	team := ast.CallTo("score", ast.Pos(ast.ID("Team")), ast.Named("na.rm", ast.ID("F")))
	fixed, err = ReplaceLiteralName(team, "F", ast.BoolValue(false))
	if err != nil {
		t.Fatal(err)
	}
	want := ast.CallTo("score", ast.Pos(ast.ID("Team")), ast.Named("na.rm", ast.Bool(false)))
	if !ast.Equal(fixed, want) {
		t.Fatalf("got %s, want %s", ast.Render(fixed), ast.Render(want))
	}
}

func TestReplaceSharesUntouchedTree(t *testing.T) {
	expr := ast.CallTo("f", ast.Pos(ast.ID("x")))
	got := replaceT(t, expr)
	if got != ast.Expr(expr) {
		t.Fatal("tree without occurrences should come back unchanged")
	}
}

func TestReplaceValidatesIdentifier(t *testing.T) {
	if _, err := ReplaceLiteralName(ast.ID("x"), "", ast.BoolValue(true)); !ast.IsKind(err, ast.ErrInvalidIdentifier) {
		t.Fatalf("empty identifier returned %v, want InvalidIdentifier", err)
	}
}

func TestReplaceWithDifferentValueKinds(t *testing.T) {
	got, err := ReplaceLiteralName(ast.CallTo("f", ast.Pos(ast.ID("pi"))), "pi", ast.FloatValue(3.14159))
	if err != nil {
		t.Fatalf("ReplaceLiteralName failed: %v", err)
	}
	want := ast.CallTo("f", ast.Pos(ast.Flt(3.14159)))
	if !ast.Equal(got, want) {
		t.Fatalf("got %s, want %s", ast.Render(got), ast.Render(want))
	}
}

func TestReplaceDepthLimit(t *testing.T) {
	deep := ast.Expr(ast.ID("T"))
	for i := 0; i < 8; i++ {
		deep = ast.CallTo("f", ast.Pos(deep))
	}
	if _, err := ReplaceLiteralNameDepth(deep, "T", ast.BoolValue(true), 4); !ast.IsKind(err, ast.ErrMaxDepthExceeded) {
		t.Fatalf("depth 4 returned %v, want MaxDepthExceeded", err)
	}
}
