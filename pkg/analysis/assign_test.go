package analysis

import (
	"os"
	"path/filepath"
	"testing"

	"rlang/expr-go/pkg/ast"
	"rlang/expr-go/pkg/driver"
	"rlang/expr-go/pkg/parser"
)

func sameTargets(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestFindAssignmentTargets(t *testing.T) {
	cases := []struct {
		name string
		expr ast.Expr
		want []string
	}{
		{"single", ast.Assign("a", ast.Int(1)), []string{"a"}},
		{"block", ast.Block(ast.Assign("a", ast.Int(1)), ast.Assign("b", ast.Int(2))), []string{"a", "b"}},
		{"duplicates-kept",
			ast.Block(ast.Assign("a", ast.Int(1)), ast.Assign("b", ast.Int(2)), ast.Assign("a", ast.Int(3))),
			[]string{"a", "b", "a"}},
		{"rhs-searched",
			ast.Assign("x", ast.CallTo("print", ast.Pos(ast.Assign("y", ast.Int(5))))),
			[]string{"x", "y"}},
		{"call-lhs-skipped",
			ast.AssignExpr(ast.CallTo("names", ast.Pos(ast.ID("ls"))), ast.Str("b")),
			[]string{}},
		{"member-lhs-skipped",
			ast.AssignExpr(ast.Member(ast.ID("ls"), "a"), ast.Int(5)),
			[]string{}},
		{"lhs-not-searched",
			ast.AssignExpr(ast.CallTo("names", ast.Pos(ast.Assign("hidden", ast.Int(1)))), ast.Str("b")),
			[]string{}},
		{"assign-function-undetected",
			ast.CallTo("assign", ast.Pos(ast.Str("x")), ast.Pos(ast.Int(1))),
			[]string{}},
		{"no-assignments", ast.CallTo("mean", ast.Pos(ast.ID("x"))), []string{}},
		{"constant", ast.Int(1), []string{}},
		{"default-searched",
			ast.Fn(ast.Params(ast.PDef("x", ast.Block(ast.Assign("a", ast.Int(1))))), ast.ID("x")),
			[]string{"a"}},
		{"named-args-not-assignment",
			ast.CallTo("<-", ast.Named("x", ast.ID("a")), ast.Named("value", ast.Int(1))),
			[]string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FindAssignmentTargets(tc.expr, nil)
			if !sameTargets(got, tc.want) {
				t.Fatalf("targets = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestUniqueAssignmentTargets(t *testing.T) {
	expr := ast.Block(
		ast.Assign("a", ast.Int(1)),
		ast.Assign("b", ast.Int(2)),
		ast.Assign("a", ast.Int(3)),
	)
	got := UniqueAssignmentTargets(expr, nil)
	if !sameTargets(got, []string{"a", "b"}) {
		t.Fatalf("unique targets = %v, want [a b]", got)
	}
}

// A malformed assignment call lands in the collector with its path; the
// sibling branches still produce their targets.
func TestMalformedAssignmentCollected(t *testing.T) {
	malformed := must(ast.NewCall(ast.ID(AssignOperator), []ast.Arg{ast.Pos(ast.ID("a"))}))
	expr := ast.Block(malformed, ast.Assign("b", ast.Int(2)))

	var failures []BranchError
	got := FindAssignmentTargets(expr, func(be BranchError) { failures = append(failures, be) })
	if !sameTargets(got, []string{"b"}) {
		t.Fatalf("targets = %v, want [b]", got)
	}
	if len(failures) != 1 {
		t.Fatalf("collected %d failures, want 1", len(failures))
	}
	if !ast.IsKind(failures[0].Err, ast.ErrIndexOutOfRange) {
		t.Fatalf("failure kind = %v", failures[0].Err)
	}
	if failures[0].Path.String() != "/1" {
		t.Fatalf("failure path = %s, want /1", failures[0].Path)
	}
}

func must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

func TestAssignmentCorpus(t *testing.T) {
	if testing.Short() && os.Getenv("EXPR_RUN_FIXTURES") == "" {
		t.Skip("fixture corpora skipped in short mode")
	}
	corpus, err := driver.LoadCorpus(filepath.Join("..", "..", "fixtures", "assignments.yaml"))
	if err != nil {
		t.Fatalf("loading corpus: %v", err)
	}
	for _, tc := range corpus.Cases {
		t.Run(tc.Name, func(t *testing.T) {
			expr, err := parser.Parse(tc.Source)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tc.Source, err)
			}
			want := tc.Targets
			if want == nil {
				want = []string{}
			}
			got := FindAssignmentTargets(expr, nil)
			if !sameTargets(got, want) {
				t.Fatalf("targets for %q = %v, want %v", tc.Source, got, want)
			}
		})
	}
}
