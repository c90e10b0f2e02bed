package analysis

import (
	"errors"
	"testing"

	"rlang/expr-go/pkg/ast"
)

func TestWalkVisitsPreOrder(t *testing.T) {
	expr := ast.Assign("a", ast.CallTo("+", ast.Pos(ast.ID("b")), ast.Pos(ast.Int(1))))
	var visited []string
	err := Walk(expr, func(node ast.Expr, path ast.Path) (bool, error) {
		visited = append(visited, path.String()+"="+ast.Render(node))
		return true, nil
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	want := []string{
		"root=a <- b + 1",
		"/0=`<-`",
		"/1=a",
		"/2=b + 1",
		"/2/0=`+`",
		"/2/1=b",
		"/2/2=1",
	}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visit %d = %q, want %q", i, visited[i], want[i])
		}
	}
}

func TestWalkPrunes(t *testing.T) {
	expr := ast.CallTo("f", ast.Pos(ast.Block(ast.ID("inner"))), ast.Pos(ast.ID("after")))
	var names []string
	err := Walk(expr, func(node ast.Expr, path ast.Path) (bool, error) {
		if name, ok := node.(*ast.Name); ok {
			names = append(names, name.Identifier)
		}
		// Skip block bodies entirely.
		if call, ok := node.(*ast.Call); ok {
			if callee, ok := call.Callee.(*ast.Name); ok && callee.Identifier == "{" {
				return false, nil
			}
		}
		return true, nil
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	for _, n := range names {
		if n == "inner" {
			t.Fatal("pruned subtree was visited")
		}
	}
	found := false
	for _, n := range names {
		if n == "after" {
			found = true
		}
	}
	if !found {
		t.Fatal("sibling of pruned subtree was not visited")
	}
}

func TestWalkStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	expr := ast.Block(ast.ID("a"), ast.ID("b"), ast.ID("c"))
	count := 0
	err := Walk(expr, func(node ast.Expr, path ast.Path) (bool, error) {
		if name, ok := node.(*ast.Name); ok && name.Identifier == "b" {
			return false, boom
		}
		count++
		return true, nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Walk returned %v, want boom", err)
	}
	// a's visit happened, c's never did.
	if count < 2 {
		t.Fatalf("walk stopped too early: %d visits", count)
	}
}

func TestWalkCoversParameterDefaults(t *testing.T) {
	expr := ast.Fn(ast.Params(ast.PDef("x", ast.ID("needle")), ast.P("y")), ast.ID("x"))
	found := false
	err := Walk(expr, func(node ast.Expr, path ast.Path) (bool, error) {
		if name, ok := node.(*ast.Name); ok && name.Identifier == "needle" {
			found = true
		}
		return true, nil
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if !found {
		t.Fatal("parameter default was not visited")
	}
}

func TestWalkDepthLimit(t *testing.T) {
	deep := ast.Expr(ast.ID("x"))
	for i := 0; i < 8; i++ {
		deep = ast.CallTo("f", ast.Pos(deep))
	}
	err := WalkDepth(deep, func(ast.Expr, ast.Path) (bool, error) { return true, nil }, 4)
	if !ast.IsKind(err, ast.ErrMaxDepthExceeded) {
		t.Fatalf("WalkDepth returned %v, want MaxDepthExceeded", err)
	}
}

func TestFoldCountsNodes(t *testing.T) {
	expr := ast.Assign("a", ast.CallTo("+", ast.Pos(ast.ID("b")), ast.Pos(ast.Int(1))))
	total, err := Fold(expr, 0, func(acc int, node ast.Expr, path ast.Path) (int, bool, error) {
		return acc + 1, true, nil
	})
	if err != nil {
		t.Fatalf("Fold failed: %v", err)
	}
	if total != 7 {
		t.Fatalf("counted %d nodes, want 7", total)
	}
}
