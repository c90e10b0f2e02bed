// Package analysis provides generic pre-order traversal over expression
// trees plus the worked analyses built on it: assignment-target discovery
// and whole-token literal replacement.
package analysis

import (
	"rlang/expr-go/pkg/ast"
)

// DefaultMaxDepth bounds traversal recursion.
const DefaultMaxDepth = 10000

// Visit is called for every node in pre-order. Returning descend=false
// prunes the node's children; returning an error aborts (Walk) or marks the
// branch failed (collection utilities).
type Visit func(node ast.Expr, path ast.Path) (descend bool, err error)

// BranchError ties a failed branch to the path of its offending node.
type BranchError struct {
	Path ast.Path
	Err  error
}

// Collector receives per-branch failures from best-effort traversals. A nil
// collector discards them.
type Collector func(BranchError)

// Walk applies visit to every node in pre-order, stopping at the first
// error. Results accumulate through the closure; Fold wraps this when an
// explicit accumulator reads better.
func Walk(root ast.Expr, visit Visit) error {
	return WalkDepth(root, visit, DefaultMaxDepth)
}

// WalkDepth is Walk with an explicit recursion bound.
func WalkDepth(root ast.Expr, visit Visit, maxDepth int) error {
	return walk(root, ast.Path{}, visit, maxDepth)
}

func walk(node ast.Expr, path ast.Path, visit Visit, maxDepth int) error {
	if node == nil {
		return nil
	}
	if len(path) > maxDepth {
		return &ast.Error{Kind: ast.ErrMaxDepthExceeded, Message: "traversal exceeded depth limit", Path: path}
	}
	descend, err := visit(node, path)
	if err != nil {
		return err
	}
	if !descend {
		return nil
	}
	for _, c := range children(node) {
		if err := walk(c.expr, path.Child(c.index), visit, maxDepth); err != nil {
			return err
		}
	}
	return nil
}

// Fold threads an explicit accumulator through a pre-order walk. fn returns
// the updated accumulator plus the descend flag.
func Fold[T any](root ast.Expr, acc T, fn func(acc T, node ast.Expr, path ast.Path) (T, bool, error)) (T, error) {
	err := Walk(root, func(node ast.Expr, path ast.Path) (bool, error) {
		next, descend, err := fn(acc, node, path)
		if err != nil {
			return false, err
		}
		acc = next
		return descend, nil
	})
	return acc, err
}

type child struct {
	index int
	expr  ast.Expr
}

// children enumerates a node's subtrees with their path indices: a call's
// callee is index 0 and argument i is index i+1; a parameter list exposes
// the defaults under their parameter index.
func children(node ast.Expr) []child {
	switch n := node.(type) {
	case *ast.Call:
		out := make([]child, 0, len(n.Args)+1)
		out = append(out, child{index: 0, expr: n.Callee})
		for i, arg := range n.Args {
			out = append(out, child{index: i + 1, expr: arg.Value})
		}
		return out
	case *ast.ParamList:
		var out []child
		for i, p := range n.Params {
			if p.Default != nil {
				out = append(out, child{index: i, expr: p.Default})
			}
		}
		return out
	default:
		return nil
	}
}
