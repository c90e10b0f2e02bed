package analysis

import (
	"rlang/expr-go/pkg/ast"
)

// ReplaceLiteralName replaces every leaf occurrence of the named identifier
// with a constant (the T/F to TRUE/FALSE fixer). Matching is whole-token:
// only a Name whose identifier equals from exactly is touched, never a
// superstring like Team. A bare-name callee stays untouched, so T(...) as a
// call keeps meaning "call the function bound to T". Parameter lists are
// processed as their own case (defaults rewritten, parameter names kept),
// and unmodified subtrees are shared with the input.
func ReplaceLiteralName(root ast.Expr, from string, to ast.Value) (ast.Expr, error) {
	return ReplaceLiteralNameDepth(root, from, to, DefaultMaxDepth)
}

// ReplaceLiteralNameDepth is ReplaceLiteralName with an explicit recursion
// bound.
func ReplaceLiteralNameDepth(root ast.Expr, from string, to ast.Value, maxDepth int) (ast.Expr, error) {
	if _, err := ast.NewName(from); err != nil {
		return nil, err
	}
	r := &replacer{from: from, to: to, maxDepth: maxDepth}
	return r.rewrite(root, ast.Path{})
}

type replacer struct {
	from     string
	to       ast.Value
	maxDepth int
}

func (r *replacer) rewrite(node ast.Expr, path ast.Path) (ast.Expr, error) {
	if len(path) > r.maxDepth {
		return nil, &ast.Error{Kind: ast.ErrMaxDepthExceeded, Message: "rewrite exceeded depth limit", Path: path}
	}
	switch n := node.(type) {
	case *ast.Constant:
		return n, nil
	case *ast.Name:
		if n.Identifier == r.from {
			return ast.NewConstant(r.to), nil
		}
		return n, nil
	case *ast.Call:
		return r.rewriteCall(n, path)
	case *ast.ParamList:
		return r.rewriteParams(n, path)
	default:
		return node, nil
	}
}

func (r *replacer) rewriteCall(call *ast.Call, path ast.Path) (ast.Expr, error) {
	callee := call.Callee
	changed := false
	// A bare-name callee is a use of the identifier as a function, not as a
	// value; only complex callees are descended into.
	if !ast.IsName(callee) {
		rewritten, err := r.rewrite(callee, path.Child(0))
		if err != nil {
			return nil, err
		}
		if rewritten != callee {
			callee = rewritten
			changed = true
		}
	}
	args := make([]ast.Arg, len(call.Args))
	for i, arg := range call.Args {
		args[i] = arg
		value, err := r.rewrite(arg.Value, path.Child(i+1))
		if err != nil {
			return nil, err
		}
		if value != arg.Value {
			args[i].Value = value
			changed = true
		}
	}
	if !changed {
		return call, nil
	}
	rebuilt, err := ast.NewCall(callee, args)
	if err != nil {
		return nil, ast.ErrorAt(path, err)
	}
	return rebuilt, nil
}

func (r *replacer) rewriteParams(params *ast.ParamList, path ast.Path) (ast.Expr, error) {
	changed := false
	rewritten := make([]ast.Param, len(params.Params))
	for i, p := range params.Params {
		rewritten[i] = p
		if p.Default == nil {
			continue
		}
		def, err := r.rewrite(p.Default, path.Child(i))
		if err != nil {
			return nil, err
		}
		if def != p.Default {
			rewritten[i].Default = def
			changed = true
		}
	}
	if !changed {
		return params, nil
	}
	rebuilt, err := ast.NewParamList(rewritten)
	if err != nil {
		return nil, ast.ErrorAt(path, err)
	}
	return rebuilt, nil
}
