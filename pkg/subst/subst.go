// Package subst implements single-pass substitution of free names in an
// expression per a binding environment. Substitution is pure: it never
// mutates its input and shares unmodified subtrees in the output.
package subst

import (
	"rlang/expr-go/pkg/ast"
	"rlang/expr-go/pkg/runtime"
)

// DefaultMaxDepth bounds recursion so pathologically deep trees surface
// MaxDepthExceeded instead of exhausting the stack.
const DefaultMaxDepth = 10000

// Substitute applies the environment to the expression:
//
//  1. a name bound to a concrete value becomes a constant;
//  2. a name bound to a replacement expression is spliced in as-is; the
//     replacement is not substituted again, so self-referential bindings
//     cannot loop;
//  3. an unbound name is left unchanged;
//  4. a positional Name("...") argument slot expands into the bound
//     variadic sequence.
//
// A nil environment returns the expression unchanged.
func Substitute(expr ast.Expr, env *runtime.Bindings) (ast.Expr, error) {
	return SubstituteDepth(expr, env, DefaultMaxDepth)
}

// SubstituteDepth is Substitute with an explicit recursion bound.
func SubstituteDepth(expr ast.Expr, env *runtime.Bindings, maxDepth int) (ast.Expr, error) {
	s := &substituter{env: env, maxDepth: maxDepth}
	return s.rewrite(expr, ast.Path{})
}

type substituter struct {
	env      *runtime.Bindings
	maxDepth int
}

func (s *substituter) rewrite(expr ast.Expr, path ast.Path) (ast.Expr, error) {
	if len(path) > s.maxDepth {
		return nil, &ast.Error{Kind: ast.ErrMaxDepthExceeded, Message: "substitution exceeded depth limit", Path: path}
	}
	switch n := expr.(type) {
	case *ast.Constant:
		return n, nil
	case *ast.Name:
		return s.resolveName(n), nil
	case *ast.Call:
		return s.rewriteCall(n, path)
	case *ast.ParamList:
		return s.rewriteParams(n, path)
	default:
		return expr, nil
	}
}

func (s *substituter) resolveName(name *ast.Name) ast.Expr {
	binding, ok := s.env.Lookup(name.Identifier)
	if !ok {
		return name
	}
	switch binding.Kind() {
	case runtime.BindingValue:
		return ast.NewConstant(binding.Value())
	case runtime.BindingExpr:
		return binding.Expr()
	default:
		// A standalone "..." outside an argument slot has no expansion
		// position, so it stays untouched.
		return name
	}
}

func (s *substituter) rewriteCall(call *ast.Call, path ast.Path) (ast.Expr, error) {
	callee, err := s.rewrite(call.Callee, path.Child(0))
	if err != nil {
		return nil, err
	}
	changed := callee != call.Callee
	args := make([]ast.Arg, 0, len(call.Args))
	for i, arg := range call.Args {
		if spliced, ok, err := s.expandDots(arg, path.Child(i+1)); err != nil {
			return nil, err
		} else if ok {
			args = append(args, spliced...)
			changed = true
			continue
		}
		value, err := s.rewrite(arg.Value, path.Child(i+1))
		if err != nil {
			return nil, err
		}
		if value != arg.Value {
			changed = true
		}
		args = append(args, ast.Arg{Name: arg.Name, Value: value})
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

// expandDots reports whether the argument is a positional variadic slot with
// an active binding, returning the spliced sequence when it is.
func (s *substituter) expandDots(arg ast.Arg, path ast.Path) ([]ast.Arg, bool, error) {
	if arg.Name != "" {
		return nil, false, nil
	}
	name, ok := arg.Value.(*ast.Name)
	if !ok || name.Identifier != runtime.DotsName {
		return nil, false, nil
	}
	binding, ok := s.env.Lookup(runtime.DotsName)
	if !ok {
		return nil, false, nil
	}
	if binding.Kind() != runtime.BindingDots {
		return nil, false, &ast.Error{
			Kind:    ast.ErrMalformedVariadicBinding,
			Message: "\"...\" is not bound to an argument sequence",
			Path:    path,
		}
	}
	return binding.Dots(), true, nil
}

func (s *substituter) rewriteParams(params *ast.ParamList, path ast.Path) (ast.Expr, error) {
	changed := false
	rewritten := make([]ast.Param, len(params.Params))
	for i, p := range params.Params {
		rewritten[i] = p
		if p.Default == nil {
			continue
		}
		def, err := s.rewrite(p.Default, path.Child(i))
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
