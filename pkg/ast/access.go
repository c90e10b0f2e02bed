package ast

// Capability predicates. All O(1), no side effects.

func IsConstant(e Expr) bool { _, ok := e.(*Constant); return ok }
func IsName(e Expr) bool { _, ok := e.(*Name); return ok }
func IsCall(e Expr) bool { _, ok := e.(*Call); return ok }
func IsParamList(e Expr) bool { _, ok := e.(*ParamList); return ok }

// Arity reports the number of arguments of a call expression.
func Arity(e Expr) (int, error) {
	call, ok := e.(*Call)
	if !ok {
		return 0, newError(ErrNotACall, "%s expression has no arity", kindOf(e))
	}
	return len(call.Args), nil
}

// NthArgument returns the argument at a zero-based position.
func NthArgument(e Expr, index int) (Arg, error) {
	call, ok := e.(*Call)
	if !ok {
		return Arg{}, newError(ErrNotACall, "%s expression has no arguments", kindOf(e))
	}
	if index < 0 || index >= len(call.Args) {
		return Arg{}, newError(ErrIndexOutOfRange, "argument index %d out of range [0, %d)", index, len(call.Args))
	}
	return call.Args[index], nil
}

// ArgumentByName returns the argument tagged with the given keyword name.
func ArgumentByName(e Expr, name string) (Arg, error) {
	call, ok := e.(*Call)
	if !ok {
		return Arg{}, newError(ErrNotACall, "%s expression has no arguments", kindOf(e))
	}
	for _, arg := range call.Args {
		if arg.Name != "" && arg.Name == name {
			return arg, nil
		}
	}
	return Arg{}, newError(ErrNameNotFound, "no argument named %q", name)
}

func kindOf(e Expr) Kind {
	if e == nil {
		return Kind(-1)
	}
	return e.ExprKind()
}
