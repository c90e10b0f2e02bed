package ast

// Terse constructor helpers used by tests and host tooling. They panic on
// constructor errors, which only arise from programmer mistakes (invalid
// identifier text, duplicate argument names).

func must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

func ID(name string) *Name {
	return must(NewName(name))
}

func Int(value int64) *Constant {
	return NewConstant(IntValue(value))
}

func Flt(value float64) *Constant {
	return NewConstant(FloatValue(value))
}

func Str(value string) *Constant {
	return NewConstant(StringValue(value))
}

func Bool(value bool) *Constant {
	return NewConstant(BoolValue(value))
}

// Pos wraps an expression as a positional argument.
func Pos(value Expr) Arg {
	return Arg{Value: value}
}

// Named wraps an expression as a keyword argument.
func Named(name string, value Expr) Arg {
	return Arg{Name: name, Value: value}
}

// CallTo applies a named callee to the given arguments.
func CallTo(name string, args ...Arg) *Call {
	return must(NewCall(ID(name), args))
}

// Apply applies an arbitrary callee expression.
func Apply(callee Expr, args ...Arg) *Call {
	return must(NewCall(callee, args))
}

// Assign builds target <- value with a bare-name target.
func Assign(target string, value Expr) *Call {
	return CallTo("<-", Pos(ID(target)), Pos(value))
}

// AssignExpr builds lhs <- rhs with an arbitrary left-hand side.
func AssignExpr(lhs, rhs Expr) *Call {
	return CallTo("<-", Pos(lhs), Pos(rhs))
}

// Block builds a braced expression sequence.
func Block(exprs ...Expr) *Call {
	args := make([]Arg, len(exprs))
	for i, e := range exprs {
		args[i] = Pos(e)
	}
	return CallTo("{", args...)
}

// If builds a two-armed conditional without an else branch.
func If(cond, then Expr) *Call {
	return CallTo("if", Pos(cond), Pos(then))
}

// IfElse builds a conditional with an else branch.
func IfElse(cond, then, alt Expr) *Call {
	return CallTo("if", Pos(cond), Pos(then), Pos(alt))
}

// Fn builds a function literal from formals and a body.
func Fn(params *ParamList, body Expr) *Call {
	return CallTo("function", Pos(params), Pos(body))
}

// Params builds a formal-parameter list.
func Params(params ...Param) *ParamList {
	return must(NewParamList(params))
}

// P is a parameter without a default.
func P(name string) Param {
	return Param{Name: name}
}

// PDef is a parameter with a default expression.
func PDef(name string, def Expr) Param {
	return Param{Name: name, Default: def}
}

// Dots is the variadic placeholder name.
func Dots() *Name {
	return ID("...")
}

// Member builds lhs$name.
func Member(lhs Expr, name string) *Call {
	return CallTo("$", Pos(lhs), Pos(ID(name)))
}
