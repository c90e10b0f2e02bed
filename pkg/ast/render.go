package ast

import (
	"math"
	"strings"
)

// Render converts an expression to canonical surface syntax. Rendering is
// deterministic and side-effect free. Parsing the rendered text yields a
// structurally equal tree for every expression the constructors can build,
// with one documented exception: a ParamList renders meaningfully only in
// the first-argument position of a "function" call, since the surface
// syntax has no standalone spelling for formals. The reverse direction is
// deliberately not promised: Render(parse(s)) may normalize spacing,
// separators, and redundant parentheses away from the original s.
func Render(e Expr) string {
	var b strings.Builder
	render(&b, e, 0)
	return b.String()
}

func render(b *strings.Builder, e Expr, ctx int) {
	switch n := e.(type) {
	case *Constant:
		renderConstant(b, n, ctx)
	case *Name:
		renderName(b, n.Identifier)
	case *ParamList:
		b.WriteByte('(')
		renderParams(b, n)
		b.WriteByte(')')
	case *Call:
		renderCall(b, n, ctx)
	}
}

// renderConstant parenthesizes negative numbers in tight contexts so that
// "-5$x" never re-parses as -(5$x).
func renderConstant(b *strings.Builder, c *Constant, ctx int) {
	negative := (c.Value.Kind() == ValueInt && c.Value.Int() < 0) ||
		(c.Value.Kind() == ValueFloat && c.Value.Float() < 0)
	if negative && ctx > PrecUnary {
		b.WriteByte('(')
		b.WriteString(c.Value.String())
		b.WriteByte(')')
		return
	}
	b.WriteString(c.Value.String())
}

func renderName(b *strings.Builder, identifier string) {
	if IsSyntacticName(identifier) && !IsReservedWord(identifier) {
		b.WriteString(identifier)
		return
	}
	b.WriteByte('`')
	b.WriteString(identifier)
	b.WriteByte('`')
}

func renderParams(b *strings.Builder, params *ParamList) {
	for i, p := range params.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		renderName(b, p.Name)
		if p.Default != nil {
			b.WriteString(" = ")
			render(b, p.Default, 0)
		}
	}
}

func renderCall(b *strings.Builder, call *Call, ctx int) {
	if name, ok := call.Callee.(*Name); ok && allPositional(call.Args) {
		id := name.Identifier
		switch {
		case id == "{":
			renderBlock(b, call)
			return
		case id == "if" && (len(call.Args) == 2 || len(call.Args) == 3):
			renderIf(b, call, ctx)
			return
		case id == "function" && len(call.Args) == 2 && IsParamList(call.Args[0].Value):
			renderFunction(b, call, ctx)
			return
		}
		if info, ok := BinaryOp(id); ok && len(call.Args) == 2 {
			if id == "$" {
				if renderDollar(b, call, ctx) {
					return
				}
			} else {
				renderInfix(b, call, id, info, ctx)
				return
			}
		}
		if prec, ok := UnaryOp(id); ok && len(call.Args) == 1 {
			renderPrefix(b, call, id, prec, ctx)
			return
		}
	}
	renderPlainCall(b, call)
}

func allPositional(args []Arg) bool {
	for _, arg := range args {
		if arg.Name != "" {
			return false
		}
	}
	return true
}

func renderBlock(b *strings.Builder, call *Call) {
	if len(call.Args) == 0 {
		b.WriteString("{ }")
		return
	}
	b.WriteString("{ ")
	for i, arg := range call.Args {
		if i > 0 {
			b.WriteString("; ")
		}
		render(b, arg.Value, 0)
	}
	b.WriteString(" }")
}

func renderIf(b *strings.Builder, call *Call, ctx int) {
	wrap := ctx > PrecAssign
	if wrap {
		b.WriteByte('(')
	}
	b.WriteString("if (")
	render(b, call.Args[0].Value, 0)
	b.WriteString(") ")
	// An else-less conditional in the then-branch would capture this call's
	// else clause on re-parse, so it gets parenthesized.
	if len(call.Args) == 3 && isElselessIf(call.Args[1].Value) {
		b.WriteByte('(')
		render(b, call.Args[1].Value, 0)
		b.WriteByte(')')
	} else {
		render(b, call.Args[1].Value, 0)
	}
	if len(call.Args) == 3 {
		b.WriteString(" else ")
		render(b, call.Args[2].Value, 0)
	}
	if wrap {
		b.WriteByte(')')
	}
}

func isElselessIf(e Expr) bool {
	call, ok := e.(*Call)
	if !ok || len(call.Args) != 2 {
		return false
	}
	name, ok := call.Callee.(*Name)
	return ok && name.Identifier == "if" && allPositional(call.Args)
}

func renderFunction(b *strings.Builder, call *Call, ctx int) {
	wrap := ctx > PrecAssign
	if wrap {
		b.WriteByte('(')
	}
	b.WriteString("function(")
	renderParams(b, call.Args[0].Value.(*ParamList))
	b.WriteString(") ")
	render(b, call.Args[1].Value, 0)
	if wrap {
		b.WriteByte(')')
	}
}

func renderInfix(b *strings.Builder, call *Call, op string, info OpInfo, ctx int) {
	wrap := ctx > info.Prec
	if wrap {
		b.WriteByte('(')
	}
	leftCtx, rightCtx := info.Prec, info.Prec+1
	if info.RightAssoc {
		leftCtx, rightCtx = info.Prec+1, info.Prec
	}
	render(b, call.Args[0].Value, leftCtx)
	if op == ":" {
		b.WriteString(op)
	} else {
		b.WriteByte(' ')
		b.WriteString(op)
		b.WriteByte(' ')
	}
	render(b, call.Args[1].Value, rightCtx)
	if wrap {
		b.WriteByte(')')
	}
}

// renderDollar writes lhs$name when the right-hand side is a bare name; any
// other shape falls back to the backquoted call form.
func renderDollar(b *strings.Builder, call *Call, ctx int) bool {
	member, ok := call.Args[1].Value.(*Name)
	if !ok {
		return false
	}
	wrap := ctx > PrecDollar
	if wrap {
		b.WriteByte('(')
	}
	render(b, call.Args[0].Value, PrecDollar)
	b.WriteByte('$')
	renderName(b, member.Identifier)
	if wrap {
		b.WriteByte(')')
	}
	return true
}

func renderPrefix(b *strings.Builder, call *Call, op string, prec int, ctx int) {
	wrap := ctx > prec
	if wrap {
		b.WriteByte('(')
	}
	b.WriteString(op)
	operand := call.Args[0].Value
	// "-" directly in front of a literal would fold back into a negative
	// constant, which is a different tree than this explicit call.
	if op == "-" && isFoldableNumber(operand) {
		b.WriteByte('(')
		render(b, operand, 0)
		b.WriteByte(')')
	} else {
		render(b, operand, prec)
	}
	if wrap {
		b.WriteByte(')')
	}
}

// isFoldableNumber reports whether a minus written directly in front of the
// constant's literal would fold back into a (different) negative constant on
// re-parse. Negative numbers already render with their own minus, so a
// prefix call on them stays a call without parentheses.
func isFoldableNumber(e Expr) bool {
	c, ok := e.(*Constant)
	if !ok {
		return false
	}
	switch c.Value.Kind() {
	case ValueInt:
		return c.Value.Int() >= 0
	case ValueFloat:
		f := c.Value.Float()
		return f >= 0 || math.IsNaN(f)
	default:
		return false
	}
}

func renderPlainCall(b *strings.Builder, call *Call) {
	if name, ok := call.Callee.(*Name); ok {
		renderName(b, name.Identifier)
	} else {
		render(b, call.Callee, PrecAtom)
	}
	b.WriteByte('(')
	for i, arg := range call.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		if arg.Name != "" {
			renderName(b, arg.Name)
			b.WriteString(" = ")
		}
		render(b, arg.Value, 0)
	}
	b.WriteByte(')')
}
