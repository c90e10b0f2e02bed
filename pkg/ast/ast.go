package ast

import "fmt"

// Kind identifies the expression variant.
type Kind int

const (
	KindConstant Kind = iota
	KindName
	KindCall
	KindParamList
)

func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindName:
		return "name"
	case KindCall:
		return "call"
	case KindParamList:
		return "param_list"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Expr is the shared behaviour for all expression nodes. Expressions are
// immutable once constructed: rewrites build new nodes and share untouched
// subtrees.
type Expr interface {
	ExprKind() Kind
	exprNode()
}

// Constant wraps an atomic literal value.
type Constant struct {
	Value Value
}

func NewConstant(value Value) *Constant {
	return &Constant{Value: value}
}

func (*Constant) ExprKind() Kind { return KindConstant }
func (*Constant) exprNode()      {}

// Name is a leaf expression referencing an identifier without evaluating it.
// A Name never carries a value; only a runtime binding environment associates
// an identifier with one.
type Name struct {
	Identifier string
}

// NewName validates the identifier text. Operator names ("<-", "{", "...")
// are legal; empty strings, control characters, and backquotes are not,
// since such a name could never be rendered back into surface syntax.
func NewName(identifier string) (*Name, error) {
	if err := checkIdentifier(identifier); err != nil {
		return nil, err
	}
	return &Name{Identifier: identifier}, nil
}

func (*Name) ExprKind() Kind { return KindName }
func (*Name) exprNode()      {}

// Arg is a single call argument, optionally tagged with a keyword name.
// An empty Name marks a positional argument.
type Arg struct {
	Name  string
	Value Expr
}

// Call applies a callee expression to an ordered argument list.
type Call struct {
	Callee Expr
	Args   []Arg
}

// NewCall rejects argument lists carrying a repeated non-empty name.
func NewCall(callee Expr, args []Arg) (*Call, error) {
	if callee == nil {
		return nil, newError(ErrInvalidIdentifier, "call requires a callee expression")
	}
	if err := checkArgNames(args); err != nil {
		return nil, err
	}
	return &Call{Callee: callee, Args: args}, nil
}

func (*Call) ExprKind() Kind { return KindCall }
func (*Call) exprNode()      {}

// Param is a single formal parameter with an optional default expression
// (nil when absent).
type Param struct {
	Name    string
	Default Expr
}

// ParamList is the formal-parameter structure carried as the first argument
// of a "function" call. It is a distinct variant rather than a nested Call so
// traversals handle it as its own recursive case.
type ParamList struct {
	Params []Param
}

func NewParamList(params []Param) (*ParamList, error) {
	seen := make(map[string]struct{}, len(params))
	for _, p := range params {
		if err := checkIdentifier(p.Name); err != nil {
			return nil, err
		}
		if _, dup := seen[p.Name]; dup {
			return nil, newError(ErrDuplicateArgumentName, "duplicate parameter name %q", p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return &ParamList{Params: params}, nil
}

func (*ParamList) ExprKind() Kind { return KindParamList }
func (*ParamList) exprNode()      {}

func checkIdentifier(identifier string) error {
	if identifier == "" {
		return newError(ErrInvalidIdentifier, "identifier must be non-empty")
	}
	for _, r := range identifier {
		if r == '`' || r == '\n' || r == '\r' || r < 0x20 || r == 0x7f {
			return newError(ErrInvalidIdentifier, "identifier %q contains unrepresentable characters", identifier)
		}
	}
	return nil
}

func checkArgNames(args []Arg) error {
	var seen map[string]struct{}
	for _, arg := range args {
		if arg.Name == "" {
			continue
		}
		if err := checkIdentifier(arg.Name); err != nil {
			return err
		}
		if seen == nil {
			seen = make(map[string]struct{}, len(args))
		}
		if _, dup := seen[arg.Name]; dup {
			return newError(ErrDuplicateArgumentName, "duplicate argument name %q", arg.Name)
		}
		seen[arg.Name] = struct{}{}
	}
	return nil
}
