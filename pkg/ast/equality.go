package ast

// Equal reports structural equality: same variant and recursively equal
// contents, including argument order and keyword names. Equality is
// syntactic, never semantic. mean(1:10) and mean applied to the evaluated
// range are different trees even though an evaluator would agree on their
// results.
func Equal(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch ae := a.(type) {
	case *Constant:
		be, ok := b.(*Constant)
		return ok && ae.Value.Equal(be.Value)
	case *Name:
		be, ok := b.(*Name)
		return ok && ae.Identifier == be.Identifier
	case *Call:
		be, ok := b.(*Call)
		if !ok || len(ae.Args) != len(be.Args) {
			return false
		}
		if !Equal(ae.Callee, be.Callee) {
			return false
		}
		for i := range ae.Args {
			if ae.Args[i].Name != be.Args[i].Name {
				return false
			}
			if !Equal(ae.Args[i].Value, be.Args[i].Value) {
				return false
			}
		}
		return true
	case *ParamList:
		be, ok := b.(*ParamList)
		if !ok || len(ae.Params) != len(be.Params) {
			return false
		}
		for i := range ae.Params {
			if ae.Params[i].Name != be.Params[i].Name {
				return false
			}
			if !Equal(ae.Params[i].Default, be.Params[i].Default) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
