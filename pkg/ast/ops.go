package ast

import "unicode"

// Operator table shared by the renderer and the parser so the two always
// agree on precedence and associativity. Higher numbers bind tighter.
const (
	PrecAssign  = 1
	PrecOr      = 2
	PrecAnd     = 3
	PrecNot     = 4
	PrecCompare = 5
	PrecAdd     = 6
	PrecMul     = 7
	PrecRange   = 8
	PrecUnary   = 9
	PrecDollar  = 10
	PrecAtom    = 11
)

// OpInfo describes a binary operator's binding behaviour.
type OpInfo struct {
	Prec       int
	RightAssoc bool
}

var binaryOps = map[string]OpInfo{
	"<-": {Prec: PrecAssign, RightAssoc: true},
	"||": {Prec: PrecOr},
	"&&": {Prec: PrecAnd},
	"==": {Prec: PrecCompare},
	"!=": {Prec: PrecCompare},
	"<":  {Prec: PrecCompare},
	">":  {Prec: PrecCompare},
	"<=": {Prec: PrecCompare},
	">=": {Prec: PrecCompare},
	"+":  {Prec: PrecAdd},
	"-":  {Prec: PrecAdd},
	"*":  {Prec: PrecMul},
	"/":  {Prec: PrecMul},
	":":  {Prec: PrecRange},
	"$":  {Prec: PrecDollar},
}

var unaryOps = map[string]int{
	"-": PrecUnary,
	"+": PrecUnary,
	"!": PrecNot,
}

// BinaryOp looks up infix binding information for an operator name.
func BinaryOp(name string) (OpInfo, bool) {
	info, ok := binaryOps[name]
	return info, ok
}

// UnaryOp looks up the prefix precedence for an operator name.
func UnaryOp(name string) (int, bool) {
	prec, ok := unaryOps[name]
	return prec, ok
}

var reservedWords = map[string]struct{}{
	"if":       {},
	"else":     {},
	"function": {},
	"TRUE":     {},
	"FALSE":    {},
	"NaN":      {},
	"Inf":      {},
}

// IsReservedWord reports whether the identifier collides with a keyword and
// therefore needs backquoting in rendered output.
func IsReservedWord(name string) bool {
	_, ok := reservedWords[name]
	return ok
}

// IsSyntacticName reports whether the identifier can appear bare in surface
// syntax: a letter or dot followed by letters, digits, dots, and underscores,
// with a dot never directly followed by a digit in the leading position.
func IsSyntacticName(name string) bool {
	if name == "" {
		return false
	}
	runes := []rune(name)
	if !unicode.IsLetter(runes[0]) && runes[0] != '.' {
		return false
	}
	if runes[0] == '.' && len(runes) > 1 && unicode.IsDigit(runes[1]) {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.' && r != '_' {
			return false
		}
	}
	return true
}
