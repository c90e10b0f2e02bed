package ast

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValueKind identifies the atomic value category a Constant may carry.
type ValueKind int

const (
	ValueBool ValueKind = iota
	ValueInt
	ValueFloat
	ValueString
)

func (k ValueKind) String() string {
	switch k {
	case ValueBool:
		return "bool"
	case ValueInt:
		return "int"
	case ValueFloat:
		return "float"
	case ValueString:
		return "string"
	default:
		return fmt.Sprintf("unknown_value_kind_%d", int(k))
	}
}

// Value is the immutable atomic payload of a Constant. Equality is value
// equality within the same kind; an int and a float never compare equal even
// when numerically identical, keeping equality purely syntactic.
type Value struct {
	kind ValueKind
	b    bool
	i    int64
	f    float64
	s    string
}

func BoolValue(b bool) Value { return Value{kind: ValueBool, b: b} }
func IntValue(i int64) Value { return Value{kind: ValueInt, i: i} }
func FloatValue(f float64) Value { return Value{kind: ValueFloat, f: f} }
func StringValue(s string) Value { return Value{kind: ValueString, s: s} }

func (v Value) Kind() ValueKind { return v.kind }
func (v Value) Bool() bool { return v.b }
func (v Value) Int() int64 { return v.i }
func (v Value) Float() float64 { return v.f }
func (v Value) Str() string { return v.s }

func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case ValueBool:
		return v.b == other.b
	case ValueInt:
		return v.i == other.i
	case ValueFloat:
		// NaN constants compare equal to themselves; equality is over the
		// written literal, not IEEE semantics.
		return v.f == other.f || (math.IsNaN(v.f) && math.IsNaN(other.f))
	case ValueString:
		return v.s == other.s
	default:
		return false
	}
}

// String renders the value in surface syntax. Finite floats always carry a
// decimal point or exponent so they re-parse as floats rather than ints;
// non-finite floats use the NaN and Inf literals.
func (v Value) String() string {
	switch v.kind {
	case ValueBool:
		if v.b {
			return "TRUE"
		}
		return "FALSE"
	case ValueInt:
		return strconv.FormatInt(v.i, 10)
	case ValueFloat:
		switch {
		case math.IsNaN(v.f):
			return "NaN"
		case math.IsInf(v.f, 1):
			return "Inf"
		case math.IsInf(v.f, -1):
			return "-Inf"
		}
		text := strconv.FormatFloat(v.f, 'g', -1, 64)
		if !strings.ContainsAny(text, ".eE") {
			text += ".0"
		}
		return text
	case ValueString:
		return strconv.Quote(v.s)
	default:
		return fmt.Sprintf("<%v>", v.kind)
	}
}

// ValueOf converts a native Go value into a Value. Only atomic types are
// representable; anything else fails with InvalidReplacementType, pushing
// callers that need to splice richer structures onto the replacement
// expression path instead.
func ValueOf(value any) (Value, error) {
	switch v := value.(type) {
	case Value:
		return v, nil
	case bool:
		return BoolValue(v), nil
	case int:
		return IntValue(int64(v)), nil
	case int32:
		return IntValue(int64(v)), nil
	case int64:
		return IntValue(v), nil
	case float32:
		return FloatValue(float64(v)), nil
	case float64:
		return FloatValue(v), nil
	case string:
		return StringValue(v), nil
	default:
		return Value{}, newError(ErrInvalidReplacementType, "cannot represent %T as a constant", value)
	}
}
