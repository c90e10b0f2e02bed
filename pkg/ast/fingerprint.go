package ast

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/blake3"
)

// Fingerprint returns a stable 32-byte structural hash of an expression.
// Structurally equal expressions hash identically, so hosts can use the
// fingerprint to intern or memoize analyses over repeated subtrees.
func Fingerprint(e Expr) [32]byte {
	h := blake3.New()
	hashExpr(h, e)
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

const (
	tagNil byte = iota
	tagConstant
	tagName
	tagCall
	tagParamList
)

func hashExpr(h *blake3.Hasher, e Expr) {
	if e == nil {
		h.Write([]byte{tagNil})
		return
	}
	switch n := e.(type) {
	case *Constant:
		h.Write([]byte{tagConstant, byte(n.Value.Kind())})
		switch n.Value.Kind() {
		case ValueBool:
			if n.Value.Bool() {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		case ValueInt:
			hashUint64(h, uint64(n.Value.Int()))
		case ValueFloat:
			f := n.Value.Float()
			// All NaN payloads hash alike, matching Equal.
			if math.IsNaN(f) {
				f = math.NaN()
			}
			hashUint64(h, math.Float64bits(f))
		case ValueString:
			hashString(h, n.Value.Str())
		}
	case *Name:
		h.Write([]byte{tagName})
		hashString(h, n.Identifier)
	case *Call:
		h.Write([]byte{tagCall})
		hashUint64(h, uint64(len(n.Args)))
		hashExpr(h, n.Callee)
		for _, arg := range n.Args {
			hashString(h, arg.Name)
			hashExpr(h, arg.Value)
		}
	case *ParamList:
		h.Write([]byte{tagParamList})
		hashUint64(h, uint64(len(n.Params)))
		for _, p := range n.Params {
			hashString(h, p.Name)
			hashExpr(h, p.Default)
		}
	}
}

func hashUint64(h *blake3.Hasher, v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	h.Write(buf[:])
}

func hashString(h *blake3.Hasher, s string) {
	hashUint64(h, uint64(len(s)))
	h.Write([]byte(s))
}
