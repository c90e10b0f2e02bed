package ast

import (
	"strconv"
	"strings"
)

// Path locates a node as the sequence of child indices from the root. For a
// Call, index 0 is the callee and index i (i >= 1) is argument i-1; for a
// ParamList, index i is the default expression of parameter i.
type Path []int

// Child returns a new path extended by one index. The receiver is never
// mutated, so sibling branches of a traversal can share a prefix.
func (p Path) Child(index int) Path {
	child := make(Path, len(p)+1)
	copy(child, p)
	child[len(p)] = index
	return child
}

func (p Path) String() string {
	if len(p) == 0 {
		return "root"
	}
	var b strings.Builder
	for _, index := range p {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(index))
	}
	return b.String()
}
