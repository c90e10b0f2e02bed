// Package runtime holds the binding environment consumed by the
// substitution engine. Environments chain lexically through an optional
// parent and are read-only while a substitution pass runs: the engine only
// ever looks bindings up.
package runtime

import (
	"sort"
	"sync"

	"rlang/expr-go/pkg/ast"
)

// DotsName is the variadic binding identifier.
const DotsName = "..."

// BindingKind discriminates what an identifier is bound to.
type BindingKind int

const (
	// BindingValue substitutes the name with a constant.
	BindingValue BindingKind = iota
	// BindingExpr splices a replacement expression in place of the name.
	BindingExpr
	// BindingDots expands a Name("...") argument slot into zero or more
	// argument slots.
	BindingDots
)

// Binding is a single resolved entry. The value/expression split is
// deliberate and not interchangeable: a bound constant always substitutes
// as a literal, while a bound expression splices in unevaluated. Inserting
// quote-like structure goes through BindExpr, never through a value.
type Binding struct {
	kind  BindingKind
	value ast.Value
	expr  ast.Expr
	dots  []ast.Arg
}

func (b Binding) Kind() BindingKind { return b.kind }
func (b Binding) Value() ast.Value  { return b.value }
func (b Binding) Expr() ast.Expr    { return b.expr }
func (b Binding) Dots() []ast.Arg   { return b.dots }

// Bindings maps identifiers to bindings, searching outward through an
// optional parent chain on lookup.
type Bindings struct {
	entries map[string]Binding
	parent  *Bindings
	mu      sync.RWMutex
}

// NewBindings creates an environment, optionally nested under a parent.
func NewBindings(parent *Bindings) *Bindings {
	return &Bindings{
		entries: make(map[string]Binding),
		parent:  parent,
	}
}

// Parent exposes the lexical parent (nil at the chain root).
func (b *Bindings) Parent() *Bindings {
	return b.parent
}

// BindValue associates an identifier with a concrete value, converting
// native Go values through ast.ValueOf. Anything not representable as a
// constant fails with InvalidReplacementType; callers needing to splice
// structure must use BindExpr instead. The variadic name cannot carry a
// plain value.
func (b *Bindings) BindValue(name string, value any) error {
	if name == DotsName {
		return ast.NewError(ast.ErrMalformedVariadicBinding, "%q must be bound to an argument sequence", DotsName)
	}
	if name == "" {
		return ast.NewError(ast.ErrInvalidIdentifier, "binding name must be non-empty")
	}
	converted, err := ast.ValueOf(value)
	if err != nil {
		return err
	}
	b.mu.Lock()
	b.entries[name] = Binding{kind: BindingValue, value: converted}
	b.mu.Unlock()
	return nil
}

// BindExpr associates an identifier with a replacement expression.
func (b *Bindings) BindExpr(name string, expr ast.Expr) error {
	if name == DotsName {
		return ast.NewError(ast.ErrMalformedVariadicBinding, "%q must be bound to an argument sequence", DotsName)
	}
	if name == "" {
		return ast.NewError(ast.ErrInvalidIdentifier, "binding name must be non-empty")
	}
	if expr == nil {
		return ast.NewError(ast.ErrInvalidReplacementType, "replacement expression for %q is nil", name)
	}
	b.mu.Lock()
	b.entries[name] = Binding{kind: BindingExpr, expr: expr}
	b.mu.Unlock()
	return nil
}

// BindDots binds the variadic sequence. Each entry keeps its optional
// keyword name through splicing.
func (b *Bindings) BindDots(args []ast.Arg) error {
	for _, arg := range args {
		if arg.Value == nil {
			return ast.NewError(ast.ErrMalformedVariadicBinding, "variadic entry carries a nil expression")
		}
	}
	b.mu.Lock()
	b.entries[DotsName] = Binding{kind: BindingDots, dots: args}
	b.mu.Unlock()
	return nil
}

// Lookup retrieves a binding, searching outward through the parent chain.
func (b *Bindings) Lookup(name string) (Binding, bool) {
	if b == nil {
		return Binding{}, false
	}
	b.mu.RLock()
	entry, ok := b.entries[name]
	b.mu.RUnlock()
	if ok {
		return entry, true
	}
	return b.parent.Lookup(name)
}

// Dots retrieves the variadic binding, if any.
func (b *Bindings) Dots() ([]ast.Arg, bool) {
	entry, ok := b.Lookup(DotsName)
	if !ok || entry.kind != BindingDots {
		return nil, false
	}
	return entry.dots, true
}

// Has reports whether the identifier is bound anywhere in the chain.
func (b *Bindings) Has(name string) bool {
	_, ok := b.Lookup(name)
	return ok
}

// Keys returns the current scope's bound identifiers in sorted order
// (useful for determinism in tests).
func (b *Bindings) Keys() []string {
	b.mu.RLock()
	keys := make([]string, 0, len(b.entries))
	for k := range b.entries {
		keys = append(keys, k)
	}
	b.mu.RUnlock()
	sort.Strings(keys)
	return keys
}
