package analysis

import (
	"rlang/expr-go/pkg/ast"
)

// AssignOperator is the assignment callee the target finder recognizes.
const AssignOperator = "<-"

// FindAssignmentTargets returns the identifiers assigned with the "<-"
// operator, in discovery order, duplicates included. Only a bare name on
// the left-hand side counts: names(ls) <- "b" assigns through a call and is
// skipped, and the walk never descends into a left-hand side. The
// right-hand side is searched, so x <- print(y <- 5) yields both x and y.
//
// This is a deliberately incomplete heuristic carried over from its source:
// assignment through other mechanisms (assign("x", 1), <<-) is not
// detected. Malformed assignment calls are reported to the collector with
// their node path and their branch skipped; sibling branches still run.
func FindAssignmentTargets(root ast.Expr, collect Collector) []string {
	targets := []string{}
	findTargets(root, ast.Path{}, collect, &targets, DefaultMaxDepth)
	return targets
}

// UniqueAssignmentTargets is FindAssignmentTargets with duplicates
// coalesced, keeping first-occurrence order.
func UniqueAssignmentTargets(root ast.Expr, collect Collector) []string {
	all := FindAssignmentTargets(root, collect)
	seen := make(map[string]struct{}, len(all))
	unique := []string{}
	for _, name := range all {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	return unique
}

func findTargets(node ast.Expr, path ast.Path, collect Collector, targets *[]string, maxDepth int) {
	if node == nil {
		return
	}
	if len(path) > maxDepth {
		report(collect, path, &ast.Error{Kind: ast.ErrMaxDepthExceeded, Message: "traversal exceeded depth limit", Path: path})
		return
	}
	call, ok := node.(*ast.Call)
	if !ok {
		for _, c := range children(node) {
			findTargets(c.expr, path.Child(c.index), collect, targets, maxDepth)
		}
		return
	}
	if callee, ok := call.Callee.(*ast.Name); ok && callee.Identifier == AssignOperator && allPositional(call.Args) {
		if len(call.Args) < 2 {
			report(collect, path, ast.NewError(ast.ErrIndexOutOfRange,
				"assignment call has %d arguments, need 2", len(call.Args)))
			return
		}
		if target, ok := call.Args[0].Value.(*ast.Name); ok {
			*targets = append(*targets, target.Identifier)
		}
		// The left-hand side is never searched; nested assignments are only
		// found on the value side.
		for i := 1; i < len(call.Args); i++ {
			findTargets(call.Args[i].Value, path.Child(i+1), collect, targets, maxDepth)
		}
		return
	}
	for _, c := range children(call) {
		findTargets(c.expr, path.Child(c.index), collect, targets, maxDepth)
	}
}

func allPositional(args []ast.Arg) bool {
	for _, arg := range args {
		if arg.Name != "" {
			return false
		}
	}
	return true
}

func report(collect Collector, path ast.Path, err error) {
	if collect != nil {
		collect(BranchError{Path: path, Err: err})
	}
}
