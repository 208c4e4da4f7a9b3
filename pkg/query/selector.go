package query

import (
	"regexp"

	"github.com/salesforce-ux/query-ast/pkg/ast"
)

// matcher is the uniform predicate every traversal and filter method runs
// against candidate nodes.
type matcher func(*ast.Node) bool

func matchAll(*ast.Node) bool { return true }

// resolve normalizes a caller-supplied selector into a matcher.
//
// Recognized kinds: nil (match everything), string (exact type match),
// *regexp.Regexp (type pattern match), func(*ast.Node) bool (used as-is).
// Anything else silently degrades to match-everything; lenient by contract,
// not an error.
func resolve(selector any) matcher {
	switch sel := selector.(type) {
	case string:
		return func(n *ast.Node) bool { return n.Type() == sel }
	case *regexp.Regexp:
		return func(n *ast.Node) bool { return sel.MatchString(n.Type()) }
	case func(*ast.Node) bool:
		return sel
	default:
		return matchAll
	}
}

// optional resolves the variadic selector argument of traversal methods,
// where no argument means match-everything.
func optional(selector []any) matcher {
	if len(selector) == 0 {
		return matchAll
	}
	return resolve(selector[0])
}
