// Package query implements the selector-driven query and mutation engine
// over the ast overlay.
//
// A Session is built once per raw tree root and hands out Selections:
// ordered, identity-deduplicated sequences of overlay nodes that chain
// jQuery-style. Traversal methods (Children, Find, Parents, Closest, Next,
// ...) are pure reads returning a fresh Selection that remembers its
// producer (End). Mutation methods (After, Before, Remove, Replace) splice
// the overlay's children slices in place and return the receiver.
//
// Selectors are duck-typed: absent means match everything, a string matches
// node types exactly, a *regexp.Regexp matches node types by pattern, and a
// func(*ast.Node) bool is used directly as the predicate.
//
// # Usage Example
//
//	s, err := query.New(tree, nil)
//	if err != nil {
//		return err
//	}
//	sel, _ := s.Query()
//	for _, raw := range sel.Find("number").Get().([]any) {
//		fmt.Println(raw)
//	}
//
// Absence is never an error: missing parents, unmatched selectors, and
// out-of-range indexes degrade to empty Selections (or -1 for Index).
// Errors are reserved for construction-time misuse.
package query
