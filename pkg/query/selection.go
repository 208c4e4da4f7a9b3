package query

import (
	"github.com/salesforce-ux/query-ast/pkg/ast"
)

// Selection is an ordered sequence of overlay nodes plus a back-pointer to
// the Selection that produced it. Traversal methods return a fresh
// Selection; the receiver is never modified. Mutation methods (mutation.go)
// splice the overlay in place and return the receiver.
type Selection struct {
	nodes []*ast.Node
	prev  *Selection
	sess  *Session
}

// derive builds the result of a traversal, recording the receiver as its
// producer.
func (s *Selection) derive(nodes []*ast.Node) *Selection {
	return &Selection{nodes: nodes, prev: s, sess: s.sess}
}

// Length returns the number of nodes in the selection.
func (s *Selection) Length() int {
	return len(s.nodes)
}

// Nodes returns a copy of the selection's node sequence.
func (s *Selection) Nodes() []*ast.Node {
	nodes := make([]*ast.Node, len(s.nodes))
	copy(nodes, s.nodes)
	return nodes
}

// End returns the Selection that produced this one, or the receiver at the
// head of a chain.
func (s *Selection) End() *Selection {
	if s.prev == nil {
		return s
	}
	return s.prev
}

// Children returns the direct children of every node in the selection,
// filtered by the optional selector. Nodes without children contribute
// nothing.
func (s *Selection) Children(selector ...any) *Selection {
	match := optional(selector)
	var out []*ast.Node
	for _, n := range s.nodes {
		for _, child := range n.Children {
			if match(child) {
				out = append(out, child)
			}
		}
	}
	return s.derive(out)
}

// Find returns every descendant of every node in the selection that
// satisfies the optional selector, excluding the nodes themselves. Each
// starting node contributes its descendants in post-order, so a deeply
// nested match precedes its matching ancestor; results are deduplicated by
// identity across the whole selection.
func (s *Selection) Find(selector ...any) *Selection {
	match := optional(selector)
	collect := func(acc any, n *ast.Node) any {
		if match(n) {
			return append(acc.([]*ast.Node), n)
		}
		return acc
	}

	var out []*ast.Node
	for _, n := range s.nodes {
		acc := any([]*ast.Node{})
		for _, child := range n.Children {
			acc = child.Reduce(collect, acc)
		}
		out = append(out, acc.([]*ast.Node)...)
	}
	return s.derive(dedupe(out))
}

// Filter reduces the selection to members satisfying the selector,
// preserving order.
func (s *Selection) Filter(selector ...any) *Selection {
	match := optional(selector)
	var out []*ast.Node
	for _, n := range s.nodes {
		if match(n) {
			out = append(out, n)
		}
	}
	return s.derive(out)
}

// Eq reduces the selection to the single node at index. An out-of-range
// index yields an empty Selection.
func (s *Selection) Eq(index int) *Selection {
	if index < 0 || index >= len(s.nodes) {
		return s.derive(nil)
	}
	return s.derive([]*ast.Node{s.nodes[index]})
}

// First is sugar for Eq(0).
func (s *Selection) First() *Selection {
	return s.Eq(0)
}

// Last is sugar for Eq(Length()-1).
func (s *Selection) Last() *Selection {
	return s.Eq(len(s.nodes) - 1)
}

// Index has three modes. With no argument it returns the position of the
// selection's first node among its own siblings, or -1 without a parent.
// With an *ast.Node argument it returns that node's position within the
// selection itself. With a selector argument it returns the position of the
// first node within its siblings that match the selector. Every not-found
// case yields -1.
func (s *Selection) Index(arg ...any) int {
	if len(s.nodes) == 0 {
		return -1
	}

	if len(arg) > 0 {
		if n, ok := arg[0].(*ast.Node); ok {
			for i, member := range s.nodes {
				if member == n {
					return i
				}
			}
			return -1
		}
		if arg[0] != nil {
			return s.indexAmongMatching(resolve(arg[0]))
		}
	}

	return s.nodes[0].Index()
}

// indexAmongMatching locates the first node within the selector-filtered
// sibling list.
func (s *Selection) indexAmongMatching(match matcher) int {
	first := s.nodes[0]
	if first.Parent == nil {
		return -1
	}
	pos := 0
	for _, sibling := range first.Parent.Children {
		if !match(sibling) {
			continue
		}
		if sibling == first {
			return pos
		}
		pos++
	}
	return -1
}

// Parent returns each node's immediate parent, filtered by the optional
// selector. No deduplication is applied; siblings map to the same parent
// node repeatedly.
func (s *Selection) Parent(selector ...any) *Selection {
	match := optional(selector)
	var out []*ast.Node
	for _, n := range s.nodes {
		if n.Parent != nil && match(n.Parent) {
			out = append(out, n.Parent)
		}
	}
	return s.derive(out)
}

// Parents returns every ancestor of every node up to the root, innermost
// first per starting node, filtered by the optional selector and
// deduplicated by identity (first occurrence kept).
func (s *Selection) Parents(selector ...any) *Selection {
	match := optional(selector)
	var out []*ast.Node
	for _, n := range s.nodes {
		for cur := n.Parent; cur != nil; cur = cur.Parent {
			if match(cur) {
				out = append(out, cur)
			}
		}
	}
	return s.derive(dedupe(out))
}

// ParentsUntil returns every ancestor up to, but excluding, the first one
// matching the selector. The selector is purely a stopping condition, not a
// filter on the collected ancestors.
func (s *Selection) ParentsUntil(selector any) *Selection {
	match := resolve(selector)
	var out []*ast.Node
	for _, n := range s.nodes {
		for cur := n.Parent; cur != nil; cur = cur.Parent {
			if match(cur) {
				break
			}
			out = append(out, cur)
		}
	}
	return s.derive(dedupe(out))
}

// Closest returns, for each node, the nearest of the node itself and its
// ancestors that matches the selector. Nodes with no matching ancestor
// contribute nothing. Deduplicated across the selection.
func (s *Selection) Closest(selector ...any) *Selection {
	match := optional(selector)
	var out []*ast.Node
	for _, n := range s.nodes {
		for cur := n; cur != nil; cur = cur.Parent {
			if match(cur) {
				out = append(out, cur)
				break
			}
		}
	}
	return s.derive(dedupe(out))
}

// Next returns each node's immediate following sibling, filtered by the
// optional selector. A last or parentless node contributes nothing, even
// when a later sibling would match.
func (s *Selection) Next(selector ...any) *Selection {
	match := optional(selector)
	var out []*ast.Node
	for _, n := range s.nodes {
		idx := n.Index()
		if idx < 0 || idx+1 >= len(n.Parent.Children) {
			continue
		}
		if sibling := n.Parent.Children[idx+1]; match(sibling) {
			out = append(out, sibling)
		}
	}
	return s.derive(out)
}

// Prev returns each node's immediate preceding sibling, filtered by the
// optional selector.
func (s *Selection) Prev(selector ...any) *Selection {
	match := optional(selector)
	var out []*ast.Node
	for _, n := range s.nodes {
		idx := n.Index()
		if idx < 1 {
			continue
		}
		if sibling := n.Parent.Children[idx-1]; match(sibling) {
			out = append(out, sibling)
		}
	}
	return s.derive(out)
}

// NextAll returns all following siblings of each node in forward order,
// filtered by the optional selector.
func (s *Selection) NextAll(selector ...any) *Selection {
	match := optional(selector)
	var out []*ast.Node
	for _, n := range s.nodes {
		idx := n.Index()
		if idx < 0 {
			continue
		}
		for _, sibling := range n.Parent.Children[idx+1:] {
			if match(sibling) {
				out = append(out, sibling)
			}
		}
	}
	return s.derive(out)
}

// PrevAll returns all preceding siblings of each node in nearest-first
// (reverse) order, filtered by the optional selector.
func (s *Selection) PrevAll(selector ...any) *Selection {
	match := optional(selector)
	var out []*ast.Node
	for _, n := range s.nodes {
		idx := n.Index()
		if idx < 0 {
			continue
		}
		for i := idx - 1; i >= 0; i-- {
			if sibling := n.Parent.Children[i]; match(sibling) {
				out = append(out, sibling)
			}
		}
	}
	return s.derive(out)
}

// Has reduces the selection to members with at least one descendant
// matching the selector.
func (s *Selection) Has(selector any) *Selection {
	match := resolve(selector)
	var out []*ast.Node
	for _, n := range s.nodes {
		if hasDescendant(n, match) {
			out = append(out, n)
		}
	}
	return s.derive(out)
}

// HasParent reduces the selection to members whose immediate parent matches
// the optional selector.
func (s *Selection) HasParent(selector ...any) *Selection {
	match := optional(selector)
	var out []*ast.Node
	for _, n := range s.nodes {
		if n.Parent != nil && match(n.Parent) {
			out = append(out, n)
		}
	}
	return s.derive(out)
}

// HasParents reduces the selection to members with at least one ancestor
// matching the optional selector.
func (s *Selection) HasParents(selector ...any) *Selection {
	match := optional(selector)
	var out []*ast.Node
	for _, n := range s.nodes {
		for cur := n.Parent; cur != nil; cur = cur.Parent {
			if match(cur) {
				out = append(out, n)
				break
			}
		}
	}
	return s.derive(out)
}

// Value concatenates the leaf text of every node's subtree in post-order,
// across the selection in order. For trees whose text lives in leaves this
// equals document order.
func (s *Selection) Value() string {
	text := ""
	for _, n := range s.nodes {
		text, _ = n.Reduce(func(acc any, cur *ast.Node) any {
			return acc.(string) + cur.Text()
		}, text).(string)
	}
	return text
}

// Map applies fn to every node in the selection and returns the results.
func (s *Selection) Map(fn func(n *ast.Node) any) []any {
	out := make([]any, 0, len(s.nodes))
	for _, n := range s.nodes {
		out = append(out, fn(n))
	}
	return out
}

// Reduce folds fn over the selection's member nodes (not their subtrees).
func (s *Selection) Reduce(fn func(acc any, n *ast.Node) any, acc any) any {
	for _, n := range s.nodes {
		acc = fn(acc, n)
	}
	return acc
}

// Concat merges two selections' node sequences into one new Selection.
func (s *Selection) Concat(other *Selection) *Selection {
	out := make([]*ast.Node, 0, len(s.nodes)+len(other.nodes))
	out = append(out, s.nodes...)
	out = append(out, other.nodes...)
	return s.derive(out)
}

// Get reconstructs the selection back into raw-tree form. With no argument
// it returns a []any of every node's JSON reconstruction; with an index it
// returns the single node's reconstruction, or nil when out of range.
func (s *Selection) Get(index ...int) any {
	if len(index) > 0 {
		i := index[0]
		if i < 0 || i >= len(s.nodes) {
			return nil
		}
		return s.nodes[i].JSON()
	}
	out := make([]any, 0, len(s.nodes))
	for _, n := range s.nodes {
		out = append(out, n.JSON())
	}
	return out
}

// hasDescendant reports whether any strict descendant of n matches.
func hasDescendant(n *ast.Node, match matcher) bool {
	for _, child := range n.Children {
		if match(child) || hasDescendant(child, match) {
			return true
		}
	}
	return false
}

// dedupe drops repeated node identities, keeping first occurrences.
func dedupe(nodes []*ast.Node) []*ast.Node {
	if len(nodes) < 2 {
		return nodes
	}
	seen := make(map[*ast.Node]struct{}, len(nodes))
	out := nodes[:0]
	for _, n := range nodes {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
