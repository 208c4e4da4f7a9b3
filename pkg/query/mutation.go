package query

import (
	"github.com/sirupsen/logrus"

	"github.com/salesforce-ux/query-ast/pkg/ast"
)

// Mutation methods splice the overlay's children slices in place and return
// the receiver for chaining. Nodes without a parent (the tree root, or a
// node already spliced out) are silently skipped; absence is not an error.
//
// The inserted value may be a raw node or an *ast.Node. Raw values are
// wrapped fresh per insertion position, so inserting the same raw object at
// several positions yields independent overlay wrappers with their own
// parents. An existing *ast.Node is moved instead: it is spliced out of its
// current parent's children before being re-homed, so a single wrapper
// identity never appears in two children slices. Inserting a node relative
// to itself is a no-op.

// After inserts value immediately after each node in the selection.
func (s *Selection) After(value any) *Selection {
	for _, n := range s.nodes {
		if n.Index() < 0 || isSelf(value, n) {
			continue
		}
		inserted := s.adopt(value, n.Parent)
		idx := n.Index() // recompute: adopt may have spliced a sibling out
		insertChild(n.Parent, idx+1, inserted)
		s.logMutation("after", inserted, idx+1)
	}
	return s
}

// Before inserts value immediately before each node in the selection.
func (s *Selection) Before(value any) *Selection {
	for _, n := range s.nodes {
		if n.Index() < 0 || isSelf(value, n) {
			continue
		}
		inserted := s.adopt(value, n.Parent)
		idx := n.Index()
		insertChild(n.Parent, idx, inserted)
		s.logMutation("before", inserted, idx)
	}
	return s
}

// Remove splices each node in the selection out of its parent's children.
func (s *Selection) Remove() *Selection {
	for _, n := range s.nodes {
		idx := n.Index()
		if idx < 0 {
			continue
		}
		parent := n.Parent
		parent.Children = append(parent.Children[:idx], parent.Children[idx+1:]...)
		s.logMutation("remove", n, idx)
	}
	return s
}

// Replace substitutes each node in the selection with the result of fn,
// which receives the overlay node and may return a raw or wrapped
// replacement.
func (s *Selection) Replace(fn func(n *ast.Node) any) *Selection {
	for _, n := range s.nodes {
		if n.Index() < 0 {
			continue
		}
		value := fn(n)
		if isSelf(value, n) {
			continue
		}
		replacement := s.adopt(value, n.Parent)
		idx := n.Index()
		if idx < 0 {
			continue
		}
		n.Parent.Children[idx] = replacement
		s.logMutation("replace", replacement, idx)
	}
	return s
}

// adopt prepares value for insertion under parent. Raw values get a fresh
// wrapper; an existing *ast.Node is moved: spliced out of its current
// parent's children, then re-homed to the new parent.
func (s *Selection) adopt(value any, parent *ast.Node) *ast.Node {
	if n, ok := value.(*ast.Node); ok {
		detach(n)
		n.Parent = parent
		return n
	}
	return ast.Wrap(value, parent, s.sess.adapter)
}

// detach splices n out of its parent's children, if currently attached.
func detach(n *ast.Node) {
	idx := n.Index()
	if idx < 0 {
		return
	}
	p := n.Parent
	p.Children = append(p.Children[:idx], p.Children[idx+1:]...)
}

// isSelf reports whether value is the overlay node itself.
func isSelf(value any, n *ast.Node) bool {
	w, ok := value.(*ast.Node)
	return ok && w == n
}

// insertChild splices child into parent's children at position i.
func insertChild(parent *ast.Node, i int, child *ast.Node) {
	parent.Children = append(parent.Children, nil)
	copy(parent.Children[i+1:], parent.Children[i:])
	parent.Children[i] = child
}

func (s *Selection) logMutation(op string, n *ast.Node, idx int) {
	s.sess.log.WithFields(logrus.Fields{
		"op":    op,
		"type":  n.Type(),
		"index": idx,
	}).Debug("query-ast: overlay mutated")
}
