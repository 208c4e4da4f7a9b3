package ast

import (
	"github.com/salesforce-ux/query-ast/pkg/types"
)

// Node wraps one raw tree node, adding the parent/children links the raw
// format lacks. The raw node stays owned by the caller and is never written
// to; reconstruction goes through the adapter's ToJSON.
type Node struct {
	// Raw is the underlying tree-format node, opaque to the engine.
	Raw any

	// Parent is the enclosing overlay node, nil for the root. Set once at
	// construction and never reassigned: mutations splice children slices
	// in place rather than moving nodes between parents.
	Parent *Node

	// Children holds the wrapped children in sibling order, nil when the
	// adapter reports no children. This slice is the engine's sole mutable
	// surface.
	Children []*Node

	adapter *types.Adapter
}

// Wrap builds the overlay for raw, recursively wrapping its children with
// the receiver node as parent. Wrapping an existing *Node is a no-op that
// returns it unchanged, so callers may hand back raw or wrapped nodes
// interchangeably. A nil adapter falls back to the {type, value} defaults.
func Wrap(raw any, parent *Node, adapter *types.Adapter) *Node {
	if n, ok := raw.(*Node); ok {
		return n
	}
	if adapter == nil {
		adapter = types.DefaultAdapter()
	}

	n := &Node{
		Raw:     raw,
		Parent:  parent,
		adapter: adapter,
	}
	if adapter.HasChildren(raw) {
		children := adapter.GetChildren(raw)
		n.Children = make([]*Node, 0, len(children))
		for _, child := range children {
			n.Children = append(n.Children, Wrap(child, n, adapter))
		}
	}
	return n
}

// Type returns the node's type string via the adapter.
func (n *Node) Type() string {
	return n.adapter.GetType(n.Raw)
}

// Text returns the node's own leaf text via the adapter. Interior nodes
// yield "" under the default adapter; use the query layer's Value for
// subtree text.
func (n *Node) Text() string {
	return n.adapter.ToString(n.Raw)
}

// HasChildren reports whether the node carries a children slice.
func (n *Node) HasChildren() bool {
	return n.Children != nil
}

// Index returns the node's position among its parent's children, or -1 for
// a node without a parent (the root, or a node already spliced out).
func (n *Node) Index() int {
	if n.Parent == nil {
		return -1
	}
	for i, sibling := range n.Parent.Children {
		if sibling == n {
			return i
		}
	}
	return -1
}

// JSON reconstructs the raw form of the node, reflecting any mutations made
// to the overlay. Interior nodes serialize their current children and pass
// the slice to the adapter's ToJSON; leaves pass nil, meaning "use the
// original value".
func (n *Node) JSON() any {
	if n.Children == nil {
		return n.adapter.ToJSON(n.Raw, nil)
	}
	children := make([]any, 0, len(n.Children))
	for _, child := range n.Children {
		children = append(children, child.JSON())
	}
	return n.adapter.ToJSON(n.Raw, children)
}

// Reduce folds fn over the node's subtree in post-order: every child
// subtree is reduced left to right before fn sees the node itself. Deeply
// nested nodes therefore reach fn before their enclosing ancestors.
func (n *Node) Reduce(fn func(acc any, n *Node) any, acc any) any {
	for _, child := range n.Children {
		acc = child.Reduce(fn, acc)
	}
	return fn(acc, n)
}
