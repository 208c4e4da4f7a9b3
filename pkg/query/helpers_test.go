package query_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/salesforce-ux/query-ast/pkg/ast"
	"github.com/salesforce-ux/query-ast/pkg/query"
)

// --- fixture builders (CSS-flavored {type, value} trees) ---

func n(typ string, children ...any) map[string]any {
	if children == nil {
		children = []any{}
	}
	return map[string]any{"type": typ, "value": children}
}

func leaf(typ, text string) map[string]any {
	return map[string]any{"type": typ, "value": text}
}

func space() map[string]any {
	return leaf("space", " ")
}

// rule builds rule > (selector > class > identifier, block).
func rule(class string) map[string]any {
	return n("rule",
		n("selector", n("class", leaf("identifier", class))),
		n("block"),
	)
}

// ruleTree is three sibling rules separated by whitespace:
// .r { } .g { } .b { }
func ruleTree() map[string]any {
	return n("stylesheet", rule("r"), space(), rule("g"), space(), rule("b"))
}

// nestedTree nests .r > .g > .b and appends siblings .c .m .y .k.
func nestedTree() map[string]any {
	inner := n("rule",
		n("selector", n("class", leaf("identifier", "r"))),
		n("block", n("rule",
			n("selector", n("class", leaf("identifier", "g"))),
			n("block", rule("b")),
		)),
	)
	return n("stylesheet", inner, rule("c"), rule("m"), rule("y"), rule("k"))
}

// declTree encodes $border: 1px 2px 3px; as
// declaration > value > [number space number space number].
func declTree() map[string]any {
	return n("stylesheet", n("declaration", n("value",
		leaf("number", "1"),
		space(),
		leaf("number", "2"),
		space(),
		leaf("number", "3"),
	)))
}

// --- session helpers ---

func mustSelection(t *testing.T, tree map[string]any) *query.Selection {
	t.Helper()
	s, err := query.New(tree, nil)
	require.NoError(t, err)
	sel, err := s.Query()
	require.NoError(t, err)
	return sel
}

// requireConsistent asserts the overlay invariant below n: every child's
// parent pointer and sibling index agree with the children slice holding it.
func requireConsistent(t *testing.T, node *ast.Node) {
	t.Helper()
	for i, child := range node.Children {
		require.Same(t, node, child.Parent)
		require.Equal(t, i, child.Index())
		requireConsistent(t, child)
	}
}

// subtreeText folds a single node's subtree text, post-order.
func subtreeText(n *ast.Node) string {
	text, _ := n.Reduce(func(acc any, cur *ast.Node) any {
		return acc.(string) + cur.Text()
	}, "").(string)
	return text
}

func typesOf(sel *query.Selection) []string {
	var out []string
	for _, node := range sel.Nodes() {
		out = append(out, node.Type())
	}
	return out
}
