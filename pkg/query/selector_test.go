package query_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/salesforce-ux/query-ast/pkg/ast"
)

func TestSelector_ExactString(t *testing.T) {
	sel := mustSelection(t, declTree())

	require.Equal(t, 3, sel.Find("number").Length())
	require.Equal(t, 0, sel.Find("num").Length(), "string selectors match exactly, not by prefix")
}

func TestSelector_Pattern(t *testing.T) {
	sel := mustSelection(t, declTree())

	require.Equal(t, 3, sel.Find(regexp.MustCompile(`^num`)).Length())
	require.Equal(t, 5, sel.Find(regexp.MustCompile(`number|space`)).Length())
}

func TestSelector_Predicate(t *testing.T) {
	sel := mustSelection(t, declTree())

	odd := sel.Find(func(n *ast.Node) bool {
		return n.Type() == "number" && n.Text() != "2"
	})
	require.Equal(t, 2, odd.Length())
	require.Equal(t, "13", odd.Value())
}

func TestSelector_AbsentMatchesEverything(t *testing.T) {
	sel := mustSelection(t, declTree())

	// stylesheet > declaration > value > 5 leaves: 7 descendants of the root.
	require.Equal(t, 7, sel.Find().Length())
}

func TestSelector_UnrecognizedKindDegradesToMatchAll(t *testing.T) {
	sel := mustSelection(t, declTree())

	require.Equal(t, sel.Find().Length(), sel.Find(42).Length())
	require.Equal(t, sel.Find().Length(), sel.Find(struct{}{}).Length())
}

func TestSelector_PartitionsNodeSet(t *testing.T) {
	// filter(sel) and filter(!sel) must exactly partition the node set for
	// string and pattern selectors.
	sel := mustSelection(t, ruleTree())
	all := sel.Find()

	cases := []struct {
		name     string
		selector any
		negation func(*ast.Node) bool
	}{
		{"string", "rule", func(n *ast.Node) bool { return n.Type() != "rule" }},
		{"pattern", regexp.MustCompile(`^s`), func(n *ast.Node) bool {
			return !regexp.MustCompile(`^s`).MatchString(n.Type())
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			matched := all.Filter(tc.selector)
			rest := all.Filter(tc.negation)
			require.Equal(t, all.Length(), matched.Length()+rest.Length())

			seen := make(map[*ast.Node]bool)
			for _, n := range matched.Nodes() {
				seen[n] = true
			}
			for _, n := range rest.Nodes() {
				require.False(t, seen[n], "complement selections must be disjoint")
			}
		})
	}
}
