package query

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

// dumpConfig keeps Dump output stable across runs: sorted map keys, no
// pointer addresses.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Dump pretty-prints the selection's reconstructed JSON form to w. Intended
// for debugging adapter round-trip issues.
//
// Example:
//
//	s, _ := query.New(tree, nil)
//	sel, _ := s.Query()
//	sel.Find("rule").Dump(os.Stderr)
func (s *Selection) Dump(w io.Writer) error {
	_, err := io.WriteString(w, dumpConfig.Sdump(s.Get()))
	return err
}
