package types

// -----------------------------------------------------------------------------
// Adapter Contract
// -----------------------------------------------------------------------------

// Adapter is the set of functions that teach the engine how to read and
// rebuild nodes of one concrete tree format. Raw nodes are opaque to the
// engine; only these five functions ever touch them.
//
// GetChildren is only called for nodes where HasChildren reported true.
// ToJSON receives the (possibly mutated) children of a node, already
// serialized back to raw form, or nil to signal "use the original value".
type Adapter struct {
	HasChildren func(raw any) bool
	GetChildren func(raw any) []any
	GetType     func(raw any) string
	ToJSON      func(raw any, children []any) any
	ToString    func(raw any) string
}

// DefaultAdapter returns the adapter for the common node shape
//
//	{ "type": <string>, "value": <[]any children or leaf string> }
//
// where a slice value marks an interior node and anything else a leaf.
func DefaultAdapter() *Adapter {
	return &Adapter{
		HasChildren: func(raw any) bool {
			_, ok := childSlice(raw)
			return ok
		},
		GetChildren: func(raw any) []any {
			children, _ := childSlice(raw)
			return children
		},
		GetType: func(raw any) string {
			if m, ok := raw.(map[string]any); ok {
				if t, ok := m["type"].(string); ok {
					return t
				}
			}
			return ""
		},
		ToJSON: func(raw any, children []any) any {
			m, ok := raw.(map[string]any)
			if !ok {
				return raw
			}
			out := make(map[string]any, len(m))
			for k, v := range m {
				out[k] = v
			}
			if children != nil {
				out["value"] = children
			}
			return out
		},
		ToString: func(raw any) string {
			if m, ok := raw.(map[string]any); ok {
				if s, ok := m["value"].(string); ok {
					return s
				}
			}
			return ""
		},
	}
}

// childSlice extracts the child sequence from a default-shape node.
func childSlice(raw any) ([]any, bool) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, false
	}
	children, ok := m["value"].([]any)
	return children, ok
}

// Resolve merges overrides into the default adapter. A nil receiver or nil
// fields fall back to the defaults.
func (a *Adapter) Resolve() *Adapter {
	resolved := DefaultAdapter()
	if a == nil {
		return resolved
	}
	if a.HasChildren != nil {
		resolved.HasChildren = a.HasChildren
	}
	if a.GetChildren != nil {
		resolved.GetChildren = a.GetChildren
	}
	if a.GetType != nil {
		resolved.GetType = a.GetType
	}
	if a.ToJSON != nil {
		resolved.ToJSON = a.ToJSON
	}
	if a.ToString != nil {
		resolved.ToString = a.ToString
	}
	return resolved
}

// Validate checks that every resolved option is callable. It reports the
// first missing option by name, matching the option field in configuration.
func (a *Adapter) Validate() error {
	switch {
	case a == nil:
		return NewConfigError("adapter")
	case a.HasChildren == nil:
		return NewConfigError("hasChildren")
	case a.GetChildren == nil:
		return NewConfigError("getChildren")
	case a.GetType == nil:
		return NewConfigError("getType")
	case a.ToJSON == nil:
		return NewConfigError("toJSON")
	case a.ToString == nil:
		return NewConfigError("toString")
	}
	return nil
}
