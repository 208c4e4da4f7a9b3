package query

import (
	"fmt"
	"io"
	"reflect"

	"github.com/sirupsen/logrus"

	"github.com/salesforce-ux/query-ast/pkg/ast"
	"github.com/salesforce-ux/query-ast/pkg/types"
)

// Config controls session construction. The zero value (or a nil pointer)
// uses the default adapter for {type, value} shaped nodes and keeps the
// engine silent.
type Config struct {
	// Per-function adapter overrides, merged over the defaults. Nil fields
	// keep the default behavior.
	HasChildren func(raw any) bool
	GetChildren func(raw any) []any
	GetType     func(raw any) string
	ToJSON      func(raw any, children []any) any
	ToString    func(raw any) string

	// Adapter replaces the whole contract verbatim, skipping the defaults
	// merge. Every field must be set; a nil field fails construction with
	// an invalid-config error naming the option. Takes precedence over the
	// per-function overrides above.
	Adapter *types.Adapter

	// Logger receives debug-level build and mutation events. Nil discards
	// all output.
	Logger logrus.FieldLogger
}

// Session owns the overlay built from one raw tree root and hands out
// Selections over it. Sessions are not safe for concurrent use: mutations
// splice shared children slices in place.
type Session struct {
	adapter *types.Adapter
	root    *ast.Node
	log     logrus.FieldLogger
}

// New validates the root and configuration, builds the overlay once, and
// returns a session scoped to it.
//
// The root must be a plain associative structure (a map); anything else
// fails with types.ErrInvalidInput. Adapter validation failures wrap
// types.ErrInvalidConfig and name the offending option.
func New(root any, cfg *Config) (*Session, error) {
	if !isPlainObject(root) {
		return nil, types.ErrInvalidInput
	}

	adapter := resolveAdapter(cfg)
	if err := adapter.Validate(); err != nil {
		return nil, err
	}

	log := discardLogger()
	if cfg != nil && cfg.Logger != nil {
		log = cfg.Logger
	}

	s := &Session{adapter: adapter, log: log}
	s.root = ast.Wrap(root, nil, adapter)
	s.log.WithField("nodes", s.countNodes()).Debug("query-ast: overlay built")
	return s, nil
}

// Query returns a Selection scoped to its argument: no argument (or nil)
// selects the whole-tree root; a raw node, *ast.Node, or slice of either
// selects exactly those nodes, auto-wrapped when raw. Unsupported argument
// kinds fail with types.ErrInvalidArgument.
func (s *Session) Query(args ...any) (*Selection, error) {
	if len(args) > 1 {
		return nil, types.NewArgumentError(fmt.Sprintf("query accepts at most one argument, got %d", len(args)))
	}
	if len(args) == 0 || args[0] == nil {
		return s.Root(), nil
	}

	nodes, err := s.collect(args[0])
	if err != nil {
		return nil, err
	}
	return &Selection{nodes: nodes, sess: s}, nil
}

// Root returns the whole-tree Selection.
func (s *Session) Root() *Selection {
	return &Selection{nodes: []*ast.Node{s.root}, sess: s}
}

// collect normalizes a query argument into overlay nodes.
func (s *Session) collect(arg any) ([]*ast.Node, error) {
	switch v := arg.(type) {
	case *ast.Node:
		return []*ast.Node{v}, nil
	case []*ast.Node:
		nodes := make([]*ast.Node, len(v))
		copy(nodes, v)
		return nodes, nil
	case []any:
		nodes := make([]*ast.Node, 0, len(v))
		for _, elem := range v {
			wrapped, err := s.collect(elem)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, wrapped...)
		}
		return nodes, nil
	}

	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Map:
		return []*ast.Node{ast.Wrap(arg, nil, s.adapter)}, nil
	case reflect.Slice:
		nodes := make([]*ast.Node, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			wrapped, err := s.collect(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, wrapped...)
		}
		return nodes, nil
	default:
		return nil, types.NewArgumentError(fmt.Sprintf("cannot select %T: expected a node or a sequence of nodes", arg))
	}
}

func (s *Session) countNodes() int {
	count, _ := s.root.Reduce(func(acc any, _ *ast.Node) any {
		return acc.(int) + 1
	}, 0).(int)
	return count
}

// resolveAdapter picks the full replacement adapter when configured, else
// merges the per-function overrides over the defaults.
func resolveAdapter(cfg *Config) *types.Adapter {
	if cfg == nil {
		return types.DefaultAdapter()
	}
	if cfg.Adapter != nil {
		return cfg.Adapter
	}
	overrides := &types.Adapter{
		HasChildren: cfg.HasChildren,
		GetChildren: cfg.GetChildren,
		GetType:     cfg.GetType,
		ToJSON:      cfg.ToJSON,
		ToString:    cfg.ToString,
	}
	return overrides.Resolve()
}

// isPlainObject reports whether v is a plain associative structure. Any map
// kind qualifies so custom adapters can use their own key/value types.
func isPlainObject(v any) bool {
	if v == nil {
		return false
	}
	return reflect.ValueOf(v).Kind() == reflect.Map
}

func discardLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
