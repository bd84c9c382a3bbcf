// Package examiner is the façade over the classifier, context builder and
// detector dispatcher: given one source's AST and a resolved configuration,
// it runs the full pipeline and exposes the result.
package examiner

import (
	"sort"

	"github.com/maruel/natural"

	"github.com/hatchan/smellcop/internal/ast"
	"github.com/hatchan/smellcop/internal/cerr"
	"github.com/hatchan/smellcop/internal/config"
	ctx "github.com/hatchan/smellcop/internal/context"
	"github.com/hatchan/smellcop/internal/detect"
)

// Option configures an Examiner at construction, using the
// functional-options pattern.
type Option func(*settings)

type settings struct {
	registry *detect.Registry
	strategy detect.Strategy
}

// WithDetectors overrides the default detector registry.
func WithDetectors(detectors ...detect.Detector) Option {
	return func(s *settings) { s.registry = detect.NewRegistry(detectors...) }
}

// WithStrategy overrides the default ActiveSmellsOnly strategy.
func WithStrategy(strategy detect.Strategy) Option {
	return func(s *settings) { s.strategy = strategy }
}

// DefaultRegistry is the built-in detector set.
func DefaultRegistry() *detect.Registry {
	return detect.NewRegistry(
		detect.UtilityFunction{},
		detect.LongParameterList{},
		detect.NestedControlFlow{},
		detect.UncommunicativeMethodName{},
		detect.FeatureEnvy{},
	)
}

// Examiner is the result of examining one source.
type Examiner struct {
	source string
	smells []detect.Warning
}

// Examine classifies raw, builds its context tree, resolves configuration
// through resolver, and runs the detector pipeline, returning either the
// Examiner or a fatal *cerr.Error (an UnknownNodeRole aborts analysis of
// this file only).
func Examine(source string, raw *ast.RawNode, sourceText string, resolver *config.Resolver, opts ...Option) (*Examiner, error) {
	s := &settings{registry: DefaultRegistry(), strategy: detect.ActiveSmellsOnly}
	for _, opt := range opts {
		opt(s)
	}

	program, err := ast.Classify(raw)
	if err != nil {
		if unknown, ok := err.(*ast.UnknownNodeRole); ok {
			return nil, cerr.FromUnknownNodeRole(sourceText, source, unknown)
		}
		return nil, err
	}

	tree := ctx.Build(program)
	dispatcher := detect.NewDispatcher(source, s.registry, resolver, s.strategy)
	warnings := dispatcher.Run(tree)

	return &Examiner{source: source, smells: warnings}, nil
}

// Smells returns the ordered warning sequence.
func (e *Examiner) Smells() []detect.Warning { return e.smells }

// Smelly reports whether any smell was found.
func (e *Examiner) Smelly() bool { return len(e.smells) > 0 }

// Description is the source name.
func (e *Examiner) Description() string { return e.source }

// SortedByContext returns a copy of Smells sorted by context full name in
// natural order (digits compare numerically), for reporters that want a
// stable human-facing ordering; not part of the core dispatcher contract —
// a reporter opts into this sort explicitly, the dispatcher's own output
// order is already deterministic on its own.
func (e *Examiner) SortedByContext() []detect.Warning {
	out := append([]detect.Warning(nil), e.smells...)
	sort.SliceStable(out, func(i, j int) bool {
		return natural.Less(out[i].Context, out[j].Context)
	})
	return out
}
