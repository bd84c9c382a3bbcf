package detect

import (
	"fmt"

	"github.com/hatchan/smellcop/internal/cerr"
	"github.com/hatchan/smellcop/internal/config"
	ctx "github.com/hatchan/smellcop/internal/context"
)

// Strategy selects how the dispatcher treats a detector's enabled flag.
type Strategy int

const (
	// ActiveSmellsOnly filters the detector set by enabled.
	ActiveSmellsOnly Strategy = iota
	// ShowAll runs every detector regardless of enabled, but still honours
	// exceptions.
	ShowAll
)

// Dispatcher applies a Registry's detectors to every context of a tree,
// in pre-order, detectors in registration order.
type Dispatcher struct {
	registry *Registry
	resolver *config.Resolver
	strategy Strategy

	source string
}

// NewDispatcher builds a Dispatcher for one source file's analysis.
func NewDispatcher(source string, registry *Registry, resolver *config.Resolver, strategy Strategy) *Dispatcher {
	return &Dispatcher{source: source, registry: registry, resolver: resolver, strategy: strategy}
}

// Run walks root in pre-order and returns every warning produced, in a
// deterministic order given identical inputs.
func (d *Dispatcher) Run(root *ctx.Context) []Warning {
	var warnings []Warning
	root.Walk(func(c *ctx.Context) {
		for _, det := range d.registry.Detectors() {
			warnings = append(warnings, d.apply(det, c)...)
		}
	})
	return warnings
}

// apply runs a single detector against a single context: check the exclude
// list, check enabled-ness against the strategy, check AppliesTo, then run
// Examine and filter its warnings against the exception list. Any detector
// panic is converted into a DetectorFailure pseudo-warning rather than
// aborting the run.
func (d *Dispatcher) apply(det Detector, c *ctx.Context) (out []Warning) {
	defer func() {
		if r := recover(); r != nil {
			out = []Warning{d.failureWarning(det, c, fmt.Errorf("%v", r))}
		}
	}()

	name := c.FullName()
	cfg := d.resolver.Resolve(ConfigKey(det))

	if config.Matches(cfg.Exclude, name) {
		return nil
	}
	if d.strategy == ActiveSmellsOnly && !cfg.Enabled {
		return nil
	}
	if !det.AppliesTo(c) {
		return nil
	}

	found := det.Examine(c, cfg)
	if config.Matches(cfg.Exceptions, name) {
		return nil
	}

	for i := range found {
		found[i].Source = d.source
		found[i].SmellClass = det.SmellClass()
		found[i].SmellSubclass = det.SmellSubclass()
		found[i].Context = name
	}
	return found
}

func (d *Dispatcher) failureWarning(det Detector, c *ctx.Context, cause error) Warning {
	err := cerr.DetectorFailure(ConfigKey(det), c.FullName(), cause)
	return Warning{
		Source:        d.source,
		SmellClass:    "DetectorError",
		SmellSubclass: det.SmellClass(),
		Context:       c.FullName(),
		Message:       err.Message,
	}
}
