package detect

import (
	"github.com/hatchan/smellcop/internal/config"
	ctx "github.com/hatchan/smellcop/internal/context"
)

// Detector is the contract a concrete smell detector satisfies.
// AppliesTo and Examine are pure queries: given the same context and
// configuration they always return the same answer.
type Detector interface {
	SmellClass() string
	SmellSubclass() string
	AppliesTo(c *ctx.Context) bool
	Examine(c *ctx.Context, cfg config.DetectorConfig) []Warning
}

// ConfigKey is the resolver lookup key for a detector: "Class/Subclass"
// when a subclass is advertised, else bare "Class", matching the
// flattening ParseLayer applies to nested configuration documents.
func ConfigKey(d Detector) string {
	if d.SmellSubclass() == "" {
		return d.SmellClass()
	}
	return d.SmellClass() + "/" + d.SmellSubclass()
}

// Registry is an explicit, ordered list of detectors handed to the
// Examiner at construction — deliberately not a process-wide mutable
// collection, so two Examiners can run concurrently with different
// detector sets.
type Registry struct {
	detectors []Detector
}

// NewRegistry builds a Registry in registration order; detectors are
// applied to each context in this order.
func NewRegistry(detectors ...Detector) *Registry {
	return &Registry{detectors: append([]Detector(nil), detectors...)}
}

func (r *Registry) Detectors() []Detector { return r.detectors }
