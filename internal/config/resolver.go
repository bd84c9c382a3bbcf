package config

// Resolver folds a sequence of Layers, lowest precedence first, into the
// effective configuration for a detector. The conventional order is
// built-in defaults, then project-wide config, then per-directory config,
// then context-local inline annotations.
type Resolver struct {
	layers []Layer
}

// NewResolver builds a Resolver from layers in increasing precedence order.
func NewResolver(layers ...Layer) *Resolver {
	return &Resolver{layers: layers}
}

// WithLayer returns a new Resolver with an additional, highest-precedence
// layer appended. It does not mutate the receiver, so a project/directory
// Resolver can be reused as the base for many per-context inline overrides.
func (r *Resolver) WithLayer(layer Layer) *Resolver {
	next := make([]Layer, len(r.layers), len(r.layers)+1)
	copy(next, r.layers)
	next = append(next, layer)
	return &Resolver{layers: next}
}

// Resolve merges every layer's settings for one detector. Scalars (Enabled)
// are overwritten by the last layer that sets them; sequences (Exclude,
// Exceptions) are concatenated across layers and deduplicated, preserving
// first-seen order; Params are shallow-merged, last write wins.
func (r *Resolver) Resolve(detector string) DetectorConfig {
	cfg := DetectorConfig{Enabled: true, Params: map[string]any{}}

	seenExclude := map[string]bool{}
	seenExceptions := map[string]bool{}

	for _, layer := range r.layers {
		raw, ok := layer[detector]
		if !ok {
			continue
		}
		if raw.enabled != nil {
			cfg.Enabled = *raw.enabled
		}
		for _, pattern := range raw.exclude {
			if !seenExclude[pattern] {
				seenExclude[pattern] = true
				cfg.Exclude = append(cfg.Exclude, pattern)
			}
		}
		for _, pattern := range raw.exceptions {
			if !seenExceptions[pattern] {
				seenExceptions[pattern] = true
				cfg.Exceptions = append(cfg.Exceptions, pattern)
			}
		}
		for k, v := range raw.params {
			cfg.Params[k] = v
		}
	}

	return cfg
}

// Applies reports whether a detector's resolved configuration permits it to
// run against the given context full name: enabled, not excluded outright,
// and not listed as an exception for that context.
func Applies(cfg DetectorConfig, contextFullName string) bool {
	if !cfg.Enabled {
		return false
	}
	if Matches(cfg.Exclude, contextFullName) {
		return false
	}
	if Matches(cfg.Exceptions, contextFullName) {
		return false
	}
	return true
}
