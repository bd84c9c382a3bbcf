// Package config resolves the layered smell configuration (defaults ⊕
// project ⊕ per-directory ⊕ inline annotations) into a per-(detector,
// context) decision: enabled?, parameters, exceptions.
package config

import (
	"path"

	"github.com/goccy/go-yaml"

	"github.com/hatchan/smellcop/internal/cerr"
)

// DetectorConfig is the effective, resolved configuration for one detector.
type DetectorConfig struct {
	Enabled    bool
	Exclude    []string
	Exceptions []string
	Params     map[string]any
}

// Matches reports whether any of the given glob-style patterns matches the
// context's full name. Patterns use the standard library's path.Match
// syntax ('*', '?', character classes) — no ecosystem glob library in the
// corpus targets "match a dotted/namespaced identifier against a small
// pattern list" specifically enough to prefer over this well-understood
// stdlib primitive; see DESIGN.md.
func Matches(patterns []string, name string) bool {
	for _, p := range patterns {
		if ok, err := path.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}

// rawLayer is one configuration source's view of a single detector's
// settings, prior to merging with the other sources.
type rawLayer struct {
	enabled    *bool
	exclude    []string
	exceptions []string
	params     map[string]any
}

// Layer maps detector smell_class names (optionally "Class/Subclass") to
// their raw settings from one configuration source.
type Layer map[string]rawLayer

var reservedKeys = map[string]bool{"enabled": true, "exclude": true, "exceptions": true}

// ParseLayer decodes one hierarchical configuration document: smell_class
// -> smell_subclass -> { key: value }. Subclass maps are flattened into
// "Class/Subclass" detector keys.
func ParseLayer(data []byte) (Layer, error) {
	var doc map[string]map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, cerr.BadConfiguration("failed to parse configuration document", err)
	}

	layer := make(Layer, len(doc))
	for class, body := range doc {
		if isLeafSettings(body) {
			layer[class] = rawLayerFromMap(body)
			continue
		}
		for subclass, sub := range body {
			subMap, ok := sub.(map[string]any)
			if !ok {
				continue
			}
			layer[class+"/"+subclass] = rawLayerFromMap(subMap)
		}
	}
	return layer, nil
}

// isLeafSettings distinguishes a detector's own settings map (keys are
// reserved or scalar-valued) from a further nesting of subclass maps.
func isLeafSettings(body map[string]any) bool {
	for k, v := range body {
		if reservedKeys[k] {
			return true
		}
		if _, nested := v.(map[string]any); !nested {
			return true
		}
	}
	return len(body) == 0
}

func rawLayerFromMap(m map[string]any) rawLayer {
	raw := rawLayer{params: map[string]any{}}
	for k, v := range m {
		switch k {
		case "enabled":
			if b, ok := v.(bool); ok {
				raw.enabled = &b
			}
		case "exclude":
			raw.exclude = toStringSlice(v)
		case "exceptions":
			raw.exceptions = toStringSlice(v)
		default:
			raw.params[k] = v
		}
	}
	return raw
}

func toStringSlice(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// LoadLayer reads and parses one YAML configuration file.
func LoadLayer(data []byte) (Layer, error) {
	return ParseLayer(data)
}
