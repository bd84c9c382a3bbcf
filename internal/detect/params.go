package detect

import "github.com/hatchan/smellcop/internal/config"

// intParam reads a detector-specific numeric threshold out of the resolved
// configuration's Params bag, falling back to a default when absent or of
// an unexpected shape. YAML decoders hand back int, int64 or float64
// depending on how the scalar was written, so all three are accepted.
func intParam(cfg config.DetectorConfig, key string, fallback int) int {
	v, ok := cfg.Params[key]
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return fallback
	}
}

// stringSetParam reads a detector-specific deny/allow list out of Params,
// falling back to a default set when absent.
func stringSetParam(cfg config.DetectorConfig, key string, fallback []string) map[string]bool {
	v, ok := cfg.Params[key]
	if !ok {
		v = toAnySlice(fallback)
	}
	list, ok := v.([]any)
	if !ok {
		return setOf(fallback)
	}
	out := make(map[string]bool, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out[s] = true
		}
	}
	return out
}

func toAnySlice(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

func setOf(in []string) map[string]bool {
	out := make(map[string]bool, len(in))
	for _, s := range in {
		out[s] = true
	}
	return out
}
