package config

import "testing"

func TestResolveMergesLayersByPrecedence(t *testing.T) {
	defaults, err := ParseLayer([]byte(`
UtilityFunction:
  enabled: true
  exclude: ["*Test"]
`))
	if err != nil {
		t.Fatalf("ParseLayer(defaults): %v", err)
	}

	project, err := ParseLayer([]byte(`
UtilityFunction:
  exclude: ["*Spec", "*Test"]
  max_params: 5
`))
	if err != nil {
		t.Fatalf("ParseLayer(project): %v", err)
	}

	inline, err := ParseLayer([]byte(`
UtilityFunction:
  enabled: false
`))
	if err != nil {
		t.Fatalf("ParseLayer(inline): %v", err)
	}

	r := NewResolver(defaults, project).WithLayer(inline)
	cfg := r.Resolve("UtilityFunction")

	if cfg.Enabled {
		t.Error("expected the inline layer to disable the detector")
	}
	if got, want := cfg.Exclude, []string{"*Test", "*Spec"}; !equalStrings(got, want) {
		t.Errorf("Exclude = %v, want %v (first-seen order, deduplicated)", got, want)
	}
	if cfg.Params["max_params"] != 5 {
		t.Errorf("Params[max_params] = %v, want 5", cfg.Params["max_params"])
	}
}

func TestResolveMissingDetectorUsesBuiltInDefault(t *testing.T) {
	r := NewResolver(Layer{})
	cfg := r.Resolve("NestedControlFlow")
	if !cfg.Enabled {
		t.Error("expected a detector absent from every layer to default to enabled")
	}
	if len(cfg.Exclude) != 0 || len(cfg.Exceptions) != 0 {
		t.Error("expected no exclude/exceptions when no layer mentions the detector")
	}
}

func TestParseLayerFlattensSubclasses(t *testing.T) {
	layer, err := ParseLayer([]byte(`
UncommunicativeName:
  Method:
    enabled: false
`))
	if err != nil {
		t.Fatalf("ParseLayer: %v", err)
	}
	if _, ok := layer["UncommunicativeName/Method"]; !ok {
		t.Fatalf("expected key %q, got keys %v", "UncommunicativeName/Method", keys(layer))
	}
}

func TestMatchesGlob(t *testing.T) {
	if !Matches([]string{"Foo*"}, "FooBar") {
		t.Error("expected Foo* to match FooBar")
	}
	if Matches([]string{"Foo*"}, "BarFoo") {
		t.Error("did not expect Foo* to match BarFoo")
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func keys(l Layer) []string {
	out := make([]string, 0, len(l))
	for k := range l {
		out = append(out, k)
	}
	return out
}
