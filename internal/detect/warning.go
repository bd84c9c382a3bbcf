// Package detect implements the detector framework and dispatcher: the
// contract concrete smell detectors satisfy, the traversal that applies
// them to a context tree, and the five detectors that exercise it end to
// end.
package detect

import (
	"reflect"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Warning is an immutable record describing one detected smell. Two
// warnings are equal iff all fields are equal.
type Warning struct {
	Source        string
	SmellClass    string
	SmellSubclass string
	Context       string
	Message       string
	Parameters    map[string]any
	Lines         []int
}

// Equal reports field-for-field equality.
func (w Warning) Equal(other Warning) bool {
	return w.Source == other.Source &&
		w.SmellClass == other.SmellClass &&
		w.SmellSubclass == other.SmellSubclass &&
		w.Context == other.Context &&
		w.Message == other.Message &&
		reflect.DeepEqual(w.Lines, other.Lines) &&
		reflect.DeepEqual(w.Parameters, other.Parameters)
}

// MarshalJSON renders the flat external record shape: source, smell_class,
// smell_subclass, context, message, lines, parameters.
// Built with sjson rather than the standard encoding/json struct path so
// Parameters (a string -> scalar bag of arbitrary detector-specific shape)
// is spliced in as raw JSON without an intermediate map[string]any replica.
func (w Warning) MarshalJSON() ([]byte, error) {
	doc := "{}"
	var err error
	for _, set := range []struct {
		path string
		val  any
	}{
		{"source", w.Source},
		{"smell_class", w.SmellClass},
		{"smell_subclass", w.SmellSubclass},
		{"context", w.Context},
		{"message", w.Message},
		{"lines", w.Lines},
	} {
		doc, err = sjson.Set(doc, set.path, set.val)
		if err != nil {
			return nil, err
		}
	}
	for k, v := range w.Parameters {
		doc, err = sjson.Set(doc, "parameters."+k, v)
		if err != nil {
			return nil, err
		}
	}
	return []byte(doc), nil
}

// paramString reads a single string-valued parameter back out of a warning
// rendered to JSON. Nothing in the module calls it.
func paramString(rawJSON, key string) string {
	return gjson.Get(rawJSON, "parameters."+key).String()
}
