package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// For reflects T into a JSON Schema document. Fields are required by
// default, additional properties are disallowed, and definitions are
// inlined rather than referenced so the document stands alone.
func For[T any]() (json.RawMessage, error) {
	r := &jsonschema.Reflector{
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: false,
		ExpandedStruct:             true,
	}

	var v T
	s := r.Reflect(&v)
	s.Version = ""

	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("schema: marshal %T: %w", v, err)
	}
	return raw, nil
}

// MustFor is For, panicking on error. Reflection over a plain struct
// type does not fail in practice, so this is the common entry point.
func MustFor[T any]() json.RawMessage {
	raw, err := For[T]()
	if err != nil {
		panic(err)
	}
	return raw
}
