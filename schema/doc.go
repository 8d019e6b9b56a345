// Package schema reflects Go types into JSON Schema documents for
// structured model output.
//
// The generated schemas are strict: additional properties are disallowed
// and every field is required unless its jsonschema tag says otherwise,
// which is what provider-side schema enforcement expects.
//
//	type Verdict struct {
//	    Label      string  `json:"label" jsonschema:"enum=spam,enum=ham"`
//	    Confidence float64 `json:"confidence"`
//	}
//
//	req := provider.Request{
//	    Prompt: text,
//	    Schema: schema.MustFor[Verdict](),
//	}
package schema
