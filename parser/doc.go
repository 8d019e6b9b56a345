// Package parser extracts JSON and YAML payloads from model responses.
//
// Models asked for structured output through prompt instructions rarely
// return bare JSON: payloads arrive wrapped in code fences, preceded by
// prose, or both. This package digs the payload out.
//
//	var v Verdict
//	if err := parser.ParseJSON(response, &v); err != nil {
//	    // no JSON found, or it did not match
//	}
//
// Lower-level helpers return the raw payload text or a generic map when
// the target type is not known up front.
package parser
