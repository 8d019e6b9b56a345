package prompt

import "encoding/json"

// StructuredInstruction composes the instruction block appended to a
// system prompt when a provider cannot enforce JSON-schema output
// natively. The model is asked for bare JSON so the response can be
// parsed without stripping prose or code fences first.
func StructuredInstruction(schema json.RawMessage) string {
	return "Respond with a single JSON object that conforms to the JSON Schema below. " +
		"Output only the JSON object, with no surrounding prose, markdown, or code fences.\n\n" +
		"JSON Schema:\n" + string(schema)
}

// WithStructuredInstruction appends the structured-output instruction to
// an existing system prompt, separating the two with a blank line. An
// empty system prompt yields just the instruction.
func WithStructuredInstruction(system string, schema json.RawMessage) string {
	instruction := StructuredInstruction(schema)
	if system == "" {
		return instruction
	}
	return system + "\n\n" + instruction
}
