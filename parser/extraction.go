package parser

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoJSON is returned when a response contains no parseable JSON.
var ErrNoJSON = errors.New("no JSON found in response")

// CodeBlock is a fenced code block.
type CodeBlock struct {
	// Language is the specifier after the opening fence ("json", "yaml", ...).
	Language string

	// Content is the code inside the block, excluding fences.
	Content string
}

var codeBlockRegex = regexp.MustCompile("(?s)```(\\w*)\\n(.*?)```")

// ExtractCodeBlocks finds all fenced code blocks in a response.
func ExtractCodeBlocks(response string) []CodeBlock {
	matches := codeBlockRegex.FindAllStringSubmatch(response, -1)
	blocks := make([]CodeBlock, 0, len(matches))
	for _, match := range matches {
		blocks = append(blocks, CodeBlock{
			Language: match[1],
			Content:  strings.TrimSpace(match[2]),
		})
	}
	return blocks
}

// ExtractJSONText returns the first JSON payload in a response as raw
// text: the whole response if it is bare JSON, otherwise the first valid
// fenced or inline JSON object or array. Returns "" when none is found.
func ExtractJSONText(response string) string {
	trimmed := strings.TrimSpace(response)
	if json.Valid([]byte(trimmed)) && trimmed != "" {
		return trimmed
	}

	for _, block := range ExtractCodeBlocks(response) {
		if block.Language != "json" && block.Language != "" {
			continue
		}
		if json.Valid([]byte(block.Content)) {
			return block.Content
		}
	}

	// Last resort: the outermost braces or brackets.
	for _, pair := range [][2]string{{"{", "}"}, {"[", "]"}} {
		start := strings.Index(trimmed, pair[0])
		end := strings.LastIndex(trimmed, pair[1])
		if start < 0 || end <= start {
			continue
		}
		if candidate := trimmed[start : end+1]; json.Valid([]byte(candidate)) {
			return candidate
		}
	}
	return ""
}

// ExtractJSON extracts and parses the first JSON object found.
// Returns nil if no valid JSON object is present.
func ExtractJSON(response string) map[string]any {
	payload := ExtractJSONText(response)
	if payload == "" {
		return nil
	}
	var data map[string]any
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil
	}
	return data
}

// ParseJSON unmarshals the first JSON payload in a response into v.
// Returns ErrNoJSON when the response holds no JSON at all.
func ParseJSON(response string, v any) error {
	payload := ExtractJSONText(response)
	if payload == "" {
		return ErrNoJSON
	}
	return json.Unmarshal([]byte(payload), v)
}

// ExtractYAML extracts and parses the first YAML block found.
// Returns nil if no YAML block parses to a mapping.
func ExtractYAML(response string) map[string]any {
	for _, block := range ExtractCodeBlocks(response) {
		if block.Language != "yaml" && block.Language != "yml" {
			continue
		}
		var data map[string]any
		if err := yaml.Unmarshal([]byte(block.Content), &data); err == nil {
			return data
		}
	}
	return nil
}
