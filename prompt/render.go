package prompt

import (
	"fmt"
	"regexp"
	"strings"
	"text/template"
)

// Render executes a template with the given variables. Handlebars-style
// syntax is converted to Go template syntax before execution, so both
// {{name}} and {{.name}} work.
func Render(templateStr string, variables map[string]any) (string, error) {
	if templateStr == "" {
		return "", ErrEmpty
	}

	converted := convertSyntax(templateStr)

	tmpl, err := template.New("prompt").Option("missingkey=zero").Parse(converted)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrParse, err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, variables); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecute, err)
	}
	return buf.String(), nil
}

// goTemplateKeywords are reserved words that must not be rewritten as
// variable references.
var goTemplateKeywords = map[string]bool{
	"else":     true,
	"end":      true,
	"if":       true,
	"range":    true,
	"with":     true,
	"define":   true,
	"template": true,
	"block":    true,
}

var (
	ifPattern   = regexp.MustCompile(`\{\{#if\s+(\w+)\}\}`)
	eachPattern = regexp.MustCompile(`\{\{#each\s+(\w+)\}\}`)
	varPattern  = regexp.MustCompile(`\{\{([a-zA-Z_]\w*)\}\}`)
)

// convertSyntax converts Handlebars-like syntax to Go template syntax:
//
//   - {{variable}}              -> {{.variable}}
//   - {{#if x}}...{{/if}}       -> {{if .x}}...{{end}}
//   - {{#each items}}...{{/each}} -> {{range .items}}...{{end}}
func convertSyntax(input string) string {
	result := ifPattern.ReplaceAllString(input, "{{if .$1}}")
	result = strings.ReplaceAll(result, "{{/if}}", "{{end}}")

	result = eachPattern.ReplaceAllString(result, "{{range .$1}}")
	result = strings.ReplaceAll(result, "{{/each}}", "{{end}}")

	return varPattern.ReplaceAllStringFunc(result, func(match string) string {
		name := match[2 : len(match)-2]
		if goTemplateKeywords[name] {
			return match
		}
		return "{{." + name + "}}"
	})
}
