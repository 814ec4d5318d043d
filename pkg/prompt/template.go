// Package prompt provides a minimal named-variable template for building
// LLM prompts.
//
// Templates use {{name}} placeholders. Rendering substitutes each
// placeholder with the value bound to that name, verbatim and without any
// escaping. Rendering is a single pass over the template text: substituted
// values are never re-scanned, so a value that itself contains placeholder
// syntax passes through literally.
package prompt

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholderPattern matches {{name}} placeholders. Names are identifiers:
// a letter or underscore followed by letters, digits, or underscores.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([a-zA-Z_][a-zA-Z0-9_]*)\s*\}\}`)

// Template is a prompt template with named {{placeholder}} variables.
//
// A Template is immutable after construction and safe for concurrent use.
//
// Example:
//
//	tmpl, _ := prompt.New("Answer in {{language}}: {{question}}")
//	text, _ := tmpl.Render(map[string]interface{}{
//	    "language": "French",
//	    "question": "What is RAG?",
//	})
type Template struct {
	// text is the raw template text.
	text string

	// variables contains the distinct placeholder names, in order of
	// first appearance.
	variables []string
}

// New creates a Template from the given template text.
//
// Returns an error if the text is empty. A template with no placeholders is
// valid; Render then returns the text unchanged.
func New(text string) (*Template, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("prompt: template text is empty")
	}

	seen := make(map[string]bool)
	var variables []string
	for _, match := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		name := match[1]
		if !seen[name] {
			seen[name] = true
			variables = append(variables, name)
		}
	}

	return &Template{
		text:      text,
		variables: variables,
	}, nil
}

// MustNew creates a Template and panics if the text is invalid.
//
// Intended for package-level default templates whose validity is fixed at
// compile time.
func MustNew(text string) *Template {
	tmpl, err := New(text)
	if err != nil {
		panic(err)
	}
	return tmpl
}

// Text returns the raw template text.
func (t *Template) Text() string {
	return t.text
}

// Variables returns the distinct placeholder names in order of first
// appearance. The returned slice must not be modified.
func (t *Template) Variables() []string {
	return t.variables
}

// Render substitutes the bound values into the template and returns the
// resulting prompt text.
//
// Values are formatted with fmt.Sprintf("%v"): strings are inserted
// verbatim, integers render in decimal. Every placeholder in the template
// must have a binding; a missing name is an error. Extra bindings that the
// template does not reference are ignored.
func (t *Template) Render(variables map[string]interface{}) (string, error) {
	for _, name := range t.variables {
		if _, ok := variables[name]; !ok {
			return "", fmt.Errorf("prompt: missing value for template variable %q", name)
		}
	}

	rendered := placeholderPattern.ReplaceAllStringFunc(t.text, func(placeholder string) string {
		name := placeholderPattern.FindStringSubmatch(placeholder)[1]
		return fmt.Sprintf("%v", variables[name])
	})
	return rendered, nil
}
