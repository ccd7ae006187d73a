// Package tmpl provides template rendering for host command lines and
// generated documents.
package tmpl

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// shellQuote returns a shell-safe quoted string. It wraps the string in
// single quotes and escapes any existing single quotes using the '\''
// technique.
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	escaped := strings.ReplaceAll(s, "'", `'\''`)
	return "'" + escaped + "'"
}

var funcs = template.FuncMap{
	"shq":   shellQuote,
	"join":  strings.Join,
	"trim":  strings.TrimSpace,
	"lower": strings.ToLower,
}

// Render executes a Go template string with the given data. Referencing an
// undefined key is an error rather than a silent blank.
//
// Available template functions:
//   - shq: shell-quote a string for safe use in shell commands
//   - join: join a string slice with a separator
//   - trim: trim surrounding whitespace
//   - lower: lowercase a string
func Render(tmpl string, data any) (string, error) {
	t, err := template.New("").Funcs(funcs).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}

// Valid reports whether a template string parses. Used by config validation
// so a bad host command fails at startup rather than at handoff time.
func Valid(tmpl string) error {
	if _, err := template.New("").Funcs(funcs).Parse(tmpl); err != nil {
		return fmt.Errorf("parse template: %w", err)
	}
	return nil
}
