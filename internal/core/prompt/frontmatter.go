package prompt

import (
	"bufio"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter holds metadata parsed from a prompt file's YAML front matter.
// All fields are best-effort: missing or malformed front matter produces
// zero values. The body is never interpreted beyond this header.
type Frontmatter struct {
	Description  string `yaml:"description"`
	ArgumentHint string `yaml:"argument-hint"`
	AllowedTools string `yaml:"allowed-tools"`
}

// ParseFrontmatter extracts YAML front matter from prompt file content.
// Front matter must be delimited by "---" on its own line at the start of
// the file. Returns zero-value Frontmatter if no valid front matter exists.
func ParseFrontmatter(content string) Frontmatter {
	scanner := bufio.NewScanner(strings.NewReader(content))

	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "---" {
		return Frontmatter{}
	}

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "---" {
			break
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return Frontmatter{}
	}

	var fm Frontmatter
	_ = yaml.Unmarshal([]byte(strings.Join(lines, "\n")), &fm)

	return fm
}

// Render serializes the front matter header followed by the given body,
// producing the canonical prompt file content.
func (fm Frontmatter) Render(body string) string {
	var b strings.Builder
	b.WriteString("---\n")
	if fm.Description != "" {
		b.WriteString(fmt.Sprintf("description: %s\n", yamlScalar(fm.Description)))
	}
	if fm.ArgumentHint != "" {
		b.WriteString(fmt.Sprintf("argument-hint: %s\n", yamlScalar(fm.ArgumentHint)))
	}
	if fm.AllowedTools != "" {
		b.WriteString(fmt.Sprintf("allowed-tools: %s\n", yamlScalar(fm.AllowedTools)))
	}
	b.WriteString("---\n\n")
	b.WriteString(strings.TrimLeft(body, "\n"))
	if !strings.HasSuffix(b.String(), "\n") {
		b.WriteString("\n")
	}
	return b.String()
}

// yamlScalar quotes a value when the plain form would be misparsed.
func yamlScalar(s string) string {
	if strings.ContainsAny(s, ":#{}[]&*!|>'\"%@`") || strings.HasPrefix(s, " ") {
		out, err := yaml.Marshal(s)
		if err == nil {
			return strings.TrimSpace(string(out))
		}
	}
	return s
}
