package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFrontmatter(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Frontmatter
	}{
		{
			name: "full header",
			content: `---
description: Add auth middleware
argument-hint: "[service name]"
allowed-tools: Bash(git:*), Read, Edit
---

# Task
Do the thing.
`,
			want: Frontmatter{
				Description:  "Add auth middleware",
				ArgumentHint: "[service name]",
				AllowedTools: "Bash(git:*), Read, Edit",
			},
		},
		{
			name:    "no front matter",
			content: "# Just a heading\n",
			want:    Frontmatter{},
		},
		{
			name:    "unterminated header yields best effort",
			content: "---\ndescription: dangling\n",
			want:    Frontmatter{Description: "dangling"},
		},
		{
			name:    "empty header",
			content: "---\n---\nbody\n",
			want:    Frontmatter{},
		},
		{
			name:    "malformed yaml is ignored",
			content: "---\n\t:::not yaml\n---\nbody\n",
			want:    Frontmatter{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFrontmatter(tt.content))
		})
	}
}

func TestFrontmatter_Render_RoundTrip(t *testing.T) {
	fm := Frontmatter{
		Description:  "Review the API: phase two",
		ArgumentHint: "[endpoint]",
		AllowedTools: "Read, Grep",
	}

	content := fm.Render("# Review\n\nLook at the handlers.")

	parsed := ParseFrontmatter(content)
	assert.Equal(t, fm, parsed)
	assert.Contains(t, content, "# Review")
	assert.True(t, len(content) > 0 && content[len(content)-1] == '\n')
}
