package tmpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		data    any
		want    string
		wantErr bool
	}{
		{
			name: "plain substitution",
			tmpl: "run {{ .File }}",
			data: map[string]string{"File": "prompts/001-auth.md"},
			want: "run prompts/001-auth.md",
		},
		{
			name: "shell quoting",
			tmpl: "claude -p {{ .Prompt | shq }}",
			data: map[string]string{"Prompt": "don't break"},
			want: `claude -p 'don'\''t break'`,
		},
		{
			name: "empty string quotes to empty pair",
			tmpl: "{{ .V | shq }}",
			data: map[string]string{"V": ""},
			want: "''",
		},
		{
			name: "join files",
			tmpl: "{{ join .Files \" \" }}",
			data: map[string][]string{"Files": {"a.md", "b.md"}},
			want: "a.md b.md",
		},
		{
			name:    "missing key is an error",
			tmpl:    "{{ .Nope }}",
			data:    map[string]string{},
			wantErr: true,
		},
		{
			name:    "invalid template is an error",
			tmpl:    "{{ .Unclosed",
			data:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.tmpl, tt.data)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValid(t *testing.T) {
	assert.NoError(t, Valid("claude -p {{ .Prompt | shq }}"))
	assert.Error(t, Valid("{{ .Unclosed"))
}
