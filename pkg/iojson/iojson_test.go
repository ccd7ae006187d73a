package iojson

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLine(t *testing.T) {
	var buf bytes.Buffer

	err := WriteLine(&buf, map[string]any{"filename": "001-auth.md", "number": 1})
	require.NoError(t, err)

	line := buf.String()
	assert.True(t, strings.HasSuffix(line, "\n"))
	assert.Equal(t, 1, strings.Count(line, "\n"), "one object per line")
	assert.Contains(t, line, `"filename":"001-auth.md"`)
}

func TestMarshalError(t *testing.T) {
	out := MarshalError("no prompt matches", map[string]any{"token": "999"})
	assert.Contains(t, out, `"message": "no prompt matches"`)
	assert.Contains(t, out, `"token": "999"`)
}
