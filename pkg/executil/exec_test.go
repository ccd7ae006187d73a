package executil

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealShell_Run(t *testing.T) {
	sh := RealShell{}

	t.Run("streams stdout", func(t *testing.T) {
		var out bytes.Buffer
		err := sh.Run(context.Background(), "", "echo hello", &out, nil)
		require.NoError(t, err)
		assert.Equal(t, "hello\n", out.String())
	})

	t.Run("runs in directory", func(t *testing.T) {
		dir := t.TempDir()
		var out bytes.Buffer
		err := sh.Run(context.Background(), dir, "pwd", &out, nil)
		require.NoError(t, err)
		assert.Equal(t, dir, strings.TrimSpace(out.String()))
	})

	t.Run("failure carries stderr message", func(t *testing.T) {
		err := sh.Run(context.Background(), "", "echo boom >&2; exit 3", nil, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")

		var exitErr *exec.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 3, exitErr.ExitCode())
	})

	t.Run("stderr message is capped", func(t *testing.T) {
		err := sh.Run(context.Background(), "", "yes x | head -c 2000 >&2; exit 1", nil, nil)
		require.Error(t, err)
		assert.LessOrEqual(t, len(err.Error()), maxStderrLen+100)
	})
}

func TestLimitedWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &limitedWriter{buf: &buf, max: 5}

	n, err := w.Write([]byte("123456789"))
	require.NoError(t, err)
	assert.Equal(t, 9, n, "reports full write so upstream pipes don't error")
	assert.Equal(t, "12345", buf.String())

	n, err = w.Write([]byte("more"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "12345", buf.String())
}
