// Package executil provides shell execution for host runtime handoffs.
package executil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

const maxStderrLen = 500

// limitedWriter caps writes to a bytes.Buffer at a maximum byte count.
// Bytes beyond the limit are silently discarded.
type limitedWriter struct {
	buf *bytes.Buffer
	n   int64
	max int64
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	if w.n >= w.max {
		return len(p), nil
	}
	remaining := w.max - w.n
	origLen := len(p)
	if int64(origLen) > remaining {
		p = p[:remaining]
	}
	n, err := w.buf.Write(p)
	w.n += int64(n)
	if err != nil {
		return n, err
	}
	return origLen, nil
}

// Shell runs commands through "sh -c". It is the boundary to the external
// host runtime: promptq renders a command line and hands it off; it never
// interprets what the host does with the prompt text.
type Shell interface {
	// Run executes a shell command in dir (empty means inherit cwd),
	// streaming stdout/stderr to the given writers.
	Run(ctx context.Context, dir, cmd string, stdout, stderr io.Writer) error
}

// RealShell executes actual shell commands.
type RealShell struct{}

// Run executes the command, tee-ing stderr into a capped buffer so failures
// carry a useful message without flooding logs with ANSI-polluted output.
// The original *exec.ExitError is preserved via wrapping so callers can
// inspect exit codes with errors.As.
func (RealShell) Run(ctx context.Context, dir, cmd string, stdout, stderr io.Writer) error {
	c := exec.CommandContext(ctx, "sh", "-c", cmd)
	if dir != "" {
		c.Dir = dir
	}

	var buf bytes.Buffer
	capped := &limitedWriter{buf: &buf, max: maxStderrLen}

	if stdout == nil {
		stdout = io.Discard
	}
	c.Stdout = stdout
	if stderr != nil {
		c.Stderr = io.MultiWriter(stderr, capped)
	} else {
		c.Stderr = capped
	}

	if err := c.Run(); err != nil {
		msg := strings.TrimSpace(buf.String())
		if msg != "" {
			return fmt.Errorf("%s: %w", msg, err)
		}
		return err
	}
	return nil
}
