package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/promptq/internal/core/prompt"
)

// fakeHost records handoffs and fails on configured paths.
type fakeHost struct {
	executed   []string
	batches    [][]string
	failOn     map[string]bool
	batchError error
}

func (f *fakeHost) Execute(_ context.Context, h Handoff) error {
	f.executed = append(f.executed, filepath.Base(h.Path))
	if f.failOn[filepath.Base(h.Path)] {
		return fmt.Errorf("host rejected %s", filepath.Base(h.Path))
	}
	return nil
}

func (f *fakeHost) ExecuteBatch(_ context.Context, hs []Handoff) error {
	var names []string
	for _, h := range hs {
		names = append(names, filepath.Base(h.Path))
	}
	f.batches = append(f.batches, names)
	return f.batchError
}

func newTestStore(t *testing.T, files ...string) *prompt.Store {
	t.Helper()
	dir := t.TempDir()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("# "+name+"\n"), 0o644))
		mt := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, mt, mt))
	}
	return prompt.NewStore(dir)
}

func TestRunner_Run_Sequential(t *testing.T) {
	t.Run("executes and archives in order", func(t *testing.T) {
		store := newTestStore(t, "001-auth.md", "002-api.md")
		host := &fakeHost{}
		r := New(store, host, zerolog.Nop())

		results, err := r.Run(context.Background(), []string{"1", "2"}, false)
		require.NoError(t, err)
		assert.Equal(t, []string{"001-auth.md", "002-api.md"}, host.executed)

		require.Len(t, results, 2)
		for _, res := range results {
			assert.Equal(t, StatusCompleted, res.Status)
			assert.NotEmpty(t, res.ArchivedTo)
		}

		pending, err := store.Pending()
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("stops at first failure and leaves files pending", func(t *testing.T) {
		store := newTestStore(t, "001-auth.md", "002-api.md", "003-db.md")
		host := &fakeHost{failOn: map[string]bool{"002-api.md": true}}
		r := New(store, host, zerolog.Nop())

		results, err := r.Run(context.Background(), []string{"1", "2", "3"}, false)
		require.Error(t, err)

		require.Len(t, results, 3)
		assert.Equal(t, StatusCompleted, results[0].Status)
		assert.Equal(t, StatusFailed, results[1].Status)
		assert.Equal(t, StatusSkipped, results[2].Status)

		// The failed and skipped prompts stay pending.
		pending, err := store.Pending()
		require.NoError(t, err)
		assert.Equal(t, []string{"002-api.md", "003-db.md"}, prompt.Filenames(pending))
	})
}

func TestRunner_Run_ResolutionIsAllOrNothing(t *testing.T) {
	store := newTestStore(t, "005-one.md", "006-two.md")
	host := &fakeHost{}
	r := New(store, host, zerolog.Nop())

	results, err := r.Run(context.Background(), []string{"005", "006", "999"}, false)
	require.ErrorIs(t, err, prompt.ErrNotFound)
	assert.Nil(t, results)
	assert.Empty(t, host.executed, "no execution before the whole batch resolves")

	pending, err := store.Pending()
	require.NoError(t, err)
	assert.Len(t, pending, 2, "nothing archived")
}

func TestRunner_Run_AmbiguousTokenAbortsBatch(t *testing.T) {
	store := newTestStore(t, "001-api-auth.md", "002-api-docs.md")
	host := &fakeHost{}
	r := New(store, host, zerolog.Nop())

	_, err := r.Run(context.Background(), []string{"api"}, false)
	require.ErrorIs(t, err, prompt.ErrAmbiguous)
	assert.Empty(t, host.executed)
}

func TestRunner_Run_Parallel(t *testing.T) {
	t.Run("single batched handoff then archive all", func(t *testing.T) {
		store := newTestStore(t, "001-auth.md", "002-api.md")
		host := &fakeHost{}
		r := New(store, host, zerolog.Nop())

		results, err := r.Run(context.Background(), []string{"1", "2"}, true)
		require.NoError(t, err)

		require.Len(t, host.batches, 1, "one handoff for the whole batch")
		assert.Equal(t, []string{"001-auth.md", "002-api.md"}, host.batches[0])
		assert.Empty(t, host.executed, "no per-prompt execution in parallel mode")

		for _, res := range results {
			assert.Equal(t, StatusCompleted, res.Status)
		}
	})

	t.Run("failed handoff archives nothing", func(t *testing.T) {
		store := newTestStore(t, "001-auth.md", "002-api.md")
		host := &fakeHost{batchError: fmt.Errorf("host unavailable")}
		r := New(store, host, zerolog.Nop())

		results, err := r.Run(context.Background(), []string{"1", "2"}, true)
		require.Error(t, err)

		for _, res := range results {
			assert.Equal(t, StatusFailed, res.Status)
		}

		pending, err := store.Pending()
		require.NoError(t, err)
		assert.Len(t, pending, 2)
	})
}

func TestRunner_Run_EmptyTokenUsesMostRecent(t *testing.T) {
	store := newTestStore(t, "001-auth.md", "002-api.md") // 002 created last
	host := &fakeHost{}
	r := New(store, host, zerolog.Nop())

	results, err := r.Run(context.Background(), []string{""}, false)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "002-api.md", results[0].Filename)
}
