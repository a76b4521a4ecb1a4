// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type recorder struct {
	mu    sync.Mutex
	calls [][]string
	fired chan struct{}
}

func newRecorder() *recorder {
	return &recorder{fired: make(chan struct{}, 16)}
}

func (r *recorder) fn(_ context.Context, changed []string) error {
	r.mu.Lock()
	r.calls = append(r.calls, changed)
	r.mu.Unlock()
	r.fired <- struct{}{}
	return nil
}

func (r *recorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.calls...)
}

func startWatch(t *testing.T, paths []string, fn Func) (cancel func()) {
	t.Helper()
	ctx, cancelCtx := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, paths, 50*time.Millisecond, fn) }()

	// Give the watcher time to register before the test writes.
	time.Sleep(100 * time.Millisecond)

	return func() {
		cancelCtx()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("watcher did not stop")
		}
	}
}

func TestRun_DebouncesBurst(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	target := filepath.Join(dir, "default_config.json")
	require.NoError(t, os.WriteFile(target, []byte("{}"), 0o600))
	resolved, err := filepath.Abs(target)
	require.NoError(t, err)

	rec := newRecorder()
	stop := startWatch(t, []string{target}, rec.fn)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(target, []byte(`{"blockSize": 1}`), 0o600))
	}

	select {
	case <-rec.fired:
	case <-time.After(5 * time.Second):
		t.Fatal("callback not invoked")
	}
	// A quiet period after the burst must not produce further calls.
	time.Sleep(200 * time.Millisecond)
	stop()

	calls := rec.snapshot()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{resolved}, calls[0])
}

func TestRun_IgnoresUnrelatedFiles(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	target := filepath.Join(dir, "watched.yml")
	require.NoError(t, os.WriteFile(target, []byte("a: 1\n"), 0o600))

	rec := newRecorder()
	stop := startWatch(t, []string{target}, rec.fn)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yml"), []byte("b: 2\n"), 0o600))
	time.Sleep(300 * time.Millisecond)
	stop()

	assert.Empty(t, rec.snapshot())
}

func TestRun_CallbackErrorKeepsWatching(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	target := filepath.Join(dir, "cfg.yml")
	require.NoError(t, os.WriteFile(target, []byte("a: 1\n"), 0o600))

	fired := make(chan struct{}, 4)
	stop := startWatch(t, []string{target}, func(context.Context, []string) error {
		fired <- struct{}{}
		return errors.New("broken document")
	})

	for i := 0; i < 2; i++ {
		require.NoError(t, os.WriteFile(target, []byte("a: 2\n"), 0o600))
		select {
		case <-fired:
		case <-time.After(5 * time.Second):
			t.Fatalf("callback %d not invoked", i+1)
		}
	}
	stop()
}

func TestRun_NoPaths(t *testing.T) {
	err := Run(context.Background(), nil, 0, func(context.Context, []string) error { return nil })
	require.Error(t, err)
}

func TestRun_MissingDirectory(t *testing.T) {
	err := Run(context.Background(), []string{filepath.Join(t.TempDir(), "nope", "cfg.yml")}, 0,
		func(context.Context, []string) error { return nil })
	require.Error(t, err)
}
