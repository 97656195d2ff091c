package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWatcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Stop()

	assert.NotNil(t, w.watcher)
	assert.Equal(t, path, w.Path())
	assert.Equal(t, DefaultDebounce, w.debounce)
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "options.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- a\n"), 0644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	w.debounce = 10 * time.Millisecond
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("- a\n- b\n"), 0644))

	select {
	case ev := <-w.Changes():
		assert.Equal(t, path, ev.Path)
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcherStartStop(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "options.yaml"))
	require.NoError(t, err)
	require.NoError(t, w.Start())

	w.Stop()
	w.Stop()

	select {
	case <-w.Done():
	default:
		t.Fatal("done should be closed")
	}
}

func TestWatcherStartMissingDirectory(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "options.yaml"))
	require.NoError(t, err)
	defer w.Stop()
	assert.Error(t, w.Start())
}
