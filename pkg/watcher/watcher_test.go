package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plate.toml")
	other := filepath.Join(dir, "other.toml")
	require.NoError(t, os.WriteFile(file, []byte("length = 1\n"), 0o644))

	fw, err := NewFileWatcher(50*time.Millisecond, zerolog.Nop())
	require.NoError(t, err)
	defer fw.Close()

	var calls atomic.Int32
	changed := make(chan string, 4)
	require.NoError(t, fw.Watch([]string{file}, func(path string) {
		calls.Add(1)
		changed <- path
	}))
	fw.Start()

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(file, []byte("length = 2\n"), 0o644))
	}
	require.NoError(t, os.WriteFile(other, []byte("ignored\n"), 0o644))

	select {
	case path := <-changed:
		abs, _ := filepath.Abs(file)
		assert.Equal(t, abs, path)
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCloseCancelsPendingCallbacks(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plate.toml")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	fw, err := NewFileWatcher(time.Hour, zerolog.Nop())
	require.NoError(t, err)

	var calls atomic.Int32
	require.NoError(t, fw.Watch([]string{file}, func(string) { calls.Add(1) }))

	abs, _ := filepath.Abs(file)
	fw.handleFileChange(abs)
	fw.mu.Lock()
	assert.Len(t, fw.timers, 1)
	fw.mu.Unlock()

	require.NoError(t, fw.Close())
	assert.NoError(t, fw.Close())
	fw.handleFileChange(abs)

	fw.mu.Lock()
	assert.Empty(t, fw.timers)
	fw.mu.Unlock()
	assert.Equal(t, int32(0), calls.Load())
}
