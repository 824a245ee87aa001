package storage

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalStore_SaveAndDelete(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	assert.NoError(t, err)

	name, err := store.Save(KindImage, ".jpg", bytes.NewBufferString("image bytes"))
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".jpg"))

	data, err := os.ReadFile(store.Path(KindImage, name))
	assert.NoError(t, err)
	assert.Equal(t, "image bytes", string(data))

	err = store.Delete(KindImage, name)
	assert.NoError(t, err)

	_, err = os.Stat(store.Path(KindImage, name))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStore_DeleteMissingFile(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	assert.NoError(t, err)

	// Deleting a name that was never stored is not an error
	err = store.Delete(KindVideo, "does-not-exist.mp4")
	assert.NoError(t, err)
}

func TestLocalStore_KindsArePartitioned(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	assert.NoError(t, err)

	avatar, err := store.Save(KindAvatar, ".png", bytes.NewBufferString("a"))
	assert.NoError(t, err)
	video, err := store.Save(KindVideo, ".mp4", bytes.NewBufferString("v"))
	assert.NoError(t, err)

	assert.Contains(t, store.Path(KindAvatar, avatar), "avatars")
	assert.Contains(t, store.Path(KindVideo, video), "videos")
}

func TestLocalStore_ConcurrentSavesGetUniqueNames(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	assert.NoError(t, err)

	const n = 20
	var wg sync.WaitGroup
	var mu sync.Mutex
	names := make(map[string]bool)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name, err := store.Save(KindImage, ".jpg", bytes.NewBufferString("x"))
			assert.NoError(t, err)
			mu.Lock()
			names[name] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, n, len(names))
}

func TestNewFileName(t *testing.T) {
	name := NewFileName(".mov")
	assert.True(t, strings.HasSuffix(name, ".mov"))
	assert.NotEqual(t, NewFileName(".mov"), name)
}
