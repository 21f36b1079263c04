package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSetGetOverwrite(t *testing.T) {
	t.Parallel()

	store := NewStore(nil)
	key := domain.CacheKey(domain.CacheKindPost, "0x01")

	_, ok := store.Get(key)
	assert.False(t, ok)

	store.Set(key, domain.Post{ID: "0x01"})
	store.Set(key, domain.Post{ID: "0x01", Metadata: domain.PostMetadata{Content: "second"}})

	value, ok := store.Get(key)
	require.True(t, ok)
	assert.Equal(t, "second", value.(domain.Post).Metadata.Content)
	assert.Equal(t, 1, store.Len())
}

func TestStoreConcurrentWriters(t *testing.T) {
	t.Parallel()

	store := NewStore(nil)

	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				store.Set(fmt.Sprintf("post/%d-%d", worker, i), i)
				store.Get(fmt.Sprintf("post/%d-%d", worker, i))
			}
		}(worker)
	}
	wg.Wait()

	assert.Equal(t, 400, store.Len())
}
