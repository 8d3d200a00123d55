package songclient

import (
	"github.com/veedubyou/songlist-be/src/shared/song/entity"
	"sync"
	"time"
)

// Cache holds the last fetched song list for a freshness window.
// Reads and writes hand out copies of the list, never the stored slice
type Cache struct {
	freshness time.Duration
	now       func() time.Time

	mutex     sync.Mutex
	songs     []songentity.Song
	fetchedAt time.Time
	filled    bool
}

func NewCache(freshness time.Duration) *Cache {
	return &Cache{
		freshness: freshness,
		now:       time.Now,
	}
}

// Get returns the cached list while it's still fresh
func (c *Cache) Get() ([]songentity.Song, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if !c.filled || c.now().Sub(c.fetchedAt) >= c.freshness {
		return nil, false
	}

	return copySongs(c.songs), true
}

func (c *Cache) Set(songs []songentity.Song) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.songs = copySongs(songs)
	c.fetchedAt = c.now()
	c.filled = true
}

func (c *Cache) Invalidate() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.songs = nil
	c.filled = false
}

func copySongs(songs []songentity.Song) []songentity.Song {
	copied := make([]songentity.Song, len(songs))
	copy(copied, songs)
	return copied
}
