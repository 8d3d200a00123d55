package songclient

import (
	"context"
	"github.com/cockroachdb/errors"
	"github.com/veedubyou/songlist-be/src/shared/song/entity"
	"github.com/veedubyou/songlist-be/src/shared/song/query"
	"time"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

const DefaultFreshness = time.Minute

//counterfeiter:generate . SongAPI

// SongAPI is the part of Client the controller drives
type SongAPI interface {
	ListSongs(ctx context.Context, query songquery.Query) ([]songentity.Song, error)
	CreateSong(ctx context.Context, input songentity.SongInput) (songentity.Song, error)
	UpdateSong(ctx context.Context, songID string, input songentity.SongInput) (songentity.Song, error)
	DeleteSong(ctx context.Context, songID string) (string, error)
}

// Controller keeps a cached copy of the full list and answers
// filtered, sorted views of it without going back to the server
type Controller struct {
	api   SongAPI
	cache *Cache
}

func NewController(api SongAPI, cache *Cache) Controller {
	if cache == nil {
		cache = NewCache(DefaultFreshness)
	}

	return Controller{
		api:   api,
		cache: cache,
	}
}

// Songs serves from the cache unless it's stale or a refresh is forced.
// A failed fetch leaves the cache as it was
func (c Controller) Songs(ctx context.Context, forceRefresh bool, query songquery.Query) ([]songentity.Song, error) {
	songs, fresh := c.cache.Get()

	if forceRefresh || !fresh {
		fetched, err := c.api.ListSongs(ctx, songquery.Query{})
		if err != nil {
			return nil, errors.Wrap(err, "Failed to refresh the song list")
		}

		c.cache.Set(fetched)
		songs = fetched
	}

	return songquery.Apply(songs, query), nil
}

func (c Controller) CreateSong(ctx context.Context, input songentity.SongInput) (songentity.Song, error) {
	song, err := c.api.CreateSong(ctx, input)
	if err != nil {
		return songentity.Song{}, err
	}

	c.cache.Invalidate()
	return song, nil
}

func (c Controller) UpdateSong(ctx context.Context, songID string, input songentity.SongInput) (songentity.Song, error) {
	song, err := c.api.UpdateSong(ctx, songID, input)
	if err != nil {
		return songentity.Song{}, err
	}

	c.cache.Invalidate()
	return song, nil
}

func (c Controller) DeleteSong(ctx context.Context, songID string) (string, error) {
	message, err := c.api.DeleteSong(ctx, songID)
	if err != nil {
		return "", err
	}

	c.cache.Invalidate()
	return message, nil
}

// Invalidate drops the cached list, for callers that changed songs some other way
func (c Controller) Invalidate() {
	c.cache.Invalidate()
}
