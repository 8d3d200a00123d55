package songstorage

import (
	"context"
	"github.com/apex/log"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/markers"
	"github.com/veedubyou/songlist-be/src/shared/lib/errors/mark"
	"github.com/veedubyou/songlist-be/src/shared/lib/kvstore"
	"github.com/veedubyou/songlist-be/src/shared/song/entity"
)

// every song lives under its own key in this namespace,
// nothing else in the store may use it
const KeyPrefix = "song:"

func Key(songID string) string {
	return KeyPrefix + songID
}

// DB is the only writer of stored songs. Writes are a single key put,
// so concurrent updates to one song resolve as last writer wins
type DB struct {
	store kvstore.Store
}

func NewDB(store kvstore.Store) DB {
	return DB{
		store: store,
	}
}

// ListSongs enumerates the namespace and fetches every song in one batch.
// The batch isn't a snapshot: a key deleted between the two steps is
// skipped, and a song written in between may come back slightly stale
func (d DB) ListSongs(ctx context.Context) ([]songentity.Song, error) {
	keys, err := d.store.Keys(ctx, KeyPrefix)
	if err != nil {
		return nil, mark.Wrap(err, DefaultErrorMark, "Failed to enumerate song keys")
	}

	songs := []songentity.Song{}
	if len(keys) == 0 {
		return songs, nil
	}

	values, err := d.store.BatchGet(ctx, keys)
	if err != nil {
		return nil, mark.Wrap(err, DefaultErrorMark, "Failed to batch fetch songs")
	}

	for _, key := range keys {
		value, ok := values[key]
		if !ok || value == nil {
			log.WithField("key", key).Debug("Skipping song key without a value")
			continue
		}

		song, err := songFromValue(value)
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to read song stored under %s", key)
		}

		songs = append(songs, song)
	}

	return songs, nil
}

func (d DB) GetSong(ctx context.Context, songID string) (songentity.Song, error) {
	if songID == "" {
		err := errors.New("Song ID is empty")
		return songentity.Song{}, mark.Wrap(err, SongNotFoundMark, "No ID provided to fetch song")
	}

	value, err := d.store.Get(ctx, Key(songID))
	if err != nil {
		switch {
		case markers.Is(err, kvstore.NotFoundMark):
			return songentity.Song{}, mark.Wrap(err, SongNotFoundMark, "Song for this ID couldn't be found")
		default:
			return songentity.Song{}, mark.Wrap(err, DefaultErrorMark, "Failed to fetch song due to unknown data store error")
		}
	}

	return songFromValue(value)
}

func (d DB) CreateSong(ctx context.Context, newSong songentity.Song) error {
	if newSong.ID == "" {
		err := errors.New("Song ID is empty")
		return mark.Wrap(err, DefaultErrorMark, "No ID provided to create song")
	}

	return d.putSong(ctx, newSong)
}

// UpdateSong overwrites the whole stored record. Callers read the
// existing song first, there is no version check between that read and this write
func (d DB) UpdateSong(ctx context.Context, song songentity.Song) error {
	if song.ID == "" {
		err := errors.New("Song ID is empty")
		return mark.Wrap(err, SongNotFoundMark, "No ID provided to update song")
	}

	return d.putSong(ctx, song)
}

func (d DB) putSong(ctx context.Context, song songentity.Song) error {
	value, err := songToValue(song)
	if err != nil {
		return err
	}

	if err := d.store.Set(ctx, Key(song.ID), value); err != nil {
		return mark.Wrap(err, DefaultErrorMark, "Failed to put song into DB")
	}

	return nil
}

func (d DB) DeleteSong(ctx context.Context, songID string) error {
	if songID == "" {
		err := errors.New("Song ID is empty")
		return mark.Wrap(err, SongNotFoundMark, "No ID provided to delete song")
	}

	removed, err := d.store.Delete(ctx, Key(songID))
	if err != nil {
		return mark.Wrap(err, DefaultErrorMark, "Failed to delete song")
	}

	if removed == 0 {
		return mark.Message(SongNotFoundMark, "Failed to find song to delete")
	}

	return nil
}
