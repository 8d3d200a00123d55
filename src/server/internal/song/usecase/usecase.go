package songusecase

import (
	"context"
	"github.com/cockroachdb/errors/markers"
	"github.com/pkg/errors"
	"github.com/veedubyou/songlist-be/src/server/internal/errors/api"
	"github.com/veedubyou/songlist-be/src/server/internal/password"
	"github.com/veedubyou/songlist-be/src/server/internal/song/errors"
	"github.com/veedubyou/songlist-be/src/shared/song/entity"
	"github.com/veedubyou/songlist-be/src/shared/song/query"
	"github.com/veedubyou/songlist-be/src/shared/song/storage"
)

type Usecase struct {
	db   songstorage.DB
	gate password.Gate
}

func NewUsecase(db songstorage.DB, gate password.Gate) Usecase {
	return Usecase{
		db:   db,
		gate: gate,
	}
}

func (u Usecase) ListSongs(ctx context.Context, query songquery.Query) ([]songentity.Song, *api.Error) {
	songs, err := u.db.ListSongs(ctx)
	if err != nil {
		return nil, api.CommitError(
			errors.Wrap(err, "Failed to list songs from DB"),
			api.DefaultErrorCode,
			"Unknown error: Failed to fetch songs")
	}

	return songquery.Apply(songs, query), nil
}

func (u Usecase) GetSong(ctx context.Context, songID string) (songentity.Song, *api.Error) {
	song, err := u.db.GetSong(ctx, songID)
	if err != nil {
		err = errors.Wrap(err, "Failed to get the song from DB")
		return songentity.Song{}, storageError(err, "Unknown error: Failed to fetch the song")
	}

	return song, nil
}

func (u Usecase) CreateSong(ctx context.Context, suppliedPassword string, input songentity.SongInput) (songentity.Song, *api.Error) {
	if apiErr := u.gate.Verify(suppliedPassword); apiErr != nil {
		return songentity.Song{}, api.WrapError(apiErr, "Failed password check to create song")
	}

	song, err := songentity.NewSong(input)
	if err != nil {
		return songentity.Song{}, validationError(err)
	}

	song.CreateID()
	song.SetCreatedAtToNow()

	err = u.db.CreateSong(ctx, song)
	if err != nil {
		return songentity.Song{}, api.CommitError(
			errors.Wrap(err, "Failed to create the song in the DB"),
			api.DefaultErrorCode,
			"Unknown error: Failed to create the song")
	}

	return song, nil
}

// UpdateSong only replaces the fields present in the input.
// There's no version check, the last update to land wins
func (u Usecase) UpdateSong(ctx context.Context, suppliedPassword string, songID string, input songentity.SongInput) (songentity.Song, *api.Error) {
	if apiErr := u.gate.Verify(suppliedPassword); apiErr != nil {
		return songentity.Song{}, api.WrapError(apiErr, "Failed password check to update song")
	}

	existingSong, apiErr := u.GetSong(ctx, songID)
	if apiErr != nil {
		return songentity.Song{}, api.WrapError(apiErr, "Failed to load the song to update")
	}

	updatedSong, err := existingSong.Apply(input)
	if err != nil {
		return songentity.Song{}, validationError(err)
	}

	err = u.db.UpdateSong(ctx, updatedSong)
	if err != nil {
		err = errors.Wrap(err, "Failed to update the song in the DB")
		return songentity.Song{}, storageError(err, "Unknown error: Failed to update the song")
	}

	return updatedSong, nil
}

func (u Usecase) DeleteSong(ctx context.Context, suppliedPassword string, songID string) *api.Error {
	if apiErr := u.gate.Verify(suppliedPassword); apiErr != nil {
		return api.WrapError(apiErr, "Failed password check to delete song")
	}

	err := u.db.DeleteSong(ctx, songID)
	if err != nil {
		err = errors.Wrap(err, "Failed to delete the song from DB")
		return storageError(err, "Unknown error: Failed to delete the song")
	}

	return nil
}

func storageError(err error, unknownMessage string) *api.Error {
	switch {
	case markers.Is(err, songstorage.SongNotFoundMark):
		return api.CommitError(err,
			songerrors.SongNotFoundCode,
			"The song can't be found")

	case markers.Is(err, songstorage.SongUnmarshalMark):
		fallthrough
	case markers.Is(err, songstorage.DefaultErrorMark):
		fallthrough
	default:
		return api.CommitError(err,
			api.DefaultErrorCode,
			unknownMessage)
	}
}

// validation messages are written for the user, so they're passed through
func validationError(err error) *api.Error {
	return api.CommitError(
		errors.Wrap(err, "Song data failed validation"),
		songerrors.BadSongDataCode,
		err.Error())
}
