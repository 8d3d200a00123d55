package songerrors

import (
	"github.com/veedubyou/songlist-be/src/server/internal/errors/api"
)

const (
	SongNotFoundCode = api.ErrorCode("song_not_found")
	BadSongDataCode  = api.ErrorCode("bad_song_data")
	BadQueryCode     = api.ErrorCode("bad_query")
)
