package songstorage

import (
	"github.com/cockroachdb/errors"
	"github.com/veedubyou/songlist-be/src/shared/lib/errors/mark"
	"github.com/veedubyou/songlist-be/src/shared/lib/jsonlib"
	"github.com/veedubyou/songlist-be/src/shared/song/entity"
)

const (
	idKey = "id"
)

func songToValue(song songentity.Song) (map[string]any, error) {
	value, err := jsonlib.StructToMap(song)
	if err != nil {
		return nil, mark.Wrap(err, SongUnmarshalMark, "Failed to convert song object to a map")
	}

	return value, nil
}

func songFromValue(value map[string]any) (songentity.Song, error) {
	if id, ok := value[idKey].(string); !ok || id == "" {
		err := errors.New("Stored song has no string ID")
		return songentity.Song{}, mark.Wrap(err, SongUnmarshalMark, "Failed to validate ID field")
	}

	song, err := jsonlib.MapToStruct[songentity.Song](value)
	if err != nil {
		return songentity.Song{}, mark.Wrap(err, SongUnmarshalMark, "Failed to unmarshal song into its entity form")
	}

	song.EnsureLists()
	return song, nil
}
