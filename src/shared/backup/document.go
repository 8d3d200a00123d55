package backup

import (
	"encoding/json"
	"github.com/veedubyou/songlist-be/src/shared/song/entity"
	"time"
)

// Document is the file layout shared by exports and imports.
// Imports ignore everything but the song fields a user can set
type Document struct {
	ExportedAt time.Time         `json:"exportedAt"`
	Songs      []songentity.Song `json:"songs"`
}

// entries stay raw so one badly typed song doesn't sink the whole file
type importDocument struct {
	Songs []json.RawMessage `json:"songs"`
}

func FileName(exportedAt time.Time) string {
	return "songs_" + exportedAt.UTC().Format("20060102T150405Z") + ".json"
}
