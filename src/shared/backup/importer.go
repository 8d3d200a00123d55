package backup

import (
	"context"
	"encoding/json"
	"github.com/apex/log"
	"github.com/cockroachdb/errors"
	"github.com/veedubyou/songlist-be/src/shared/lib/errors/mark"
	"github.com/veedubyou/songlist-be/src/shared/song/entity"
	"io"
)

type SongCreator interface {
	CreateSong(ctx context.Context, song songentity.Song) error
}

type ImportFailure struct {
	// Index is the position of the entry in the songs list
	Index int
	Name  string
	Err   error
}

type ImportReport struct {
	Imported []songentity.Song
	Failures []ImportFailure
}

type Importer struct {
	songs SongCreator
}

func NewImporter(songs SongCreator) Importer {
	return Importer{
		songs: songs,
	}
}

// Import creates every valid entry as a new song with its own ID and
// creation time. Bad entries are reported and skipped, the rest still go in
func (i Importer) Import(ctx context.Context, reader io.Reader) (ImportReport, error) {
	document := importDocument{}
	if err := json.NewDecoder(reader).Decode(&document); err != nil {
		return ImportReport{}, errors.Wrap(err, "Failed to decode songs file")
	}

	report := ImportReport{
		Imported: []songentity.Song{},
		Failures: []ImportFailure{},
	}

	for index, entry := range document.Songs {
		song, err := i.importEntry(ctx, entry)
		if err != nil {
			name := entryName(entry)
			log.WithError(err).
				WithField("index", index).
				WithField("name", name).
				Warn("Skipping song")

			report.Failures = append(report.Failures, ImportFailure{
				Index: index,
				Name:  name,
				Err:   err,
			})
			continue
		}

		log.WithField("name", song.Name).Info("Imported song")
		report.Imported = append(report.Imported, song)
	}

	return report, nil
}

func (i Importer) importEntry(ctx context.Context, entry json.RawMessage) (songentity.Song, error) {
	input := songentity.SongInput{}
	if err := json.Unmarshal(entry, &input); err != nil {
		return songentity.Song{}, mark.Wrap(err, songentity.ValidationMark, "Song entry has fields of the wrong type")
	}

	song, err := songentity.NewSong(input)
	if err != nil {
		return songentity.Song{}, err
	}

	song.CreateID()
	song.SetCreatedAtToNow()

	if err := i.songs.CreateSong(ctx, song); err != nil {
		return songentity.Song{}, errors.Wrap(err, "Failed to save song")
	}

	return song, nil
}

// entryName is best effort, for reporting an entry that may not decode
func entryName(entry json.RawMessage) string {
	named := struct {
		Name any `json:"name"`
	}{}
	if err := json.Unmarshal(entry, &named); err != nil {
		return ""
	}

	name, _ := named.Name.(string)
	return name
}
