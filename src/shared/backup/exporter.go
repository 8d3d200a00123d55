package backup

import (
	"context"
	"encoding/json"
	"github.com/apex/log"
	"github.com/cockroachdb/errors"
	"github.com/veedubyou/songlist-be/src/shared/song/entity"
	"github.com/veedubyou/songlist-be/src/shared/song/query"
	"time"
)

type SongLister interface {
	ListSongs(ctx context.Context) ([]songentity.Song, error)
}

type ExportResult struct {
	Location  string
	SongCount int
}

type Exporter struct {
	songs SongLister
	files FileStore
	now   func() time.Time
}

func NewExporter(songs SongLister, files FileStore) Exporter {
	return Exporter{
		songs: songs,
		files: files,
		now:   time.Now,
	}
}

// Export writes every song, newest first, into one timestamped document
func (e Exporter) Export(ctx context.Context) (ExportResult, error) {
	songs, err := e.songs.ListSongs(ctx)
	if err != nil {
		return ExportResult{}, errors.Wrap(err, "Failed to list songs to export")
	}

	exportedAt := e.now().UTC().Truncate(time.Millisecond)
	document := Document{
		ExportedAt: exportedAt,
		Songs:      songquery.Apply(songs, songquery.Query{Order: songquery.OrderRecent}),
	}

	contents, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return ExportResult{}, errors.Wrap(err, "Failed to encode export document")
	}

	location, err := e.files.WriteFile(ctx, FileName(exportedAt), contents)
	if err != nil {
		return ExportResult{}, errors.Wrap(err, "Failed to write export document")
	}

	log.WithFields(log.Fields{
		"location": location,
		"songs":    len(songs),
	}).Info("Exported songs")

	return ExportResult{
		Location:  location,
		SongCount: len(songs),
	}, nil
}
