package songentity

import (
	"encoding/json"
	"github.com/veedubyou/songlist-be/src/shared/lib/errors/mark"
	"github.com/veedubyou/songlist-be/src/shared/lib/jsonlib"
	"strings"
)

// SongInput is the body of a create or update request.
// Each field remembers whether the caller sent it, so an update
// only touches the fields that were in the request
type SongInput struct {
	Name     jsonlib.Optional[string]             `json:"name"`
	Singers  jsonlib.Optional[[]string]           `json:"singers"`
	Tags     jsonlib.Optional[[]string]           `json:"tags"`
	Key      jsonlib.Optional[jsonlib.LenientInt] `json:"key"`
	Notes    jsonlib.Optional[string]             `json:"notes"`
	Featured jsonlib.Optional[bool]               `json:"featured"`
}

// MarshalJSON leaves out the fields that aren't present
func (s SongInput) MarshalJSON() ([]byte, error) {
	fields := map[string]any{}

	if s.Name.Present {
		fields["name"] = s.Name.Value
	}
	if s.Singers.Present {
		fields["singers"] = s.Singers.Value
	}
	if s.Tags.Present {
		fields["tags"] = s.Tags.Value
	}
	if s.Key.Present {
		fields["key"] = int(s.Key.Value)
	}
	if s.Notes.Present {
		fields["notes"] = s.Notes.Value
	}
	if s.Featured.Present {
		fields["featured"] = s.Featured.Value
	}

	return json.Marshal(fields)
}

// NewSong validates a create request and builds the song it describes.
// ID and CreatedAt are left for the caller to assign
func NewSong(input SongInput) (Song, error) {
	if !input.Name.Present {
		return Song{}, mark.Message(ValidationMark, "Song name is required")
	}

	if !input.Singers.Present {
		return Song{}, mark.Message(ValidationMark, "At least one reference singer is required")
	}

	song := Song{
		Tags: []string{},
	}

	return song.Apply(input)
}

// Apply returns a copy of the song with every present field of the input
// replaced. ID and CreatedAt are never touched
func (s Song) Apply(input SongInput) (Song, error) {
	updated := s
	updated.Singers = append([]string{}, s.Singers...)
	updated.Tags = append([]string{}, s.Tags...)

	if input.Name.Present {
		name := strings.TrimSpace(input.Name.Value)
		if name == "" {
			return Song{}, mark.Message(ValidationMark, "Song name is required")
		}

		updated.Name = name
	}

	if input.Singers.Present {
		singers := CleanList(input.Singers.Value)
		if len(singers) == 0 {
			return Song{}, mark.Message(ValidationMark, "At least one reference singer is required")
		}

		updated.Singers = singers
	}

	if input.Tags.Present {
		updated.Tags = CleanList(input.Tags.Value)
	}

	if input.Key.Present {
		updated.Key = int(input.Key.Value)
	}

	if input.Notes.Present {
		updated.Notes = strings.TrimSpace(input.Notes.Value)
	}

	if input.Featured.Present {
		updated.Featured = input.Featured.Value
	}

	return updated, nil
}

// CleanList trims every entry and drops the blank ones.
// The result is never nil
func CleanList(entries []string) []string {
	cleaned := []string{}
	for _, entry := range entries {
		trimmed := strings.TrimSpace(entry)
		if trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}

	return cleaned
}
