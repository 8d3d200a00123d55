package songentity

import (
	"github.com/google/uuid"
	"time"
)

type Song struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Singers []string `json:"singers"`
	Tags    []string `json:"tags"`
	// Key is a transposition in semitones from the original, 0 is the original key
	Key       int       `json:"key"`
	Notes     string    `json:"notes,omitempty"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s Song) IsNew() bool {
	return s.ID == ""
}

func (s *Song) CreateID() {
	if !s.IsNew() {
		panic("CreateID is called without an IsNew check")
	}

	s.ID = uuid.New().String()
}

func (s *Song) SetCreatedAtToNow() {
	// browser dates only have millisecond resolution
	s.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
}

// FirstSinger is the singer a song is filed under when browsing
func (s Song) FirstSinger() string {
	if len(s.Singers) == 0 {
		return ""
	}

	return s.Singers[0]
}

// EnsureLists replaces missing lists with empty ones, so
// records written by older versions still serialize as arrays
func (s *Song) EnsureLists() {
	if s.Singers == nil {
		s.Singers = []string{}
	}

	if s.Tags == nil {
		s.Tags = []string{}
	}
}
